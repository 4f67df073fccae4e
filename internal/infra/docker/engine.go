// Package docker implements the container engine on the Docker API.
package docker

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"

	"echofleet/internal/domain/lifecycle"
	"echofleet/internal/domain/service"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/docker/go-connections/nat"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// managedByLabel marks every container this service owns.
	managedByLabel = "managed-by"
	managedByValue = "echofleet"
	// instanceIDLabel carries the instance an owned container belongs to.
	instanceIDLabel = "instance-id"

	containerNamePrefix = "echofleet-"

	// servicePort is the port the assistant listens on inside the container.
	servicePort = "8080/tcp"

	containerConfigPath   = "/app/config.toml"
	containerRecordDir    = "/app/records"
	containerGreetingPath = "/app/hello.wav"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Logger *slog.Logger
}

// NewClient creates the Docker API client from the environment.
func NewClient(params Params) (*client.Client, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Docker client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if _, err := cli.Ping(ctx); err != nil {
				return errors.Wrap(err, "failed to ping Docker daemon")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return cli.Close()
		},
	})

	return cli, nil
}

// engine implements the service.ContainerEngine interface.
type engine struct {
	cli    *client.Client
	logger *slog.Logger
}

// NewEngine is the constructor for the Docker container engine.
func NewEngine(cli *client.Client, logger *slog.Logger) service.ContainerEngine {
	return &engine{
		cli:    cli,
		logger: logger,
	}
}

// EnsureImage makes sure the image exists locally, pulling it if not.
// The pull stream is drained so the pull completes before returning.
func (e *engine) EnsureImage(ctx context.Context, imageName string) error {
	_, _, err := e.cli.ImageInspectWithRaw(ctx, imageName)
	if err == nil {
		return nil
	}
	if !errdefs.IsNotFound(err) {
		return errors.Wrap(err, "failed to inspect image")
	}

	e.logger.InfoContext(ctx, "pulling image", slog.String("image", imageName))

	reader, err := e.cli.ImagePull(ctx, imageName, image.PullOptions{})
	if err != nil {
		return errors.Wrap(err, "failed to pull image")
	}
	defer reader.Close()

	decoder := json.NewDecoder(reader)
	for {
		var progress struct {
			Status string `json:"status"`
			Error  string `json:"error"`
		}
		if err := decoder.Decode(&progress); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return errors.Wrap(err, "failed to read image pull stream")
		}
		if progress.Error != "" {
			return errors.Errorf("image pull failed: %s", progress.Error)
		}
		if progress.Status != "" {
			e.logger.DebugContext(ctx, "image pull progress",
				slog.String("image", imageName),
				slog.String("status", progress.Status),
			)
		}
	}

	return nil
}

// ListManaged enumerates every container carrying the management label.
func (e *engine) ListManaged(ctx context.Context) ([]*service.ManagedContainer, error) {
	containers, err := e.cli.ContainerList(ctx, container.ListOptions{
		All: true,
		Filters: filters.NewArgs(
			filters.Arg("label", managedByLabel+"="+managedByValue),
		),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list managed containers")
	}

	managed := make([]*service.ManagedContainer, 0, len(containers))
	for _, summary := range containers {
		entry := &service.ManagedContainer{
			InstanceID:  summary.Labels[instanceIDLabel],
			ContainerID: summary.ID,
			Running:     summary.State == "running",
		}
		for _, portMapping := range summary.Ports {
			if portMapping.PublicPort != 0 {
				entry.HostPort = int(portMapping.PublicPort)

				break
			}
		}
		managed = append(managed, entry)
	}

	return managed, nil
}

// FindContainer looks up the container managed for an instance.
func (e *engine) FindContainer(ctx context.Context, instanceID string) (*service.ContainerInfo, error) {
	listFilters := filters.NewArgs(
		filters.Arg("label", managedByLabel+"="+managedByValue),
		filters.Arg("label", instanceIDLabel+"="+instanceID),
	)

	containers, err := e.cli.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: listFilters,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list containers")
	}
	if len(containers) == 0 {
		return nil, service.ErrContainerNotFound
	}

	inspected, err := e.cli.ContainerInspect(ctx, containers[0].ID)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return nil, service.ErrContainerNotFound
		}

		return nil, errors.Wrap(err, "failed to inspect container")
	}

	info := &service.ContainerInfo{
		ID: inspected.ID,
	}
	if inspected.State != nil {
		info.Running = inspected.State.Running
		info.ExitCode = inspected.State.ExitCode
	}
	info.HostPort = publishedHostPort(inspected.NetworkSettings)

	return info, nil
}

// CreateContainer creates a container from the spec and returns its ID.
func (e *engine) CreateContainer(ctx context.Context, spec *service.ContainerSpec) (string, error) {
	hostPort := strconv.Itoa(spec.HostPort)

	containerConfig := &container.Config{
		Image: spec.Image,
		Labels: map[string]string{
			managedByLabel:  managedByValue,
			instanceIDLabel: spec.InstanceID,
		},
		ExposedPorts: nat.PortSet{
			servicePort: struct{}{},
		},
	}

	hostConfig := &container.HostConfig{
		PortBindings: nat.PortMap{
			servicePort: []nat.PortBinding{
				{HostIP: "0.0.0.0", HostPort: hostPort},
			},
		},
		Binds: []string{
			spec.ConfigPath + ":" + containerConfigPath + ":ro",
			spec.RecordDir + ":" + containerRecordDir,
			spec.GreetingPath + ":" + containerGreetingPath + ":ro",
		},
		RestartPolicy: container.RestartPolicy{
			Name: container.RestartPolicyUnlessStopped,
		},
	}

	created, err := e.cli.ContainerCreate(ctx, containerConfig, hostConfig, nil, nil, containerNamePrefix+spec.InstanceID)
	if err != nil {
		return "", errors.Wrap(err, "failed to create container")
	}

	e.logger.InfoContext(ctx, "container created",
		slog.String("instanceId", spec.InstanceID),
		slog.String("containerId", created.ID),
		slog.Int("hostPort", spec.HostPort),
	)

	return created.ID, nil
}

// StartContainer starts a created or stopped container.
func (e *engine) StartContainer(ctx context.Context, containerID string) error {
	if err := e.cli.ContainerStart(ctx, containerID, container.StartOptions{}); err != nil {
		return errors.Wrap(err, "failed to start container")
	}

	return nil
}

// StopContainer stops a running container.
func (e *engine) StopContainer(ctx context.Context, containerID string) error {
	if err := e.cli.ContainerStop(ctx, containerID, container.StopOptions{}); err != nil {
		return errors.Wrap(err, "failed to stop container")
	}

	return nil
}

// RemoveContainer force-removes a container.
func (e *engine) RemoveContainer(ctx context.Context, containerID string) error {
	if err := e.cli.ContainerRemove(ctx, containerID, container.RemoveOptions{Force: true}); err != nil {
		if errdefs.IsNotFound(err) {
			return nil
		}

		return errors.Wrap(err, "failed to remove container")
	}

	return nil
}

// ContainerLogs returns the last tail lines of the container log.
// Stdout and stderr are demultiplexed and concatenated.
func (e *engine) ContainerLogs(ctx context.Context, containerID string, tail int) (string, error) {
	reader, err := e.cli.ContainerLogs(ctx, containerID, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Tail:       strconv.Itoa(tail),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to read container logs")
	}
	defer reader.Close()

	var stdout, stderr bytes.Buffer
	if _, err := stdcopy.StdCopy(&stdout, &stderr, reader); err != nil {
		return "", errors.Wrap(err, "failed to demultiplex container logs")
	}

	stdout.Write(stderr.Bytes())

	return stdout.String(), nil
}

func publishedHostPort(settings *types.NetworkSettings) int {
	if settings == nil {
		return 0
	}

	bindings, ok := settings.Ports[servicePort]
	if !ok || len(bindings) == 0 {
		return 0
	}

	port, err := strconv.Atoi(bindings[0].HostPort)
	if err != nil {
		return 0
	}

	return port
}
