package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrContainerNotFound is returned when no container exists for an instance.
var ErrContainerNotFound = errors.New("container not found")

// ContainerInfo is the subset of container state the orchestrator cares about.
type ContainerInfo struct {
	ID       string
	Running  bool
	ExitCode int
	HostPort int // Host port the service port is published on, 0 if unmapped.
}

// ContainerSpec describes the container to create for an instance.
type ContainerSpec struct {
	InstanceID string
	Image      string
	HostPort   int

	ConfigPath   string // Host path of the rendered config file.
	RecordDir    string // Host directory for call recordings.
	GreetingPath string // Host path of the greeting audio file.
}

// ManagedContainer is one entry of the label-tagged container pool.
type ManagedContainer struct {
	InstanceID  string
	ContainerID string
	Running     bool
	HostPort    int
}

// ContainerEngine abstracts the container runtime from the orchestrator.
type ContainerEngine interface {
	// EnsureImage makes sure the image exists locally, pulling it if not.
	EnsureImage(ctx context.Context, image string) error

	// FindContainer looks up the container managed for an instance.
	// Returns ErrContainerNotFound when no such container exists.
	FindContainer(ctx context.Context, instanceID string) (*ContainerInfo, error)

	// ListManaged enumerates every container carrying the management label.
	ListManaged(ctx context.Context) ([]*ManagedContainer, error)

	// CreateContainer creates a container from the spec and returns its ID.
	CreateContainer(ctx context.Context, spec *ContainerSpec) (string, error)

	// StartContainer starts a created or stopped container.
	StartContainer(ctx context.Context, containerID string) error

	// StopContainer stops a running container.
	StopContainer(ctx context.Context, containerID string) error

	// RemoveContainer force-removes a container.
	RemoveContainer(ctx context.Context, containerID string) error

	// ContainerLogs returns the last tail lines of the container log.
	ContainerLogs(ctx context.Context, containerID string, tail int) (string, error)
}

// HealthProber checks whether an instance's HTTP endpoint answers.
type HealthProber interface {
	// Reachable reports whether any HTTP response comes back from the
	// instance published on the given host port.
	Reachable(ctx context.Context, port int) bool
}
