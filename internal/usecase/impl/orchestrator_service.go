package impl

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"echofleet/config"
	"echofleet/internal/domain/entity"
	domainerrors "echofleet/internal/domain/errors"
	"echofleet/internal/domain/repository"
	"echofleet/internal/domain/service"
	"echofleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultLogTail = 100

// OrchestratorTimings bounds the health-check machinery. Production uses
// Defaults; tests shrink them.
type OrchestratorTimings struct {
	ReadyTimeout  time.Duration // Wall-clock cap on the readiness loop.
	PollInterval  time.Duration // Tick spacing inside the readiness loop.
	ProbeAttempts int           // HTTP attempts in the steady-state check.
	RetryDelay    time.Duration // Spacing between steady-state attempts.
}

// DefaultOrchestratorTimings returns the production timings.
func DefaultOrchestratorTimings() OrchestratorTimings {
	return OrchestratorTimings{
		ReadyTimeout:  30 * time.Second,
		PollInterval:  500 * time.Millisecond,
		ProbeAttempts: 3,
		RetryDelay:    time.Second,
	}
}

type orchestratorService struct {
	instanceRepo repository.InstanceRepository
	engine       service.ContainerEngine
	prober       service.HealthProber
	allocator    usecase.PortAllocator
	renderer     service.ConfigRenderer
	dockerCfg    *config.DockerConfig
	logger       *slog.Logger
	timings      OrchestratorTimings
}

// NewOrchestratorService creates the container lifecycle orchestrator.
func NewOrchestratorService(
	instanceRepo repository.InstanceRepository,
	engine service.ContainerEngine,
	prober service.HealthProber,
	allocator usecase.PortAllocator,
	renderer service.ConfigRenderer,
	dockerCfg *config.DockerConfig,
	logger *slog.Logger,
	timings OrchestratorTimings,
) usecase.OrchestratorUsecase {
	return &orchestratorService{
		instanceRepo: instanceRepo,
		engine:       engine,
		prober:       prober,
		allocator:    allocator,
		renderer:     renderer,
		dockerCfg:    dockerCfg,
		logger:       logger,
		timings:      timings,
	}
}

// Deploy runs the six-stage pipeline. The instance is registered whatever
// the health outcome; a created-but-unhealthy container is left running
// for diagnosis.
func (s *orchestratorService) Deploy(ctx context.Context, req *usecase.DeployRequest) (*entity.DeployResult, error) {
	instanceID := instanceIDFor(req.Config)
	existing, err := s.instanceRepo.FindInstanceByID(ctx, instanceID)
	if err != nil && !errors.Is(err, repository.ErrInstanceNotFound) {
		return nil, errors.Wrap(err, "failed to look up instance")
	}

	// Stage 1: resolve the host port. Redeploys keep their port.
	port, allocated, err := s.resolvePort(ctx, req.RequestedPort, existing)
	if err != nil {
		return nil, err
	}
	releaseOnFailure := func() {
		if allocated {
			s.allocator.Release(port)
		}
	}

	// Stage 2: render the provider config and auxiliary assets.
	configPath, recordDir, err := s.writeInstanceAssets(instanceID, req.Config)
	if err != nil {
		releaseOnFailure()
		s.logger.ErrorContext(ctx, "deploy failed rendering config",
			slog.String("instanceId", instanceID), slog.String("error", err.Error()))

		return nil, domainerrors.ErrDeployFailed.WrapMessage("render instance config")
	}

	// Stage 3: make sure the image is present.
	if err := s.engine.EnsureImage(ctx, s.dockerCfg.Image); err != nil {
		releaseOnFailure()
		s.logger.ErrorContext(ctx, "deploy failed pulling image",
			slog.String("image", s.dockerCfg.Image), slog.String("error", err.Error()))

		return nil, domainerrors.ErrDeployFailed.WrapMessage("pull image")
	}

	// Stage 4: replace any previous container, then create the new one.
	if prev, err := s.engine.FindContainer(ctx, instanceID); err == nil {
		_ = s.engine.StopContainer(ctx, prev.ID)
		if err := s.engine.RemoveContainer(ctx, prev.ID); err != nil {
			releaseOnFailure()

			return nil, domainerrors.ErrDeployFailed.WrapMessage("remove previous container")
		}
	} else if !errors.Is(err, service.ErrContainerNotFound) {
		releaseOnFailure()

		return nil, domainerrors.ErrDeployFailed.WrapMessage("inspect previous container")
	}

	containerID, err := s.engine.CreateContainer(ctx, &service.ContainerSpec{
		InstanceID:   instanceID,
		Image:        s.dockerCfg.Image,
		HostPort:     port,
		ConfigPath:   configPath,
		RecordDir:    recordDir,
		GreetingPath: s.dockerCfg.GreetingPath,
	})
	if err != nil {
		releaseOnFailure()
		s.logger.ErrorContext(ctx, "deploy failed creating container",
			slog.String("instanceId", instanceID), slog.String("error", err.Error()))

		return nil, domainerrors.ErrDeployFailed.WrapMessage("create container")
	}

	// Stage 5: start it.
	if err := s.engine.StartContainer(ctx, containerID); err != nil {
		s.logger.ErrorContext(ctx, "deploy failed starting container",
			slog.String("instanceId", instanceID), slog.String("error", err.Error()))

		return nil, domainerrors.ErrDeployFailed.WrapMessage("start container")
	}

	// Stage 6: wait for readiness, then register whatever the outcome.
	health := s.waitUntilReady(ctx, instanceID, containerID, port)

	instance := existing
	if instance == nil {
		instance = &entity.Instance{
			ID:      instanceID,
			OwnerID: req.Owner,
		}
	}
	instance.Name = req.Config.Name
	instance.Host = s.dockerCfg.InstanceHost()
	instance.Port = port
	instance.UseTLS = false

	if existing == nil {
		err = s.instanceRepo.CreateInstance(ctx, instance)
	} else {
		err = s.instanceRepo.UpdateInstance(ctx, instance)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to register instance")
	}

	status := statusFromHealth(health)
	s.logger.InfoContext(ctx, "deploy finished",
		slog.String("instanceId", instanceID),
		slog.Int("port", port),
		slog.String("health", string(health.Status)),
		slog.String("status", string(status)),
	)

	return &entity.DeployResult{
		ContainerID:   containerID,
		ContainerName: "echofleet-" + instanceID,
		InstanceID:    instanceID,
		Port:          port,
		WSURL:         instance.WebSocketURL(),
		Status:        status,
		Health:        health,
	}, nil
}

// List enumerates all registered instances without computing health.
func (s *orchestratorService) List(ctx context.Context) ([]*entity.Instance, error) {
	return s.instanceRepo.FindAllInstances(ctx)
}

// ListForUser enumerates the caller's instances plus shared ones.
func (s *orchestratorService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Instance, error) {
	return s.instanceRepo.FindInstancesVisibleTo(ctx, userID)
}

// Get resolves one instance and computes its live health.
func (s *orchestratorService) Get(ctx context.Context, id string) (*usecase.InstanceDetail, error) {
	instance, err := s.findInstance(ctx, id)
	if err != nil {
		return nil, err
	}

	health := s.healthCheck(ctx, instance)

	return &usecase.InstanceDetail{
		Instance: instance,
		Health:   health,
		Status:   statusFromHealth(health),
	}, nil
}

// GetForUser is Get with shared-read permission applied.
func (s *orchestratorService) GetForUser(ctx context.Context, userID uuid.UUID, id string) (*usecase.InstanceDetail, error) {
	instance, err := s.authorize(ctx, userID, id, true)
	if err != nil {
		return nil, err
	}

	health := s.healthCheck(ctx, instance)

	return &usecase.InstanceDetail{
		Instance: instance,
		Health:   health,
		Status:   statusFromHealth(health),
	}, nil
}

// Start starts the instance's container.
func (s *orchestratorService) Start(ctx context.Context, id string) error {
	instance, err := s.findInstance(ctx, id)
	if err != nil {
		return err
	}

	return s.startContainer(ctx, instance.ID)
}

// StartForUser is Start restricted to the owner.
func (s *orchestratorService) StartForUser(ctx context.Context, userID uuid.UUID, id string) error {
	instance, err := s.authorize(ctx, userID, id, false)
	if err != nil {
		return err
	}

	return s.startContainer(ctx, instance.ID)
}

// Stop stops the instance's container.
func (s *orchestratorService) Stop(ctx context.Context, id string) error {
	instance, err := s.findInstance(ctx, id)
	if err != nil {
		return err
	}

	return s.stopContainer(ctx, instance.ID)
}

// StopForUser is Stop restricted to the owner.
func (s *orchestratorService) StopForUser(ctx context.Context, userID uuid.UUID, id string) error {
	instance, err := s.authorize(ctx, userID, id, false)
	if err != nil {
		return err
	}

	return s.stopContainer(ctx, instance.ID)
}

// Delete stops and removes the container, then the registry row.
func (s *orchestratorService) Delete(ctx context.Context, id string) error {
	instance, err := s.findInstance(ctx, id)
	if err != nil {
		return err
	}

	return s.deleteInstance(ctx, instance)
}

// DeleteForUser is Delete restricted to the owner.
func (s *orchestratorService) DeleteForUser(ctx context.Context, userID uuid.UUID, id string) error {
	instance, err := s.authorize(ctx, userID, id, false)
	if err != nil {
		return err
	}

	return s.deleteInstance(ctx, instance)
}

// Logs returns the tail of the container log.
func (s *orchestratorService) Logs(ctx context.Context, id string, tail int) (string, error) {
	instance, err := s.findInstance(ctx, id)
	if err != nil {
		return "", err
	}

	return s.containerLogs(ctx, instance.ID, tail)
}

// LogsForUser is Logs with shared-read permission applied.
func (s *orchestratorService) LogsForUser(ctx context.Context, userID uuid.UUID, id string, tail int) (string, error) {
	instance, err := s.authorize(ctx, userID, id, true)
	if err != nil {
		return "", err
	}

	return s.containerLogs(ctx, instance.ID, tail)
}

// HealthCheck runs the steady-state two-phase health probe.
func (s *orchestratorService) HealthCheck(ctx context.Context, id string) (*entity.HealthCheckResult, error) {
	instance, err := s.findInstance(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.healthCheck(ctx, instance), nil
}

// --- pipeline internals ---

func (s *orchestratorService) resolvePort(ctx context.Context, requested int, existing *entity.Instance) (port int, allocated bool, err error) {
	if requested > 0 {
		return requested, false, nil
	}
	if existing != nil && existing.Port != 0 {
		return existing.Port, false, nil
	}

	port, err = s.allocator.Allocate(ctx)
	if err != nil {
		return 0, false, err
	}

	return port, true, nil
}

// writeInstanceAssets renders the config file and prepares the per-instance
// record directory, returning absolute host paths for bind mounting.
func (s *orchestratorService) writeInstanceAssets(instanceID string, cfg *entity.InstanceConfig) (configPath, recordDir string, err error) {
	rendered, err := s.renderer.Render(cfg)
	if err != nil {
		return "", "", err
	}

	configDir := filepath.Join(s.dockerCfg.ConfigDir, instanceID)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", "", errors.Wrap(err, "failed to create config directory")
	}

	configPath = filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(configPath, rendered, 0o644); err != nil {
		return "", "", errors.Wrap(err, "failed to write config file")
	}

	recordDir = filepath.Join(s.dockerCfg.RecordDir, instanceID)
	if err := os.MkdirAll(recordDir, 0o755); err != nil {
		return "", "", errors.Wrap(err, "failed to create record directory")
	}

	if configPath, err = filepath.Abs(configPath); err != nil {
		return "", "", errors.Wrap(err, "failed to resolve config path")
	}
	if recordDir, err = filepath.Abs(recordDir); err != nil {
		return "", "", errors.Wrap(err, "failed to resolve record directory")
	}

	return configPath, recordDir, nil
}

// waitUntilReady polls until the container answers HTTP, exits, or the
// window closes. An exited container aborts the loop immediately.
func (s *orchestratorService) waitUntilReady(ctx context.Context, instanceID, containerID string, port int) *entity.HealthCheckResult {
	deadline := time.Now().Add(s.timings.ReadyTimeout)

	for time.Now().Before(deadline) {
		info, err := s.engine.FindContainer(ctx, instanceID)
		if err != nil {
			if errors.Is(err, service.ErrContainerNotFound) {
				return &entity.HealthCheckResult{
					Status: entity.HealthStatusNotFound,
					Detail: "container disappeared during startup",
				}
			}

			s.logger.WarnContext(ctx, "readiness inspect failed",
				slog.String("instanceId", instanceID), slog.String("error", err.Error()))
		} else if !info.Running {
			logTail := s.bestEffortLogs(ctx, containerID)

			return &entity.HealthCheckResult{
				Status:    entity.HealthStatusUnhealthy,
				Detail:    "container stopped unexpectedly after starting",
				LogTail:   logTail,
				ErrorHint: extractErrorHint(logTail),
			}
		} else if s.prober.Reachable(ctx, port) {
			return &entity.HealthCheckResult{
				Status:           entity.HealthStatusHealthy,
				ContainerRunning: true,
			}
		}

		select {
		case <-ctx.Done():
			return &entity.HealthCheckResult{
				Status:           entity.HealthStatusUnhealthy,
				ContainerRunning: true,
				Detail:           "readiness wait cancelled",
			}
		case <-time.After(s.timings.PollInterval):
		}
	}

	logTail := s.bestEffortLogs(ctx, containerID)

	return &entity.HealthCheckResult{
		Status:           entity.HealthStatusUnhealthy,
		ContainerRunning: true,
		Detail:           "container is running but not answering HTTP, likely a bind or port misconfiguration",
		LogTail:          logTail,
		ErrorHint:        extractErrorHint(logTail),
	}
}

// healthCheck is the steady-state two-phase probe: process level first,
// then HTTP with bounded sequential retries. The HTTP phase never runs
// for a container that is not running.
func (s *orchestratorService) healthCheck(ctx context.Context, instance *entity.Instance) *entity.HealthCheckResult {
	info, err := s.engine.FindContainer(ctx, instance.ID)
	if err != nil {
		if errors.Is(err, service.ErrContainerNotFound) {
			return &entity.HealthCheckResult{
				Status: entity.HealthStatusNotFound,
				Detail: "no container deployed for this instance",
			}
		}

		return &entity.HealthCheckResult{
			Status: entity.HealthStatusUnhealthy,
			Detail: "container inspect failed: " + err.Error(),
		}
	}

	if !info.Running {
		logTail := s.bestEffortLogs(ctx, info.ID)

		return &entity.HealthCheckResult{
			Status:    entity.HealthStatusUnhealthy,
			Detail:    "container is not running",
			LogTail:   logTail,
			ErrorHint: extractErrorHint(logTail),
		}
	}

	for attempt := 0; attempt < s.timings.ProbeAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(s.timings.RetryDelay):
			}
			if ctx.Err() != nil {
				break
			}
		}
		if s.prober.Reachable(ctx, instance.Port) {
			return &entity.HealthCheckResult{
				Status:           entity.HealthStatusHealthy,
				ContainerRunning: true,
			}
		}
	}

	logTail := s.bestEffortLogs(ctx, info.ID)

	return &entity.HealthCheckResult{
		Status:           entity.HealthStatusUnhealthy,
		ContainerRunning: true,
		Detail:           "container is running but HTTP is unreachable",
		LogTail:          logTail,
		ErrorHint:        extractErrorHint(logTail),
	}
}

func (s *orchestratorService) bestEffortLogs(ctx context.Context, containerID string) string {
	logTail, err := s.engine.ContainerLogs(ctx, containerID, defaultLogTail)
	if err != nil {
		return ""
	}

	return logTail
}

// findInstance resolves by id first, then by exact name. Instance names
// are user-chosen, so the display name doubles as a handle in the API.
func (s *orchestratorService) findInstance(ctx context.Context, id string) (*entity.Instance, error) {
	instance, err := s.instanceRepo.FindInstanceByID(ctx, id)
	if err == nil {
		return instance, nil
	}
	if !errors.Is(err, repository.ErrInstanceNotFound) {
		return nil, errors.Wrap(err, "failed to find instance")
	}

	all, err := s.instanceRepo.FindAllInstances(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find instance")
	}
	for _, candidate := range all {
		if candidate.Name == id {
			return candidate, nil
		}
	}

	return nil, domainerrors.ErrInstanceNotFound
}

// authorize resolves the instance and applies the ownership predicate.
func (s *orchestratorService) authorize(ctx context.Context, userID uuid.UUID, id string, allowShared bool) (*entity.Instance, error) {
	instance, err := s.findInstance(ctx, id)
	if err != nil {
		return nil, err
	}

	if !service.Allowed(instance.OwnerID, userID, allowShared) {
		return nil, domainerrors.ErrForbidden
	}

	return instance, nil
}

func (s *orchestratorService) startContainer(ctx context.Context, instanceID string) error {
	info, err := s.engine.FindContainer(ctx, instanceID)
	if err != nil {
		if errors.Is(err, service.ErrContainerNotFound) {
			return domainerrors.ErrNotFound.WithMessage("no container deployed for this instance")
		}

		return errors.Wrap(err, "failed to find container")
	}

	return s.engine.StartContainer(ctx, info.ID)
}

func (s *orchestratorService) stopContainer(ctx context.Context, instanceID string) error {
	info, err := s.engine.FindContainer(ctx, instanceID)
	if err != nil {
		if errors.Is(err, service.ErrContainerNotFound) {
			return domainerrors.ErrNotFound.WithMessage("no container deployed for this instance")
		}

		return errors.Wrap(err, "failed to find container")
	}

	return s.engine.StopContainer(ctx, info.ID)
}

// deleteInstance removes the container first; the registry row is only
// deleted once the container is confirmed gone.
func (s *orchestratorService) deleteInstance(ctx context.Context, instance *entity.Instance) error {
	info, err := s.engine.FindContainer(ctx, instance.ID)
	if err == nil {
		_ = s.engine.StopContainer(ctx, info.ID)
		if err := s.engine.RemoveContainer(ctx, info.ID); err != nil {
			return errors.Wrap(err, "failed to remove container")
		}
	} else if !errors.Is(err, service.ErrContainerNotFound) {
		return errors.Wrap(err, "failed to find container")
	}

	if err := s.instanceRepo.DeleteInstance(ctx, instance.ID); err != nil {
		return errors.Wrap(err, "failed to delete instance")
	}

	s.allocator.Release(instance.Port)

	return nil
}

func (s *orchestratorService) containerLogs(ctx context.Context, instanceID string, tail int) (string, error) {
	if tail <= 0 {
		tail = defaultLogTail
	}

	info, err := s.engine.FindContainer(ctx, instanceID)
	if err != nil {
		if errors.Is(err, service.ErrContainerNotFound) {
			return "", domainerrors.ErrNotFound.WithMessage("no container deployed for this instance")
		}

		return "", errors.Wrap(err, "failed to find container")
	}

	return s.engine.ContainerLogs(ctx, info.ID, tail)
}

func statusFromHealth(health *entity.HealthCheckResult) entity.InstanceStatus {
	switch {
	case health.Status == entity.HealthStatusHealthy:
		return entity.InstanceStatusRunning
	case health.ContainerRunning:
		return entity.InstanceStatusError
	case health.Status == entity.HealthStatusNotFound:
		return entity.InstanceStatusNotDeployed
	default:
		return entity.InstanceStatusStopped
	}
}

// instanceIDFor derives a stable instance ID from the config name, or a
// random short ID when no usable name is given.
func instanceIDFor(cfg *entity.InstanceConfig) string {
	var slug strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(cfg.Name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			slug.WriteRune(r)
		case r == ' ', r == '-', r == '_', r == '.':
			slug.WriteRune('-')
		}
	}

	id := strings.Trim(slug.String(), "-")
	if id == "" {
		return uuid.NewString()[:8]
	}

	return id
}
