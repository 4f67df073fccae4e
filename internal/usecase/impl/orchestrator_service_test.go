package impl

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"echofleet/config"
	"echofleet/internal/domain/entity"
	domainerrors "echofleet/internal/domain/errors"
	"echofleet/internal/domain/repository"
	"echofleet/internal/domain/service"
	mockRepo "echofleet/internal/mocks/repository"
	mockSvc "echofleet/internal/mocks/service"
	"echofleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orchestratorFixtures holds all test dependencies for orchestrator tests.
type orchestratorFixtures struct {
	service      usecase.OrchestratorUsecase
	instanceRepo *mockRepo.MockInstanceRepository
	engine       *mockSvc.MockContainerEngine
	prober       *mockSvc.MockHealthProber
	renderer     *mockSvc.MockConfigRenderer
	dockerCfg    *config.DockerConfig
}

func createTestOrchestrator(t *testing.T) orchestratorFixtures {
	instanceRepo := mockRepo.NewMockInstanceRepository(t)
	engine := mockSvc.NewMockContainerEngine(t)
	prober := mockSvc.NewMockHealthProber(t)
	renderer := mockSvc.NewMockConfigRenderer(t)

	dir := t.TempDir()
	dockerCfg := &config.DockerConfig{
		Image:          "example/assistant:latest",
		ConfigDir:      filepath.Join(dir, "configs"),
		RecordDir:      filepath.Join(dir, "records"),
		GreetingPath:   filepath.Join(dir, "hello.wav"),
		PortRangeStart: 8080,
		PortRangeEnd:   8180,
	}

	allocator := NewPortAllocator(dockerCfg.PortRangeStart, dockerCfg.PortRangeEnd, instanceRepo, engine)

	timings := OrchestratorTimings{
		ReadyTimeout:  200 * time.Millisecond,
		PollInterval:  10 * time.Millisecond,
		ProbeAttempts: 2,
		RetryDelay:    10 * time.Millisecond,
	}

	svc := NewOrchestratorService(instanceRepo, engine, prober, allocator, renderer, dockerCfg, slog.New(slog.DiscardHandler), timings)

	return orchestratorFixtures{
		service:      svc,
		instanceRepo: instanceRepo,
		engine:       engine,
		prober:       prober,
		renderer:     renderer,
		dockerCfg:    dockerCfg,
	}
}

func TestOrchestrator_Deploy_Healthy(t *testing.T) {
	fx := createTestOrchestrator(t)
	ctx := context.Background()
	owner := uuid.New()

	cfg := &entity.InstanceConfig{Name: "Kitchen Helper"}

	fx.instanceRepo.EXPECT().
		FindInstanceByID(ctx, "kitchen-helper").
		Return(nil, repository.ErrInstanceNotFound)
	fx.engine.EXPECT().
		ListManaged(ctx).
		Return(nil, nil)
	fx.instanceRepo.EXPECT().
		ListAllocatedPorts(ctx).
		Return(nil, nil)
	fx.renderer.EXPECT().
		Render(cfg).
		Return([]byte("name = \"Kitchen Helper\"\n"), nil)
	fx.engine.EXPECT().
		EnsureImage(ctx, "example/assistant:latest").
		Return(nil)
	fx.engine.EXPECT().
		FindContainer(ctx, "kitchen-helper").
		Return(nil, service.ErrContainerNotFound).
		Once()
	fx.engine.EXPECT().
		CreateContainer(ctx, mock.AnythingOfType("*service.ContainerSpec")).
		Run(func(ctx context.Context, spec *service.ContainerSpec) {
			assert.Equal(t, "kitchen-helper", spec.InstanceID)
			assert.Equal(t, 8080, spec.HostPort)
			assert.FileExists(t, spec.ConfigPath)
			assert.DirExists(t, spec.RecordDir)
		}).
		Return("cid-1", nil)
	fx.engine.EXPECT().
		StartContainer(ctx, "cid-1").
		Return(nil)
	fx.engine.EXPECT().
		FindContainer(ctx, "kitchen-helper").
		Return(&service.ContainerInfo{ID: "cid-1", Running: true, HostPort: 8080}, nil)
	fx.prober.EXPECT().
		Reachable(ctx, 8080).
		Return(true)
	fx.instanceRepo.EXPECT().
		CreateInstance(ctx, mock.AnythingOfType("*entity.Instance")).
		Run(func(ctx context.Context, instance *entity.Instance) {
			assert.Equal(t, "kitchen-helper", instance.ID)
			assert.Equal(t, "localhost", instance.Host)
			assert.Equal(t, 8080, instance.Port)
			require.NotNil(t, instance.OwnerID)
			assert.Equal(t, owner, *instance.OwnerID)
		}).
		Return(nil)

	result, err := fx.service.Deploy(ctx, &usecase.DeployRequest{Config: cfg, Owner: &owner})
	require.NoError(t, err)
	assert.Equal(t, "cid-1", result.ContainerID)
	assert.Equal(t, "echofleet-kitchen-helper", result.ContainerName)
	assert.Equal(t, 8080, result.Port)
	assert.Equal(t, "ws://localhost:8080/ws/", result.WSURL)
	assert.Equal(t, entity.InstanceStatusRunning, result.Status)
	assert.Equal(t, entity.HealthStatusHealthy, result.Health.Status)
}

func TestOrchestrator_Deploy_UnhealthyStillRegisters(t *testing.T) {
	fx := createTestOrchestrator(t)
	ctx := context.Background()

	cfg := &entity.InstanceConfig{Name: "broken"}

	fx.instanceRepo.EXPECT().
		FindInstanceByID(ctx, "broken").
		Return(nil, repository.ErrInstanceNotFound)
	fx.engine.EXPECT().ListManaged(ctx).Return(nil, nil)
	fx.instanceRepo.EXPECT().ListAllocatedPorts(ctx).Return(nil, nil)
	fx.renderer.EXPECT().Render(cfg).Return([]byte("name = \"broken\"\n"), nil)
	fx.engine.EXPECT().EnsureImage(ctx, "example/assistant:latest").Return(nil)
	fx.engine.EXPECT().
		FindContainer(ctx, "broken").
		Return(nil, service.ErrContainerNotFound).
		Once()
	fx.engine.EXPECT().
		CreateContainer(ctx, mock.AnythingOfType("*service.ContainerSpec")).
		Return("cid-2", nil)
	fx.engine.EXPECT().StartContainer(ctx, "cid-2").Return(nil)

	// The container exits right after starting; the readiness loop must
	// stop immediately and surface the log hint.
	fx.engine.EXPECT().
		FindContainer(ctx, "broken").
		Return(&service.ContainerInfo{ID: "cid-2", Running: false, ExitCode: 1}, nil)
	fx.engine.EXPECT().
		ContainerLogs(ctx, "cid-2", defaultLogTail).
		Return("TOML parse error at line 1\n", nil)
	fx.instanceRepo.EXPECT().
		CreateInstance(ctx, mock.AnythingOfType("*entity.Instance")).
		Return(nil)

	result, err := fx.service.Deploy(ctx, &usecase.DeployRequest{Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, entity.InstanceStatusStopped, result.Status)
	assert.Equal(t, entity.HealthStatusUnhealthy, result.Health.Status)
	assert.False(t, result.Health.ContainerRunning)
	assert.Contains(t, result.Health.ErrorHint, "invalid TOML syntax")
}

func TestOrchestrator_Deploy_PortExhaustion(t *testing.T) {
	fx := createTestOrchestrator(t)
	ctx := context.Background()

	cfg := &entity.InstanceConfig{Name: "late"}

	fx.instanceRepo.EXPECT().
		FindInstanceByID(ctx, "late").
		Return(nil, repository.ErrInstanceNotFound)
	fx.engine.EXPECT().
		ListManaged(ctx).
		Return([]*service.ManagedContainer{
			{InstanceID: "a", ContainerID: "c1", Running: true, HostPort: 8080},
		}, nil)

	ports := make([]int, 0, 100)
	for p := 8081; p <= 8180; p++ {
		ports = append(ports, p)
	}
	fx.instanceRepo.EXPECT().
		ListAllocatedPorts(ctx).
		Return(ports, nil)

	result, err := fx.service.Deploy(ctx, &usecase.DeployRequest{Config: cfg})
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrNoPortsAvailable, err)
}

func TestOrchestrator_Deploy_RequestedPortUsedVerbatim(t *testing.T) {
	fx := createTestOrchestrator(t)
	ctx := context.Background()

	cfg := &entity.InstanceConfig{Name: "pinned"}

	fx.instanceRepo.EXPECT().
		FindInstanceByID(ctx, "pinned").
		Return(nil, repository.ErrInstanceNotFound)
	fx.renderer.EXPECT().Render(cfg).Return([]byte("name = \"pinned\"\n"), nil)
	fx.engine.EXPECT().EnsureImage(ctx, "example/assistant:latest").Return(nil)
	fx.engine.EXPECT().
		FindContainer(ctx, "pinned").
		Return(nil, service.ErrContainerNotFound).
		Once()
	fx.engine.EXPECT().
		CreateContainer(ctx, mock.AnythingOfType("*service.ContainerSpec")).
		Run(func(ctx context.Context, spec *service.ContainerSpec) {
			assert.Equal(t, 9999, spec.HostPort)
		}).
		Return("cid-3", nil)
	fx.engine.EXPECT().StartContainer(ctx, "cid-3").Return(nil)
	fx.engine.EXPECT().
		FindContainer(ctx, "pinned").
		Return(&service.ContainerInfo{ID: "cid-3", Running: true, HostPort: 9999}, nil)
	fx.prober.EXPECT().Reachable(ctx, 9999).Return(true)
	fx.instanceRepo.EXPECT().
		CreateInstance(ctx, mock.AnythingOfType("*entity.Instance")).
		Return(nil)

	result, err := fx.service.Deploy(ctx, &usecase.DeployRequest{Config: cfg, RequestedPort: 9999})
	require.NoError(t, err)
	assert.Equal(t, 9999, result.Port)
}

func TestOrchestrator_HealthCheck_StoppedContainerSkipsHTTP(t *testing.T) {
	fx := createTestOrchestrator(t)
	ctx := context.Background()

	fx.instanceRepo.EXPECT().
		FindInstanceByID(ctx, "kitchen").
		Return(&entity.Instance{ID: "kitchen", Host: "localhost", Port: 8080}, nil)
	fx.engine.EXPECT().
		FindContainer(ctx, "kitchen").
		Return(&service.ContainerInfo{ID: "cid-1", Running: false, ExitCode: 137}, nil)
	fx.engine.EXPECT().
		ContainerLogs(ctx, "cid-1", defaultLogTail).
		Return("", nil)

	// No Reachable expectation: the HTTP phase must not run for a stopped
	// container.
	health, err := fx.service.HealthCheck(ctx, "kitchen")
	require.NoError(t, err)
	assert.Equal(t, entity.HealthStatusUnhealthy, health.Status)
	assert.False(t, health.ContainerRunning)
}

func TestOrchestrator_HealthCheck_RetriesThenUnhealthy(t *testing.T) {
	fx := createTestOrchestrator(t)
	ctx := context.Background()

	fx.instanceRepo.EXPECT().
		FindInstanceByID(ctx, "kitchen").
		Return(&entity.Instance{ID: "kitchen", Host: "localhost", Port: 8080}, nil)
	fx.engine.EXPECT().
		FindContainer(ctx, "kitchen").
		Return(&service.ContainerInfo{ID: "cid-1", Running: true, HostPort: 8080}, nil)
	fx.prober.EXPECT().
		Reachable(ctx, 8080).
		Return(false).
		Times(2)
	fx.engine.EXPECT().
		ContainerLogs(ctx, "cid-1", defaultLogTail).
		Return("Connection refused\n", nil)

	health, err := fx.service.HealthCheck(ctx, "kitchen")
	require.NoError(t, err)
	assert.Equal(t, entity.HealthStatusUnhealthy, health.Status)
	assert.True(t, health.ContainerRunning)
	assert.Contains(t, health.ErrorHint, "Cannot connect to external service")
}

func TestOrchestrator_HealthCheck_NoContainer(t *testing.T) {
	fx := createTestOrchestrator(t)
	ctx := context.Background()

	fx.instanceRepo.EXPECT().
		FindInstanceByID(ctx, "kitchen").
		Return(&entity.Instance{ID: "kitchen", Host: "localhost", Port: 8080}, nil)
	fx.engine.EXPECT().
		FindContainer(ctx, "kitchen").
		Return(nil, service.ErrContainerNotFound)

	health, err := fx.service.HealthCheck(ctx, "kitchen")
	require.NoError(t, err)
	assert.Equal(t, entity.HealthStatusNotFound, health.Status)
}

func TestOrchestrator_SharedInstancePermissions(t *testing.T) {
	fx := createTestOrchestrator(t)
	ctx := context.Background()
	caller := uuid.New()

	shared := &entity.Instance{ID: "shared", Host: "localhost", Port: 8080, OwnerID: nil}

	// Reads on a shared instance are open to everyone.
	fx.instanceRepo.EXPECT().
		FindInstanceByID(ctx, "shared").
		Return(shared, nil)
	fx.engine.EXPECT().
		FindContainer(ctx, "shared").
		Return(&service.ContainerInfo{ID: "cid-1", Running: true, HostPort: 8080}, nil)
	fx.prober.EXPECT().Reachable(ctx, 8080).Return(true)

	detail, err := fx.service.GetForUser(ctx, caller, "shared")
	require.NoError(t, err)
	assert.Equal(t, entity.InstanceStatusRunning, detail.Status)

	// Mutations on a shared instance are forbidden for every caller.
	err = fx.service.StopForUser(ctx, caller, "shared")
	assert.Equal(t, domainerrors.ErrForbidden, err)

	err = fx.service.DeleteForUser(ctx, caller, "shared")
	assert.Equal(t, domainerrors.ErrForbidden, err)
}

func TestOrchestrator_PrivateInstanceForbiddenToOthers(t *testing.T) {
	fx := createTestOrchestrator(t)
	ctx := context.Background()
	owner := uuid.New()

	private := &entity.Instance{ID: "private", Host: "localhost", Port: 8080, OwnerID: &owner}

	fx.instanceRepo.EXPECT().
		FindInstanceByID(ctx, "private").
		Return(private, nil)

	_, err := fx.service.GetForUser(ctx, uuid.New(), "private")
	assert.Equal(t, domainerrors.ErrForbidden, err)
}

func TestOrchestrator_Delete_RowSurvivesFailedRemoval(t *testing.T) {
	fx := createTestOrchestrator(t)
	ctx := context.Background()

	fx.instanceRepo.EXPECT().
		FindInstanceByID(ctx, "kitchen").
		Return(&entity.Instance{ID: "kitchen", Host: "localhost", Port: 8080}, nil)
	fx.engine.EXPECT().
		FindContainer(ctx, "kitchen").
		Return(&service.ContainerInfo{ID: "cid-1", Running: true}, nil)
	fx.engine.EXPECT().StopContainer(ctx, "cid-1").Return(nil)
	fx.engine.EXPECT().
		RemoveContainer(ctx, "cid-1").
		Return(assert.AnError)

	// DeleteInstance must not be called when removal fails.
	err := fx.service.Delete(ctx, "kitchen")
	assert.ErrorContains(t, err, "failed to remove container")
}

func TestOrchestrator_Delete_Success(t *testing.T) {
	fx := createTestOrchestrator(t)
	ctx := context.Background()

	fx.instanceRepo.EXPECT().
		FindInstanceByID(ctx, "kitchen").
		Return(&entity.Instance{ID: "kitchen", Host: "localhost", Port: 8080}, nil)
	fx.engine.EXPECT().
		FindContainer(ctx, "kitchen").
		Return(&service.ContainerInfo{ID: "cid-1", Running: true}, nil)
	fx.engine.EXPECT().StopContainer(ctx, "cid-1").Return(nil)
	fx.engine.EXPECT().RemoveContainer(ctx, "cid-1").Return(nil)
	fx.instanceRepo.EXPECT().DeleteInstance(ctx, "kitchen").Return(nil)

	require.NoError(t, fx.service.Delete(ctx, "kitchen"))
}

func TestOrchestrator_Logs_DefaultTail(t *testing.T) {
	fx := createTestOrchestrator(t)
	ctx := context.Background()

	fx.instanceRepo.EXPECT().
		FindInstanceByID(ctx, "kitchen").
		Return(&entity.Instance{ID: "kitchen", Host: "localhost", Port: 8080}, nil)
	fx.engine.EXPECT().
		FindContainer(ctx, "kitchen").
		Return(&service.ContainerInfo{ID: "cid-1", Running: true}, nil)
	fx.engine.EXPECT().
		ContainerLogs(ctx, "cid-1", defaultLogTail).
		Return("line\n", nil)

	logTail, err := fx.service.Logs(ctx, "kitchen", 0)
	require.NoError(t, err)
	assert.Equal(t, "line\n", logTail)
}

func TestInstanceIDFor(t *testing.T) {
	assert.Equal(t, "kitchen-helper", instanceIDFor(&entity.InstanceConfig{Name: "Kitchen Helper"}))
	assert.Equal(t, "lab-2", instanceIDFor(&entity.InstanceConfig{Name: "  Lab 2  "}))

	random := instanceIDFor(&entity.InstanceConfig{Name: "!!!"})
	assert.Len(t, random, 8)
}

func TestWriteInstanceAssets_PathsAreAbsolute(t *testing.T) {
	fx := createTestOrchestrator(t)

	cfg := &entity.InstanceConfig{Name: "abs"}
	fx.renderer.EXPECT().Render(cfg).Return([]byte("name = \"abs\"\n"), nil)

	svc := fx.service.(*orchestratorService)
	configPath, recordDir, err := svc.writeInstanceAssets("abs", cfg)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(configPath))
	assert.True(t, filepath.IsAbs(recordDir))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "name = \"abs\"\n", string(data))
}
