package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"echofleet/internal/domain/entity"
	domainerrors "echofleet/internal/domain/errors"
	"echofleet/internal/domain/repository"
	mockRepo "echofleet/internal/mocks/repository"
	"echofleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// routerServiceFixtures holds all test dependencies for router tests.
type routerServiceFixtures struct {
	service      usecase.RouterUsecase
	deviceRepo   *mockRepo.MockDeviceRepository
	instanceRepo *mockRepo.MockInstanceRepository
}

func createTestRouterService(t *testing.T) routerServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	instanceRepo := mockRepo.NewMockInstanceRepository(t)
	service := NewRouterService(deviceRepo, instanceRepo, slog.New(slog.DiscardHandler))

	return routerServiceFixtures{
		service:      service,
		deviceRepo:   deviceRepo,
		instanceRepo: instanceRepo,
	}
}

func TestRouterService_Resolve_PreservesRawIDAndQuery(t *testing.T) {
	fx := createTestRouterService(t)
	ctx := context.Background()
	owner := uuid.New()
	instanceID := "kitchen"

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "a1b2c3d4e5f6").
		Return(&entity.Device{
			DeviceID:        "a1b2c3d4e5f6",
			OwnerID:         owner,
			BoundInstanceID: &instanceID,
		}, nil)
	fx.instanceRepo.EXPECT().
		FindInstanceByID(ctx, instanceID).
		Return(&entity.Instance{
			ID:      instanceID,
			Host:    "fleet.example.com",
			Port:    8081,
			OwnerID: &owner,
		}, nil)

	decision, err := fx.service.Resolve(ctx, "A1:B2:C3:D4:E5:F6", "token=abc&v=2")
	require.NoError(t, err)
	assert.Equal(t, "a1b2c3d4e5f6", decision.DeviceID)
	assert.Equal(t, "ws://fleet.example.com:8081/ws/A1:B2:C3:D4:E5:F6?token=abc&v=2", decision.UpstreamURL)
}

func TestRouterService_Resolve_InvalidDeviceID(t *testing.T) {
	fx := createTestRouterService(t)

	decision, err := fx.service.Resolve(context.Background(), "bogus", "")
	assert.Nil(t, decision)
	assert.Equal(t, domainerrors.ErrInvalidDeviceID, err)
}

func TestRouterService_Resolve_UnknownDevice(t *testing.T) {
	fx := createTestRouterService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "a1b2c3d4e5f6").
		Return(nil, repository.ErrDeviceNotFound)

	decision, err := fx.service.Resolve(ctx, "a1b2c3d4e5f6", "")
	assert.Nil(t, decision)
	assert.Equal(t, domainerrors.ErrDeviceNotFound, err)
}

func TestRouterService_Resolve_UnboundDevice(t *testing.T) {
	fx := createTestRouterService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "a1b2c3d4e5f6").
		Return(&entity.Device{DeviceID: "a1b2c3d4e5f6", OwnerID: uuid.New()}, nil)

	decision, err := fx.service.Resolve(ctx, "a1b2c3d4e5f6", "")
	assert.Nil(t, decision)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "not_found", appErr.ErrorCode())
}

func TestRouterService_Resolve_ForeignPrivateInstance(t *testing.T) {
	fx := createTestRouterService(t)
	ctx := context.Background()
	instanceID := "private"
	otherUser := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "a1b2c3d4e5f6").
		Return(&entity.Device{
			DeviceID:        "a1b2c3d4e5f6",
			OwnerID:         uuid.New(),
			BoundInstanceID: &instanceID,
		}, nil)
	fx.instanceRepo.EXPECT().
		FindInstanceByID(ctx, instanceID).
		Return(&entity.Instance{ID: instanceID, Host: "localhost", Port: 8080, OwnerID: &otherUser}, nil)

	decision, err := fx.service.Resolve(ctx, "a1b2c3d4e5f6", "")
	assert.Nil(t, decision)
	assert.Equal(t, domainerrors.ErrForbidden, err)
}

func TestRouterService_Resolve_SharedInstance(t *testing.T) {
	fx := createTestRouterService(t)
	ctx := context.Background()
	instanceID := "shared"

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "a1b2c3d4e5f6").
		Return(&entity.Device{
			DeviceID:        "a1b2c3d4e5f6",
			OwnerID:         uuid.New(),
			BoundInstanceID: &instanceID,
		}, nil)
	fx.instanceRepo.EXPECT().
		FindInstanceByID(ctx, instanceID).
		Return(&entity.Instance{ID: instanceID, Host: "localhost", Port: 8080, OwnerID: nil}, nil)

	decision, err := fx.service.Resolve(ctx, "a1b2c3d4e5f6", "")
	require.NoError(t, err)
	assert.Equal(t, "ws://localhost:8080/ws/a1b2c3d4e5f6", decision.UpstreamURL)
}

func TestRouterService_Presence(t *testing.T) {
	fx := createTestRouterService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		UpdateStatus(ctx, "a1b2c3d4e5f6", entity.DeviceStatusOnline, mock.AnythingOfType("*time.Time")).
		Run(func(ctx context.Context, deviceID string, status entity.DeviceStatus, lastConnectedAt *time.Time) {
			require.NotNil(t, lastConnectedAt)
			assert.WithinDuration(t, time.Now(), *lastConnectedAt, time.Minute)
		}).
		Return(nil)
	fx.deviceRepo.EXPECT().
		UpdateStatus(ctx, "a1b2c3d4e5f6", entity.DeviceStatusOffline, (*time.Time)(nil)).
		Return(nil)

	require.NoError(t, fx.service.MarkOnline(ctx, "a1b2c3d4e5f6"))
	require.NoError(t, fx.service.MarkOffline(ctx, "a1b2c3d4e5f6"))
}
