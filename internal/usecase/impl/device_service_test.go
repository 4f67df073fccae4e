package impl

import (
	"context"
	"log/slog"
	"testing"

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

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service      usecase.DeviceUsecase
	deviceRepo   *mockRepo.MockDeviceRepository
	instanceRepo *mockRepo.MockInstanceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	instanceRepo := mockRepo.NewMockInstanceRepository(t)
	service := NewDeviceService(deviceRepo, instanceRepo, slog.New(slog.DiscardHandler))

	return deviceServiceFixtures{
		service:      service,
		deviceRepo:   deviceRepo,
		instanceRepo: instanceRepo,
	}
}

func TestDeviceService_RegisterDevice_DefaultName(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{
		DeviceID: "AA-BB-CC-DD-EE-FF",
	})
	require.NoError(t, err)
	assert.Equal(t, "aabbccddeeff", device.DeviceID)
	assert.Equal(t, "EchoKit-ddeeff", device.Name)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", device.MACAddress)
	assert.Equal(t, userID, device.OwnerID)
	assert.Equal(t, entity.DeviceStatusUnknown, device.Status)
}

func TestDeviceService_RegisterDevice_InvalidID(t *testing.T) {
	fx := createTestDeviceService(t)

	device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.RegisterDeviceInput{
		DeviceID: "zz:zz:zz:zz:zz:zz",
	})
	assert.Nil(t, device)
	assert.Equal(t, domainerrors.ErrInvalidDeviceID, err)
}

func TestDeviceService_RegisterDevice_Duplicate(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(repository.ErrDuplicateDevice)

	device, err := fx.service.RegisterDevice(ctx, uuid.New(), &usecase.RegisterDeviceInput{
		DeviceID: "aabbccddeeff",
	})
	assert.Nil(t, device)
	assert.Equal(t, domainerrors.ErrDeviceAlreadyExists, err)
}

func TestDeviceService_GetDevice_OwnerOnly(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "aabbccddeeff").
		Return(&entity.Device{DeviceID: "aabbccddeeff", OwnerID: owner}, nil)

	device, err := fx.service.GetDevice(ctx, uuid.New(), "aabbccddeeff")
	assert.Nil(t, device)
	assert.Equal(t, domainerrors.ErrForbidden, err)
}

func TestDeviceService_BindDevice_SharedInstance(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	owner := uuid.New()
	instanceID := "kitchen"

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "aabbccddeeff").
		Return(&entity.Device{DeviceID: "aabbccddeeff", OwnerID: owner}, nil)
	fx.instanceRepo.EXPECT().
		FindInstanceByID(ctx, instanceID).
		Return(&entity.Instance{ID: instanceID, OwnerID: nil}, nil)
	fx.deviceRepo.EXPECT().
		UpdateBoundInstance(ctx, "aabbccddeeff", mock.AnythingOfType("*string")).
		Run(func(ctx context.Context, deviceID string, boundID *string) {
			require.NotNil(t, boundID)
			assert.Equal(t, instanceID, *boundID)
		}).
		Return(nil)

	err := fx.service.BindDevice(ctx, owner, "AA:BB:CC:DD:EE:FF", instanceID)
	require.NoError(t, err)
}

func TestDeviceService_BindDevice_ForeignInstance(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	owner := uuid.New()
	otherUser := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "aabbccddeeff").
		Return(&entity.Device{DeviceID: "aabbccddeeff", OwnerID: owner}, nil)
	fx.instanceRepo.EXPECT().
		FindInstanceByID(ctx, "private").
		Return(&entity.Instance{ID: "private", OwnerID: &otherUser}, nil)

	err := fx.service.BindDevice(ctx, owner, "aabbccddeeff", "private")
	assert.Equal(t, domainerrors.ErrForbidden, err)
}

func TestDeviceService_BindDevice_InstanceNotFound(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "aabbccddeeff").
		Return(&entity.Device{DeviceID: "aabbccddeeff", OwnerID: owner}, nil)
	fx.instanceRepo.EXPECT().
		FindInstanceByID(ctx, "missing").
		Return(nil, repository.ErrInstanceNotFound)

	err := fx.service.BindDevice(ctx, owner, "aabbccddeeff", "missing")
	assert.Equal(t, domainerrors.ErrInstanceNotFound, err)
}

func TestDeviceService_UnbindDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "aabbccddeeff").
		Return(&entity.Device{DeviceID: "aabbccddeeff", OwnerID: owner}, nil)
	fx.deviceRepo.EXPECT().
		UpdateBoundInstance(ctx, "aabbccddeeff", (*string)(nil)).
		Return(nil)

	err := fx.service.UnbindDevice(ctx, owner, "aabbccddeeff")
	require.NoError(t, err)
}

func TestDeviceService_DeleteDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "aabbccddeeff").
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.DeleteDevice(ctx, uuid.New(), "aabbccddeeff")
	assert.Equal(t, domainerrors.ErrDeviceNotFound, err)
}

func TestDeviceService_ReportDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().
		UpdateFirmwareVersion(ctx, "aabbccddeeff", "1.2.3").
		Return(nil)

	err := fx.service.ReportDevice(ctx, "AA:BB:CC:DD:EE:FF", "1.2.3")
	require.NoError(t, err)
}

func TestDeviceService_ReportDevice_EmptyFirmwareIsNoop(t *testing.T) {
	fx := createTestDeviceService(t)

	err := fx.service.ReportDevice(context.Background(), "aabbccddeeff", "")
	require.NoError(t, err)
}
