package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"echofleet/config"
	"echofleet/internal/domain/entity"
	domainerrors "echofleet/internal/domain/errors"
	"echofleet/internal/domain/repository"
	mockRepo "echofleet/internal/mocks/repository"
	mockSvc "echofleet/internal/mocks/service"
	"echofleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// activationServiceFixtures holds all test dependencies for activation tests.
type activationServiceFixtures struct {
	service    usecase.ActivationUsecase
	store      *mockRepo.MockActivationStore
	deviceRepo *mockRepo.MockDeviceRepository
	qrcode     *mockSvc.MockQRCodeService
}

func createTestActivationService(t *testing.T) activationServiceFixtures {
	store := mockRepo.NewMockActivationStore(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	qrcode := mockSvc.NewMockQRCodeService(t)

	cfg := &config.ActivationConfig{
		TTL:        5 * time.Minute,
		ProxyWSURL: "ws://proxy.example.com/ws/",
	}
	service := NewActivationService(store, deviceRepo, qrcode, cfg, slog.New(slog.DiscardHandler))

	return activationServiceFixtures{
		service:    service,
		store:      store,
		deviceRepo: deviceRepo,
		qrcode:     qrcode,
	}
}

func TestActivationService_Request_NewCode(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		FindCodeByDevice(ctx, "a1b2c3d4e5f6").
		Return("", repository.ErrActivationNotFound)

	var storedCode string
	fx.store.EXPECT().
		PutActivation(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("*entity.Activation"), 5*time.Minute).
		Run(func(ctx context.Context, code string, activation *entity.Activation, ttl time.Duration) {
			storedCode = code
			assert.Equal(t, "a1b2c3d4e5f6", activation.DeviceID)
			assert.Len(t, activation.Challenge, 64)
			assert.False(t, activation.Confirmed())
		}).
		Return(nil)

	grant, err := fx.service.Request(ctx, "A1:B2:C3:D4:E5:F6")
	require.NoError(t, err)
	assert.Equal(t, storedCode, grant.Code)
	assert.Regexp(t, `^\d{6}$`, grant.Code)
	assert.Len(t, grant.Challenge, 64)
	assert.Equal(t, 300, grant.ExpiresIn)
}

func TestActivationService_Request_Idempotent(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()

	record := &entity.Activation{
		DeviceID:  "a1b2c3d4e5f6",
		Challenge: "deadbeef",
		CreatedAt: time.Now(),
	}

	fx.store.EXPECT().
		FindCodeByDevice(ctx, "a1b2c3d4e5f6").
		Return("123456", nil)
	fx.store.EXPECT().
		GetByCode(ctx, "123456").
		Return(record, nil)

	grant, err := fx.service.Request(ctx, "a1b2c3d4e5f6")
	require.NoError(t, err)
	assert.Equal(t, "123456", grant.Code)
	assert.Equal(t, "deadbeef", grant.Challenge)
}

func TestActivationService_Request_InvalidDeviceID(t *testing.T) {
	fx := createTestActivationService(t)

	grant, err := fx.service.Request(context.Background(), "not-a-mac")
	assert.Nil(t, grant)
	assert.Equal(t, domainerrors.ErrInvalidDeviceID, err)
}

func TestActivationService_Confirm_Success(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()
	userID := uuid.New()

	record := &entity.Activation{
		DeviceID:  "a1b2c3d4e5f6",
		Challenge: "deadbeef",
		CreatedAt: time.Now(),
	}

	fx.store.EXPECT().
		GetByCode(ctx, "123456").
		Return(record, nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "a1b2c3d4e5f6").
		Return(nil, repository.ErrDeviceNotFound)
	fx.store.EXPECT().
		UpdateActivation(ctx, "123456", mock.AnythingOfType("*entity.Activation")).
		Run(func(ctx context.Context, code string, activation *entity.Activation) {
			require.NotNil(t, activation.ConfirmedBy)
			assert.Equal(t, userID, *activation.ConfirmedBy)
			assert.Equal(t, "Kitchen", activation.DeviceName)
		}).
		Return(nil)

	deviceID, err := fx.service.Confirm(ctx, userID, "123456", "Kitchen")
	require.NoError(t, err)
	assert.Equal(t, "a1b2c3d4e5f6", deviceID)
}

func TestActivationService_Confirm_InvalidFormat(t *testing.T) {
	fx := createTestActivationService(t)

	_, err := fx.service.Confirm(context.Background(), uuid.New(), "12345", "")
	assert.Equal(t, domainerrors.ErrInvalidCodeFormat, err)
}

func TestActivationService_Confirm_CodeNotFound(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		GetByCode(ctx, "123456").
		Return(nil, repository.ErrActivationNotFound)

	_, err := fx.service.Confirm(ctx, uuid.New(), "123456", "")
	assert.Equal(t, domainerrors.ErrCodeNotFound, err)
}

func TestActivationService_Confirm_AlreadyConfirmed(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()
	firstUser := uuid.New()

	record := &entity.Activation{
		DeviceID:    "a1b2c3d4e5f6",
		Challenge:   "deadbeef",
		ConfirmedBy: &firstUser,
	}

	fx.store.EXPECT().
		GetByCode(ctx, "123456").
		Return(record, nil)

	_, err := fx.service.Confirm(ctx, uuid.New(), "123456", "")
	assert.Equal(t, domainerrors.ErrAlreadyConfirmed, err)
}

func TestActivationService_Confirm_DeviceBoundToOtherUser(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()
	userID := uuid.New()

	record := &entity.Activation{
		DeviceID:  "a1b2c3d4e5f6",
		Challenge: "deadbeef",
	}

	fx.store.EXPECT().
		GetByCode(ctx, "123456").
		Return(record, nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, "a1b2c3d4e5f6").
		Return(&entity.Device{DeviceID: "a1b2c3d4e5f6", OwnerID: uuid.New()}, nil)

	_, err := fx.service.Confirm(ctx, userID, "123456", "")
	assert.Equal(t, domainerrors.ErrDeviceAlreadyBound, err)
}

func TestActivationService_Verify_Pending(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()

	record := &entity.Activation{
		DeviceID:  "a1b2c3d4e5f6",
		Challenge: "deadbeef",
	}

	fx.store.EXPECT().
		GetByDevice(ctx, "a1b2c3d4e5f6").
		Return(record, nil)

	result, err := fx.service.Verify(ctx, "a1b2c3d4e5f6", "deadbeef", "1.0.0")
	require.NoError(t, err)
	assert.True(t, result.Pending)
	assert.Equal(t, 5000, result.RetryAfterMs)
}

func TestActivationService_Verify_ChallengeMismatch(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()
	userID := uuid.New()

	// The challenge is checked before the confirmation state, so a wrong
	// challenge is rejected whether or not the code was claimed.
	record := &entity.Activation{
		DeviceID:    "a1b2c3d4e5f6",
		Challenge:   "deadbeef",
		ConfirmedBy: &userID,
	}

	fx.store.EXPECT().
		GetByDevice(ctx, "a1b2c3d4e5f6").
		Return(record, nil)

	result, err := fx.service.Verify(ctx, "a1b2c3d4e5f6", "wrong", "")
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrInvalidChallenge, err)
}

func TestActivationService_Verify_Bound(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()
	userID := uuid.New()

	record := &entity.Activation{
		DeviceID:    "a1b2c3d4e5f6",
		Challenge:   "deadbeef",
		ConfirmedBy: &userID,
		DeviceName:  "Kitchen",
	}

	fx.store.EXPECT().
		GetByDevice(ctx, "a1b2c3d4e5f6").
		Return(record, nil)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(ctx context.Context, device *entity.Device) {
			assert.Equal(t, "a1b2c3d4e5f6", device.DeviceID)
			assert.Equal(t, "Kitchen", device.Name)
			assert.Equal(t, "a1:b2:c3:d4:e5:f6", device.MACAddress)
			assert.Equal(t, userID, device.OwnerID)
			assert.Equal(t, "1.0.0", device.FirmwareVersion)
		}).
		Return(nil)
	fx.store.EXPECT().
		FindCodeByDevice(ctx, "a1b2c3d4e5f6").
		Return("123456", nil)
	fx.store.EXPECT().
		DeleteActivation(ctx, "123456", "a1b2c3d4e5f6").
		Return(nil)

	result, err := fx.service.Verify(ctx, "a1b2c3d4e5f6", "deadbeef", "1.0.0")
	require.NoError(t, err)
	assert.False(t, result.Pending)
	assert.Equal(t, userID, result.UserID)
	assert.Equal(t, "Kitchen", result.DeviceName)
	assert.Equal(t, "ws://proxy.example.com/ws/", result.ProxyURL)
}

func TestActivationService_Verify_DefaultDeviceName(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()
	userID := uuid.New()

	record := &entity.Activation{
		DeviceID:    "a1b2c3d4e5f6",
		Challenge:   "deadbeef",
		ConfirmedBy: &userID,
	}

	fx.store.EXPECT().
		GetByDevice(ctx, "a1b2c3d4e5f6").
		Return(record, nil)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(nil)
	fx.store.EXPECT().
		FindCodeByDevice(ctx, "a1b2c3d4e5f6").
		Return("", repository.ErrActivationNotFound)

	result, err := fx.service.Verify(ctx, "a1b2c3d4e5f6", "deadbeef", "")
	require.NoError(t, err)
	assert.Equal(t, "EchoKit-d4e5f6", result.DeviceName)
}

func TestActivationService_Verify_NotFoundAfterConsume(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		GetByDevice(ctx, "a1b2c3d4e5f6").
		Return(nil, repository.ErrActivationNotFound)

	result, err := fx.service.Verify(ctx, "a1b2c3d4e5f6", "deadbeef", "")
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrActivationNotFound, err)
}

func TestActivationService_Verify_DuplicateDeviceUpdatesFirmware(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()
	userID := uuid.New()

	record := &entity.Activation{
		DeviceID:    "a1b2c3d4e5f6",
		Challenge:   "deadbeef",
		ConfirmedBy: &userID,
	}

	fx.store.EXPECT().
		GetByDevice(ctx, "a1b2c3d4e5f6").
		Return(record, nil)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(repository.ErrDuplicateDevice)
	fx.deviceRepo.EXPECT().
		UpdateFirmwareVersion(ctx, "a1b2c3d4e5f6", "2.0.0").
		Return(nil)
	fx.store.EXPECT().
		FindCodeByDevice(ctx, "a1b2c3d4e5f6").
		Return("", repository.ErrActivationNotFound)

	result, err := fx.service.Verify(ctx, "a1b2c3d4e5f6", "deadbeef", "2.0.0")
	require.NoError(t, err)
	assert.Equal(t, userID, result.UserID)
}

func TestActivationService_Verify_CreateFailureSurfaces(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()
	userID := uuid.New()

	record := &entity.Activation{
		DeviceID:    "a1b2c3d4e5f6",
		Challenge:   "deadbeef",
		ConfirmedBy: &userID,
	}

	fx.store.EXPECT().
		GetByDevice(ctx, "a1b2c3d4e5f6").
		Return(record, nil)
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Return(errors.New("connection reset"))

	result, err := fx.service.Verify(ctx, "a1b2c3d4e5f6", "deadbeef", "")
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "failed to register device")
}

func TestActivationService_QRCode(t *testing.T) {
	fx := createTestActivationService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		FindCodeByDevice(ctx, "a1b2c3d4e5f6").
		Return("123456", nil)
	fx.qrcode.EXPECT().
		GenerateActivationQR("https://console.example.com/activate?code=123456").
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	png, err := fx.service.QRCode(ctx, "A1:B2:C3:D4:E5:F6", "https://console.example.com/activate")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
