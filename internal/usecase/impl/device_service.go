package impl

import (
	"context"
	"log/slog"
	"time"

	"echofleet/internal/domain/entity"
	domainerrors "echofleet/internal/domain/errors"
	"echofleet/internal/domain/repository"
	"echofleet/internal/domain/service"
	"echofleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo   repository.DeviceRepository
	instanceRepo repository.InstanceRepository
	logger       *slog.Logger
}

// NewDeviceService creates the device registry service.
func NewDeviceService(
	deviceRepo repository.DeviceRepository,
	instanceRepo repository.InstanceRepository,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo:   deviceRepo,
		instanceRepo: instanceRepo,
		logger:       logger,
	}
}

// RegisterDevice registers a device directly, without activation.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, input *usecase.RegisterDeviceInput) (*entity.Device, error) {
	deviceID := entity.NormalizeDeviceID(input.DeviceID)
	if !entity.ValidDeviceID(deviceID) {
		return nil, domainerrors.ErrInvalidDeviceID
	}

	name := input.Name
	if name == "" {
		name = entity.DefaultDeviceName(deviceID)
	}

	device := &entity.Device{
		DeviceID:   deviceID,
		Name:       name,
		MACAddress: entity.MACAddress(deviceID),
		OwnerID:    userID,
		Status:     entity.DeviceStatusUnknown,
		CreatedAt:  time.Now(),
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, domainerrors.ErrDeviceAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to register device")
	}

	return device, nil
}

// ListDevices retrieves all devices owned by a user.
func (s *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	devices, err := s.deviceRepo.FindDevicesByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// GetDevice resolves one device, restricted to its owner.
func (s *deviceService) GetDevice(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.Device, error) {
	return s.ownedDevice(ctx, userID, deviceID)
}

// DeleteDevice removes a device registration, restricted to its owner.
func (s *deviceService) DeleteDevice(ctx context.Context, userID uuid.UUID, deviceID string) error {
	device, err := s.ownedDevice(ctx, userID, deviceID)
	if err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, device.DeviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

// BindDevice routes the device to an instance the user may access. Binding
// to a shared instance is allowed; to another user's private instance it
// is not.
func (s *deviceService) BindDevice(ctx context.Context, userID uuid.UUID, deviceID, instanceID string) error {
	device, err := s.ownedDevice(ctx, userID, deviceID)
	if err != nil {
		return err
	}

	instance, err := s.instanceRepo.FindInstanceByID(ctx, instanceID)
	if err != nil {
		if errors.Is(err, repository.ErrInstanceNotFound) {
			return domainerrors.ErrInstanceNotFound
		}

		return errors.Wrap(err, "failed to find instance")
	}

	if !service.Allowed(instance.OwnerID, userID, true) {
		return domainerrors.ErrForbidden
	}

	if err := s.deviceRepo.UpdateBoundInstance(ctx, device.DeviceID, &instance.ID); err != nil {
		return errors.Wrap(err, "failed to bind device")
	}

	s.logger.InfoContext(ctx, "device bound to instance",
		slog.String("deviceId", device.DeviceID),
		slog.String("instanceId", instance.ID),
	)

	return nil
}

// UnbindDevice clears the device's bound instance.
func (s *deviceService) UnbindDevice(ctx context.Context, userID uuid.UUID, deviceID string) error {
	device, err := s.ownedDevice(ctx, userID, deviceID)
	if err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateBoundInstance(ctx, device.DeviceID, nil); err != nil {
		return errors.Wrap(err, "failed to unbind device")
	}

	return nil
}

// ReportDevice records self-reported device state.
func (s *deviceService) ReportDevice(ctx context.Context, deviceID, firmwareVersion string) error {
	deviceID = entity.NormalizeDeviceID(deviceID)
	if firmwareVersion == "" {
		return nil
	}

	if err := s.deviceRepo.UpdateFirmwareVersion(ctx, deviceID, firmwareVersion); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to record device report")
	}

	return nil
}

func (s *deviceService) ownedDevice(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.Device, error) {
	deviceID = entity.NormalizeDeviceID(deviceID)

	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	if device.OwnerID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return device, nil
}
