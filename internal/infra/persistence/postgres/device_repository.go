package postgres

import (
	"context"
	"time"

	"echofleet/internal/domain/entity"
	domainerrors "echofleet/internal/domain/errors"
	"echofleet/internal/domain/repository"
	"echofleet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a freshly activated device.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.CreatedAt = deviceM.CreatedAt

	return nil
}

// FindDeviceByID retrieves a device by its canonical device ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, deviceID string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByOwner retrieves all devices activated by a specific user.
func (repo *deviceRepository) FindDevicesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by owner")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateDeviceName renames a device.
func (repo *deviceRepository) UpdateDeviceName(ctx context.Context, deviceID, name string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_id = ?", deviceID).
		Update("name", name)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device name")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// UpdateBoundInstance points the device at an instance; nil unbinds it.
func (repo *deviceRepository) UpdateBoundInstance(ctx context.Context, deviceID string, instanceID *string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_id = ?", deviceID).
		Update("bound_instance_id", instanceID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update bound instance")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// UpdateStatus records the device's connectivity state.
func (repo *deviceRepository) UpdateStatus(ctx context.Context, deviceID string, status entity.DeviceStatus, lastConnectedAt *time.Time) error {
	updates := map[string]any{"status": string(status)}
	if lastConnectedAt != nil {
		updates["last_connected_at"] = *lastConnectedAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_id = ?", deviceID).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// UpdateFirmwareVersion records the firmware version a device reported.
func (repo *deviceRepository) UpdateFirmwareVersion(ctx context.Context, deviceID, version string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_id = ?", deviceID).
		Update("firmware_version", version)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update firmware version")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevice removes a device registration.
func (repo *deviceRepository) DeleteDevice(ctx context.Context, deviceID string) error {
	result := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Delete(&model.DeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		DeviceID:        data.DeviceID,
		Name:            data.Name,
		MACAddress:      data.MACAddress,
		OwnerID:         data.OwnerID,
		BoundInstanceID: data.BoundInstanceID,
		Status:          entity.DeviceStatus(data.Status),
		FirmwareVersion: data.FirmwareVersion,
		CreatedAt:       data.CreatedAt,
		LastConnectedAt: data.LastConnectedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		DeviceID:        data.DeviceID,
		Name:            data.Name,
		MACAddress:      data.MACAddress,
		OwnerID:         data.OwnerID,
		BoundInstanceID: data.BoundInstanceID,
		Status:          string(data.Status),
		FirmwareVersion: data.FirmwareVersion,
		CreatedAt:       data.CreatedAt,
		LastConnectedAt: data.LastConnectedAt,
	}
}
