package usecase

import (
	"context"

	"echofleet/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput carries an explicit device registration.
type RegisterDeviceInput struct {
	DeviceID string `json:"deviceId"`
	Name     string `json:"name,omitempty"`
}

// DeviceUsecase defines the device registry operations.
type DeviceUsecase interface {
	// RegisterDevice registers a device directly, without activation.
	RegisterDevice(ctx context.Context, userID uuid.UUID, input *RegisterDeviceInput) (*entity.Device, error)

	// ListDevices retrieves all devices owned by a user.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// GetDevice resolves one device, restricted to its owner.
	GetDevice(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.Device, error)

	// DeleteDevice removes a device registration, restricted to its owner.
	DeleteDevice(ctx context.Context, userID uuid.UUID, deviceID string) error

	// BindDevice routes the device to an instance the user may access.
	BindDevice(ctx context.Context, userID uuid.UUID, deviceID, instanceID string) error

	// UnbindDevice clears the device's bound instance.
	UnbindDevice(ctx context.Context, userID uuid.UUID, deviceID string) error

	// ReportDevice records self-reported device state such as the
	// firmware version.
	ReportDevice(ctx context.Context, deviceID, firmwareVersion string) error
}
