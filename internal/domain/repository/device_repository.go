// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"echofleet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a freshly activated device.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByID retrieves a device by its canonical device ID.
	FindDeviceByID(ctx context.Context, deviceID string) (*entity.Device, error)

	// FindDevicesByOwner retrieves all devices activated by a specific user.
	FindDevicesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error)

	// UpdateDeviceName renames a device.
	UpdateDeviceName(ctx context.Context, deviceID, name string) error

	// UpdateBoundInstance points the device at an instance; nil unbinds it.
	UpdateBoundInstance(ctx context.Context, deviceID string, instanceID *string) error

	// UpdateStatus records the device's connectivity state. lastConnectedAt
	// is only written when non-nil.
	UpdateStatus(ctx context.Context, deviceID string, status entity.DeviceStatus, lastConnectedAt *time.Time) error

	// UpdateFirmwareVersion records the firmware version a device reported.
	UpdateFirmwareVersion(ctx context.Context, deviceID, version string) error

	// DeleteDevice removes a device registration.
	DeleteDevice(ctx context.Context, deviceID string) error
}
