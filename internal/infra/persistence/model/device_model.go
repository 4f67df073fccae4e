package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// It represents a hardware device bound to a user through activation.
type DeviceModel struct {
	DeviceID        string    `gorm:"type:varchar(12);primary_key"`
	Name            string    `gorm:"type:varchar(255);not null"`
	MACAddress      string    `gorm:"type:varchar(17);not null"`
	OwnerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	BoundInstanceID *string   `gorm:"type:varchar(64);index"`
	Status          string    `gorm:"type:varchar(16);not null;default:'unknown'"`
	FirmwareVersion string    `gorm:"type:varchar(64)"`
	CreatedAt       time.Time
	LastConnectedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
