package model

import (
	"time"

	"github.com/google/uuid"
)

// InstanceModel is the GORM-specific struct for the 'instances' table.
// It represents one tenant's voice-assistant container registration.
type InstanceModel struct {
	ID        string     `gorm:"type:varchar(64);primary_key"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Host      string     `gorm:"type:varchar(255);not null"`
	Port      int        `gorm:"not null;uniqueIndex"`
	UseTLS    bool       `gorm:"not null;default:false"`
	OwnerID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (InstanceModel) TableName() string {
	return "instances"
}
