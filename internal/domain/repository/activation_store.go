package repository

import (
	"context"
	"time"

	"echofleet/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for the activation store.
var (
	// ErrActivationNotFound is returned when no record exists for a code
	// or device, either because it never existed or its TTL elapsed.
	ErrActivationNotFound = errors.New("activation not found")
)

// ActivationStore defines the TTL-bound store for pending activations.
// Every record is reachable under two keys, the 6-digit code and the
// device ID, and both expire together.
type ActivationStore interface {
	// PutActivation stores the record under both keys with the given TTL,
	// replacing any previous record for the same code or device.
	PutActivation(ctx context.Context, code string, activation *entity.Activation, ttl time.Duration) error

	// GetByCode retrieves the record for a code.
	GetByCode(ctx context.Context, code string) (*entity.Activation, error)

	// GetByDevice retrieves the record for a device ID.
	GetByDevice(ctx context.Context, deviceID string) (*entity.Activation, error)

	// UpdateActivation rewrites the record under both keys, preserving the
	// remaining TTL of the code key.
	UpdateActivation(ctx context.Context, code string, activation *entity.Activation) error

	// FindCodeByDevice returns the code currently mapped to a device ID.
	FindCodeByDevice(ctx context.Context, deviceID string) (string, error)

	// DeleteActivation removes the record under both keys.
	DeleteActivation(ctx context.Context, code, deviceID string) error
}
