package repository

import (
	"context"

	"echofleet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for instance persistence.
var (
	// ErrInstanceNotFound is returned when an instance is not found.
	ErrInstanceNotFound = errors.New("instance not found")
	// ErrDuplicateInstance is returned when an instance ID is already taken.
	ErrDuplicateInstance = errors.New("instance already exists")
)

// InstanceRepository defines the interface for instance-related database operations.
type InstanceRepository interface {
	// CreateInstance persists a newly registered instance.
	CreateInstance(ctx context.Context, instance *entity.Instance) error

	// FindInstanceByID retrieves an instance by its ID.
	FindInstanceByID(ctx context.Context, id string) (*entity.Instance, error)

	// FindAllInstances retrieves every registered instance.
	FindAllInstances(ctx context.Context) ([]*entity.Instance, error)

	// FindInstancesVisibleTo retrieves the instances a user may see: their
	// own plus the shared (ownerless) ones.
	FindInstancesVisibleTo(ctx context.Context, userID uuid.UUID) ([]*entity.Instance, error)

	// ListAllocatedPorts returns every host port currently recorded for an
	// instance, for seeding the port allocator.
	ListAllocatedPorts(ctx context.Context) ([]int, error)

	// UpdateInstance persists changed instance fields.
	UpdateInstance(ctx context.Context, instance *entity.Instance) error

	// DeleteInstance removes an instance registration.
	DeleteInstance(ctx context.Context, id string) error
}
