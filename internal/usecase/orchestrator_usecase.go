package usecase

import (
	"context"

	"echofleet/internal/domain/entity"

	"github.com/google/uuid"
)

// DeployRequest carries everything the deploy pipeline needs.
type DeployRequest struct {
	Config *entity.InstanceConfig

	// RequestedPort is used verbatim when non-zero; otherwise the port
	// allocator decides.
	RequestedPort int

	// Owner marks the instance private to one user; nil deploys a shared
	// instance.
	Owner *uuid.UUID
}

// InstanceDetail pairs an instance with its live health.
type InstanceDetail struct {
	Instance *entity.Instance          `json:"instance"`
	Health   *entity.HealthCheckResult `json:"health"`
	Status   entity.InstanceStatus     `json:"status"`
}

// OrchestratorUsecase defines the container lifecycle operations.
type OrchestratorUsecase interface {
	// Deploy runs the full pipeline: resolve port, render config, ensure
	// image, create and start the container, then wait for readiness.
	// The instance is registered whatever the health outcome.
	Deploy(ctx context.Context, req *DeployRequest) (*entity.DeployResult, error)

	// List enumerates all registered instances without computing health.
	List(ctx context.Context) ([]*entity.Instance, error)

	// ListForUser enumerates the caller's instances plus shared ones.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Instance, error)

	// Get resolves one instance and computes its live health.
	Get(ctx context.Context, id string) (*InstanceDetail, error)

	// GetForUser is Get with shared-read permission applied.
	GetForUser(ctx context.Context, userID uuid.UUID, id string) (*InstanceDetail, error)

	// Start starts the instance's container.
	Start(ctx context.Context, id string) error

	// StartForUser is Start restricted to the owner.
	StartForUser(ctx context.Context, userID uuid.UUID, id string) error

	// Stop stops the instance's container.
	Stop(ctx context.Context, id string) error

	// StopForUser is Stop restricted to the owner.
	StopForUser(ctx context.Context, userID uuid.UUID, id string) error

	// Delete stops and removes the container, then the registry row. The
	// row survives when container removal fails.
	Delete(ctx context.Context, id string) error

	// DeleteForUser is Delete restricted to the owner.
	DeleteForUser(ctx context.Context, userID uuid.UUID, id string) error

	// Logs returns the tail of the container log, default 100 lines.
	Logs(ctx context.Context, id string, tail int) (string, error)

	// LogsForUser is Logs with shared-read permission applied.
	LogsForUser(ctx context.Context, userID uuid.UUID, id string, tail int) (string, error)

	// HealthCheck runs the steady-state two-phase health probe.
	HealthCheck(ctx context.Context, id string) (*entity.HealthCheckResult, error)
}
