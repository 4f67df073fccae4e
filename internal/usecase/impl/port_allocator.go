package impl

import (
	"context"
	"sync"

	domainerrors "echofleet/internal/domain/errors"
	"echofleet/internal/domain/repository"
	"echofleet/internal/domain/service"
	"echofleet/internal/usecase"

	"github.com/pkg/errors"
)

// portAllocator owns the reservation set. The scan-and-reserve sequence
// runs under one lock, and reservations survive rescans until they are
// explicitly released, so two concurrent deploys can never be handed the
// same port even while neither container exists yet.
type portAllocator struct {
	mu       sync.Mutex
	reserved map[int]struct{}
	start    int
	end      int

	instanceRepo repository.InstanceRepository
	engine       service.ContainerEngine
}

// NewPortAllocator creates the allocator for the [start, end] range.
func NewPortAllocator(start, end int, instanceRepo repository.InstanceRepository, engine service.ContainerEngine) usecase.PortAllocator {
	return &portAllocator{
		reserved:     make(map[int]struct{}),
		start:        start,
		end:          end,
		instanceRepo: instanceRepo,
		engine:       engine,
	}
}

// Allocate reserves and returns the first port that is neither reserved
// in-flight nor taken by a live container or registry row.
func (a *portAllocator) Allocate(ctx context.Context) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	scanned, err := a.scanLocked(ctx)
	if err != nil {
		return 0, err
	}

	for port := a.start; port <= a.end; port++ {
		if _, taken := a.reserved[port]; taken {
			continue
		}
		if _, taken := scanned[port]; taken {
			continue
		}
		a.reserved[port] = struct{}{}

		return port, nil
	}

	return 0, domainerrors.ErrNoPortsAvailable
}

// Release returns a reserved port to the pool. Failed deploys release
// before the container exists; successful ones release on instance delete.
func (a *portAllocator) Release(port int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.reserved, port)
}

// scanLocked collects the ports held by live containers and the registry.
// Manually removed containers drop out of the scan, so their ports free up
// without a restart. Caller holds the lock.
func (a *portAllocator) scanLocked(ctx context.Context) (map[int]struct{}, error) {
	scanned := make(map[int]struct{})

	managed, err := a.engine.ListManaged(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan live containers")
	}
	for _, entry := range managed {
		if entry.HostPort != 0 {
			scanned[entry.HostPort] = struct{}{}
		}
	}

	registered, err := a.instanceRepo.ListAllocatedPorts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan registered ports")
	}
	for _, port := range registered {
		scanned[port] = struct{}{}
	}

	return scanned, nil
}
