package usecase

import "context"

// PortAllocator hands out host ports from the configured range for new
// instance containers.
type PortAllocator interface {
	// Allocate reserves and returns the first free port in the range.
	// The in-use view is refreshed from live instances before scanning,
	// so out-of-band container removal frees ports automatically.
	Allocate(ctx context.Context) (int, error)

	// Release returns a previously reserved port to the pool.
	Release(port int)
}
