package usecase

import (
	"context"
)

// RouteDecision is the router's resolution of an inbound device connection.
type RouteDecision struct {
	// DeviceID is the canonical form of the connecting device's ID.
	DeviceID string

	// UpstreamURL is the bound instance's ws endpoint, carrying the raw
	// path identifier and query string unchanged.
	UpstreamURL string
}

// RouterUsecase authorizes inbound device connections and tracks presence.
type RouterUsecase interface {
	// Resolve canonicalizes the device ID, checks the device exists and
	// is bound, applies the ownership predicate against the bound
	// instance, and returns the upstream endpoint to dial.
	Resolve(ctx context.Context, rawDeviceID, rawQuery string) (*RouteDecision, error)

	// MarkOnline records the device as connected.
	MarkOnline(ctx context.Context, deviceID string) error

	// MarkOffline records the device as disconnected.
	MarkOffline(ctx context.Context, deviceID string) error
}
