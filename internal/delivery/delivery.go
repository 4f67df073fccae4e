// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a long-running transport server started by the application.
type Delivery interface {
	// Serve blocks serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
