// Package delivery defines the contract for transport-layer servers.
package delivery

import "context"

// Delivery is implemented by every transport the application can serve on.
type Delivery interface {
	// Serve blocks until the server stops or the context is cancelled.
	Serve(ctx context.Context) error
}
