// Package delivery defines the contract every transport (HTTP, worker)
// implements so the application can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport that serves requests until the
// context is cancelled or the server is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
