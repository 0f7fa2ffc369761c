// Package delivery defines the contract every transport entry point of the
// application fulfils, so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport frontend, such as the HTTP server.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
