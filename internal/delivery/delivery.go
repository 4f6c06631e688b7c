// Package delivery defines the entry points through which the outside world
// reaches the application.
package delivery

import "context"

// Delivery is a serving surface (HTTP server, worker, etc.) started by main.
type Delivery interface {
	// Serve blocks until the delivery stops or the context is canceled.
	Serve(ctx context.Context) error
}
