// Package delivery defines the contract every transport (HTTP, workers) implements.
package delivery

import "context"

// Delivery is a long-running transport started by the application container.
type Delivery interface {
	Serve(ctx context.Context) error
}
