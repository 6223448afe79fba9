// Package delivery defines the entry points that expose the gateway.
package delivery

import "context"

// Delivery is a long-running server started by the composition root.
type Delivery interface {
	Serve(ctx context.Context) error
}
