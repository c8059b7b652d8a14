// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) managed by the Fx lifecycle.
type Delivery interface {
	// Serve blocks until the server stops or fails to start.
	Serve(ctx context.Context) error
}
