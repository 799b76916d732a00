// Package delivery defines the contract every transport entrypoint fulfills.
package delivery

import "context"

// Delivery is a long-running transport serving the application, started by
// main and stopped through the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
