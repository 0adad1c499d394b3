// Package delivery defines the contract every transport entry point fulfils.
package delivery

import "context"

// Delivery is a server that accepts external traffic. Implementations are
// collected into the "deliveries" group and started together from main.
type Delivery interface {
	// Serve blocks while the server accepts traffic.
	Serve(ctx context.Context) error
}
