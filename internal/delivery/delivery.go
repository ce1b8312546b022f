// Package delivery defines the contract shared by every inbound transport
// (HTTP API, cron scheduler).
package delivery

import "context"

// Delivery is a long-running inbound server. Serve blocks until the server
// stops; shutdown is handled through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
