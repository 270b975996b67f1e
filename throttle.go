package mdxport

import "context"

// Throttle paces requests against the source server.
type Throttle interface {
	// Wait blocks until the next request may be sent.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context) error
}
