package migrate

import (
	"context"
	"time"

	"github.com/fwojciec/mdxport"
	"golang.org/x/time/rate"
)

var _ mdxport.Throttle = (*Throttle)(nil)

// Throttle spaces requests at a fixed rate using a token bucket with a
// burst of 1. The first Wait returns immediately; each later Wait returns
// no sooner than delay after the previous one.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a Throttle allowing one request per delay.
// A delay of zero or less disables throttling.
func NewThrottle(delay time.Duration) *Throttle {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Throttle{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the next request is allowed.
// Returns an error if the context is canceled before the wait completes.
func (t *Throttle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
