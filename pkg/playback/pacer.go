// Package playback consumes finished traces at a caller-chosen pace. Nothing here re-runs an algorithm: a trace is a
// finite, indexable slice and playback is just a cursor over it.
package playback

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer. blocks until the next item may be shown.
type Pacer interface {
	Wait(ctx context.Context) error
}

type RatePacer struct {
	limiter *rate.Limiter
}

// NewRatePacer. one item per delay, the first item is released at once. delay <= 0 gives Immediate.
func NewRatePacer(delay time.Duration) Pacer {
	if delay <= 0 {
		return Immediate{}
	}
	return &RatePacer{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

func (p *RatePacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// Immediate. all-at-once playback, only honours cancellation.
type Immediate struct{}

func (Immediate) Wait(ctx context.Context) error {
	return ctx.Err()
}
