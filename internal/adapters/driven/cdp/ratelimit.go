package cdp

import (
	"context"

	"golang.org/x/time/rate"
)

const (
	// DefaultRate is the steady number of protocol calls per second.
	DefaultRate = 20

	// DefaultBurst is how many calls may run back to back.
	DefaultBurst = 5
)

// RateLimiter throttles protocol calls with a token bucket.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter creates a limiter allowing perSecond calls with the given burst.
// Non-positive values use the defaults.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if perSecond <= 0 {
		perSecond = DefaultRate
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Wait blocks until a call may proceed or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}
