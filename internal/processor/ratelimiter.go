package processor

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter throttles calls to external collaborators (the export index,
// the HTTP API). The pure classification core is never rate limited.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter allowing rps events per second with the
// given burst. Non-positive values fall back to sane defaults.
func NewRateLimiter(rps, burst int) *RateLimiter {
	if rps <= 0 {
		rps = 100
	}
	if burst <= 0 {
		burst = rps
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Wait blocks until the limiter allows another event or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Allow reports whether an event may proceed without waiting.
func (r *RateLimiter) Allow() bool {
	return r.limiter.Allow()
}
