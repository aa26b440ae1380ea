package util

import (
	"context"
	"math"
	"time"

	"golang.org/x/time/rate"
)

// Limiter throttles file reads during a batch outline run. A nil *Limiter is
// valid and never blocks, which is what a zero files_per_second yields.
type Limiter struct {
	inner *rate.Limiter
}

// NewLimiter creates a token bucket limiter allowing perSecond events with the
// given burst. It returns nil when perSecond is not positive.
func NewLimiter(perSecond float64, burst int) *Limiter {
	if perSecond <= 0 || math.IsNaN(perSecond) {
		return nil
	}
	if burst < 1 {
		burst = int(math.Max(1, math.Ceil(perSecond)))
	}
	return &Limiter{inner: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Allow reports whether n events may happen now.
func (l *Limiter) Allow(n int) bool {
	if l == nil {
		return true
	}
	return l.inner.AllowN(time.Now(), n)
}

// Wait blocks until n tokens are available or ctx is done.
func (l *Limiter) Wait(ctx context.Context, n int) error {
	if l == nil {
		return ctx.Err()
	}
	return l.inner.WaitN(ctx, n)
}
