package pipeline

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer enforces the politeness delay between per-item external calls. It is
// an explicit policy, not incidental latency: a zero delay disables pacing
// entirely, which tests rely on.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer that allows one event per delay interval.
func NewPacer(delay time.Duration) *Pacer {
	if delay <= 0 {
		return &Pacer{}
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks until the next item may be processed.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.limiter == nil {
		return nil
	}
	return p.limiter.Wait(ctx)
}
