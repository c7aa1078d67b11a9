package services

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Options struct {
	// Latency is an artificial delay applied before every operation.
	Latency time.Duration
	Logger  *zap.Logger
	// Now overrides the clock; defaults to time.Now.
	Now func() time.Time
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) clock() func() time.Time {
	if o.Now == nil {
		return time.Now
	}
	return o.Now
}

// pause waits for the configured latency, returning early if ctx ends.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
