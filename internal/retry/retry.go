// Package retry wraps fallible operations with exponential backoff.
package retry

import (
	"context"
	"time"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = time.Second
)

// Option customizes retry behavior.
type Option func(*options)

type options struct {
	maxAttempts int
	baseDelay   time.Duration
	onRetry     func(attempt int, delay time.Duration, err error)
}

// WithMaxAttempts sets the total number of attempts, including the first.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

// WithBaseDelay sets the backoff unit. The wait before retry n (1-based) is
// base * 2^n, so the first wait is double the base and each subsequent wait
// doubles again.
func WithBaseDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.baseDelay = d
		}
	}
}

// WithOnRetry installs a callback invoked before each backoff sleep,
// typically for logging.
func WithOnRetry(fn func(attempt int, delay time.Duration, err error)) Option {
	return func(o *options) {
		o.onRetry = fn
	}
}

// Do executes op, retrying on failure with exponential backoff until the
// attempt budget is exhausted. The last error is returned once no attempts
// remain. Context cancellation interrupts the backoff sleep and returns the
// context error.
func Do[T any](ctx context.Context, op func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	o := options{
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var zero T
	var lastErr error
	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == o.maxAttempts {
			break
		}

		delay := o.baseDelay << attempt
		if o.onRetry != nil {
			o.onRetry(attempt, delay, err)
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
	return zero, lastErr
}
