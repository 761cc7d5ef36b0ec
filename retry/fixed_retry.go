package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/Black4Blade/CSharpTradeOffers/logger"
)

type fixedConfig struct {
	delay  time.Duration
	logger logger.Logger
}

func defaultFixedConfig() fixedConfig {
	return fixedConfig{
		delay:  50 * time.Millisecond,
		logger: &logger.Noop{},
	}
}

type FixedConfigOption func(c *fixedConfig)

func WithFixedLogger(log logger.Logger) FixedConfigOption {
	return func(c *fixedConfig) {
		c.logger = log
	}
}

func WithDelay(d time.Duration) FixedConfigOption {
	return func(c *fixedConfig) {
		c.delay = d
	}
}

type fixedRetry struct {
	config fixedConfig
}

var _ Retry = &fixedRetry{}

// NewFixedRetry returns a Retry that waits a constant delay between
// attempts. The delay never grows, and is applied strictly between
// attempts: never before the first one and never after the last one.
func NewFixedRetry(opts ...FixedConfigOption) Retry {
	var config = defaultFixedConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &fixedRetry{config}
}

// Do runs the provided function repeatedly until:
// * the RetriableFn returns no error
// * or attempts is reached
// * or RetriableFn returns StopNow
// * or ctx is cancelled (returns ctx.Err())
// Examples:
// Do(ctx, 3, "my-func", func(attempt int) (error, retry.ExitStrategy) {})
// ^ will run the function up to 3 times, sleeping the configured delay
// between runs (so at most 2 sleeps).
//
// Do(ctx, 0, "my-func", func(attempt int) (error, retry.ExitStrategy) {})
// ^ will NOT run
func (r *fixedRetry) Do(
	ctx context.Context,
	attempts int,
	fnName string,
	fn RetriableFn,
) error {
	if attempts < 1 {
		return fmt.Errorf("attempts must be > 0")
	}

	var err error

	for i := 0; i < attempts; i++ {
		var exitNow ExitStrategy
		if err, exitNow = fn(i); err == nil {
			return nil
		}
		if exitNow {
			return err
		}
		if i == attempts-1 {
			break
		}

		r.config.logger.Warnf(
			"Error during retry %s; retrying. attempt=%d, maxAttempt=%d, delay=%v, error=%v",
			fnName, i, attempts, r.config.delay, err,
		)

		if waitErr := wait(ctx, r.config.delay); waitErr != nil {
			return waitErr
		}
	}

	r.config.logger.Warnf(
		"Exhausted all retry attempts for %s; giving up. maxAttempt=%d, delay=%v, error=%v",
		fnName, attempts, r.config.delay, err,
	)

	return err
}

// wait sleeps for d, or returns early with ctx.Err() if the context
// is cancelled first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
