package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/Black4Blade/CSharpTradeOffers/logger"
)

type expoConfig struct {
	sleep  time.Duration
	logger logger.Logger
}

func defaultExpoConfig() expoConfig {
	return expoConfig{
		sleep:  50 * time.Millisecond,
		logger: &logger.Noop{},
	}
}

type ExpoConfigOption func(c *expoConfig)

func WithLogger(log logger.Logger) ExpoConfigOption {
	return func(c *expoConfig) {
		c.logger = log
	}
}

func WithInitialDuration(d time.Duration) ExpoConfigOption {
	return func(c *expoConfig) {
		c.sleep = d
	}
}

type expoRetry struct {
	config expoConfig
}

var _ Retry = &expoRetry{}

// NewExponentialRetry returns a Retry that doubles the delay after
// every failed attempt, starting from the configured initial duration.
func NewExponentialRetry(opts ...ExpoConfigOption) Retry {
	var config = defaultExpoConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &expoRetry{config}
}

// Do runs the provided function repeatedly until:
// * the RetriableFn returns no error
// * or attempts is reached
// * or RetriableFn returns StopNow
// * or ctx is cancelled (returns ctx.Err())
// Examples:
// Do(ctx, 3, "my-func", func(attempt int) (error, retry.ExitStrategy) {})
// ^ will run the function up to 3 times, sleeping 50ms, 100ms between runs.
//
// Do(ctx, 0, "my-func", func(attempt int) (error, retry.ExitStrategy) {})
// ^ will NOT run
func (r *expoRetry) Do(
	ctx context.Context,
	attempts int,
	fnName string,
	fn RetriableFn,
) error {
	if attempts < 1 {
		return fmt.Errorf("attempts must be > 0")
	}

	var err error

	sleep := r.config.sleep
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
			"Error during retry %s; retrying. attempt=%d, maxAttempt=%d, backoff=%v, error=%v",
			fnName, i, attempts, sleep, err,
		)

		if waitErr := wait(ctx, sleep); waitErr != nil {
			return waitErr
		}

		sleep = sleep * 2
	}

	r.config.logger.Warnf(
		"Exhausted all retry attempts for %s; giving up. maxAttempt=%d, backoff=%v, error=%v",
		fnName, attempts, sleep, err,
	)

	return err
}
