package poll

import (
	"time"

	"github.com/Black4Blade/CSharpTradeOffers/logger"
	"github.com/Black4Blade/CSharpTradeOffers/retry"
)

type Config struct {
	// Interval is the time between polling cycles.
	// The first cycle runs immediately on Start.
	// default: 30 seconds
	Interval time.Duration

	// MaxRetries sets the attempt budget for one polling cycle.
	// A cycle that spends the whole budget is skipped.
	// default: 2
	MaxRetries int

	// Retry configures the retry strategy (fixed delay, exponential
	// backoff, etc.) used within a cycle
	// default: retry.NewFixedRetry
	Retry retry.Retry

	// Logger provides logging functionality for debugging
	// and monitoring polling operations
	// default: logger.Noop
	Logger logger.Logger
}

func defaultConfig() Config {
	return Config{
		Interval:   30 * time.Second,
		MaxRetries: 2,
		Retry: retry.NewFixedRetry(
			retry.WithDelay(1 * time.Second),
		),
		Logger: &logger.Noop{},
	}
}

func applyConfig(inConfig Config) Config {
	outConfig := defaultConfig()
	if inConfig.Interval > 0 {
		outConfig.Interval = inConfig.Interval
	}
	if inConfig.MaxRetries > 0 {
		outConfig.MaxRetries = inConfig.MaxRetries
	}
	if inConfig.Retry != nil {
		outConfig.Retry = inConfig.Retry
	}
	if inConfig.Logger != nil {
		outConfig.Logger = inConfig.Logger
	}

	return outConfig
}
