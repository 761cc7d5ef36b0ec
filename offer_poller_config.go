package tradeoffers

import (
	"time"

	"github.com/Black4Blade/CSharpTradeOffers/logger"
	"github.com/Black4Blade/CSharpTradeOffers/poll"
	"github.com/Black4Blade/CSharpTradeOffers/retry"
)

type pollerConfig struct {
	// interval specifies the time between polling cycles
	// (maps to poll.Config.Interval)
	// default: 30 seconds
	interval time.Duration

	// retryTimes sets the attempt budget for one polling cycle
	// (maps to poll.Config.MaxRetries)
	// default: 2
	retryTimes int

	// retry configures the retry strategy
	// (fixed delay, exponential backoff, etc.) for failed cycles
	// (maps to poll.Config.Retry)
	// default: retry.NewFixedRetry()
	retry retry.Retry

	// sent / received / activeOnly narrow the GetTradeOffers query
	// behind the poller
	// default: received-only, active-only
	sent       bool
	received   bool
	activeOnly bool

	// logger provides logging functionality for debugging
	// and monitoring polling operations
	// (maps to poll.Config.Logger)
	// default: logger.Noop
	logger logger.Logger

	// updatesChan is an optional channel for receiving offer updates.
	// If nil - the poller still polls, but nobody hears about it.
	// default: nil
	updatesChan chan<- poll.Update
}

func defaultPollerConfig() pollerConfig {
	return pollerConfig{
		interval:   30 * time.Second,
		retryTimes: 2,
		retry:      retry.NewFixedRetry(),
		received:   true,
		activeOnly: true,
		logger:     logger.Noop{},
	}
}

type PollerConfigOption func(c *pollerConfig)

func WithPollInterval(interval time.Duration) PollerConfigOption {
	return func(c *pollerConfig) {
		c.interval = interval
	}
}

func WithPollRetryTimes(times int) PollerConfigOption {
	return func(c *pollerConfig) {
		c.retryTimes = times
	}
}

func WithPollRetry(retry retry.Retry) PollerConfigOption {
	return func(c *pollerConfig) {
		c.retry = retry
	}
}

func WithPollSentOffers(sent bool) PollerConfigOption {
	return func(c *pollerConfig) {
		c.sent = sent
	}
}

func WithPollReceivedOffers(received bool) PollerConfigOption {
	return func(c *pollerConfig) {
		c.received = received
	}
}

func WithPollActiveOnly(activeOnly bool) PollerConfigOption {
	return func(c *pollerConfig) {
		c.activeOnly = activeOnly
	}
}

func WithPollLogger(logger logger.Logger) PollerConfigOption {
	return func(c *pollerConfig) {
		c.logger = logger
	}
}

func WithPollUpdatesListener(updates chan poll.Update) PollerConfigOption {
	return func(c *pollerConfig) {
		c.updatesChan = updates
	}
}
