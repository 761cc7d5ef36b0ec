package tradeoffers

import (
	"net/http"
	"time"

	"github.com/Black4Blade/CSharpTradeOffers/logger"
	"github.com/Black4Blade/CSharpTradeOffers/rate"
)

type config struct {
	// transport specifies the HTTP transport mechanism
	// for making requests.
	// It's useful for mocking or if callers
	// want to add extra logging, headers, etc.
	// default: http.DefaultTransport
	transport http.RoundTripper

	// timeout sets the maximum duration for HTTP requests
	// before they are cancelled
	// default: 10 seconds
	timeout time.Duration

	// jar carries the Steam session cookies across requests.
	// Required for community endpoints behind a login; the public
	// Web API works without it.
	// default: nil (no cookies)
	jar http.CookieJar

	// logger provides logging functionality for all internal
	// client operations
	// default: logger.Noop
	logger logger.Logger

	// limiter throttles outgoing requests to stay inside Steam's
	// per-IP limits
	// default: rate.NoopLimiter
	limiter rate.Limiter

	// retryWait is the fixed delay between retry attempts for
	// transient request failures
	// default: 1 second
	retryWait time.Duration

	// retryCount is the total attempt budget per API request
	// default: 3
	retryCount int
}

func defaultConfig() *config {
	return &config{
		transport:  http.DefaultTransport,
		timeout:    10 * time.Second,
		logger:     logger.Noop{},
		limiter:    &rate.NoopLimiter{},
		retryWait:  1 * time.Second,
		retryCount: 3,
	}
}

type ConfigOption func(c *config)

func WithTransport(transport http.RoundTripper) ConfigOption {
	return func(c *config) {
		c.transport = transport
	}
}

func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *config) {
		c.timeout = timeout
	}
}

func WithCookieJar(jar http.CookieJar) ConfigOption {
	return func(c *config) {
		c.jar = jar
	}
}

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = logger
	}
}

func WithRateLimiter(limiter rate.Limiter) ConfigOption {
	return func(c *config) {
		c.limiter = limiter
	}
}

func WithRetryWait(wait time.Duration) ConfigOption {
	return func(c *config) {
		c.retryWait = wait
	}
}

func WithRetryCount(count int) ConfigOption {
	return func(c *config) {
		c.retryCount = count
	}
}
