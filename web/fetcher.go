package web

import (
	"context"
	"io"
	"net/url"
	"time"

	"github.com/Black4Blade/CSharpTradeOffers/errors"
	"github.com/Black4Blade/CSharpTradeOffers/logger"
	"github.com/Black4Blade/CSharpTradeOffers/retry"
)

// Fetcher provides fault-tolerant access to an Executor. Every operation
// performs strictly sequential attempts; there is never more than one
// request in flight per call.
//
// Fetch and FetchStream issue exactly one attempt and propagate whatever
// the Executor returns. RetryFetch and RetryFetchStream wrap that single
// attempt with a bounded retry budget and a fixed delay between attempts.
// Only transient failures (errors.IsTransient) consume the budget; any
// other error aborts the loop and propagates unchanged.
//
// The retrying operations return a found flag next to the result:
// (result, true, nil) on success, (zero, false, nil) once the budget is
// spent, and (zero, false, err) for non-transient failures or context
// cancellation. Exhaustion is an expected outcome, not an error.
type Fetcher struct {
	exec   Executor
	logger logger.Logger
}

type FetcherOption func(f *Fetcher)

func WithFetcherLogger(log logger.Logger) FetcherOption {
	return func(f *Fetcher) {
		f.logger = log
	}
}

func NewFetcher(exec Executor, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		exec:   exec,
		logger: &logger.Noop{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch issues exactly one request and drains the response body into a
// string. No retry: a transient failure on the only attempt is an error
// here, same as any other.
func (f *Fetcher) Fetch(
	ctx context.Context,
	method string,
	url string,
	data url.Values,
) (string, error) {
	stream, err := f.FetchStream(ctx, method, url, data)
	if err != nil {
		return "", err
	}
	defer func() { _ = stream.Close() }()

	body, readErr := io.ReadAll(stream)
	if readErr != nil {
		return "", &errors.ApiError{
			Stage:     errors.STAGE_AFTER_REQUEST,
			Type:      errors.TYPE_IO,
			SourceErr: readErr,
			Body:      body,
		}
	}
	return string(body), nil
}

// FetchStream issues exactly one request and returns the response body
// without reading it. The caller owns the stream and must Close it.
// The stream is readable exactly once.
func (f *Fetcher) FetchStream(
	ctx context.Context,
	method string,
	url string,
	data url.Values,
) (io.ReadCloser, error) {
	res, err := f.exec.Execute(ctx, method, url, data)
	if err != nil {
		return nil, err
	}
	return res.Body, nil
}

// RetryFetch attempts Fetch up to maxAttempts times, waiting `wait`
// between failed attempts. The delay is constant and applies only
// between attempts: a first-attempt success costs zero delay, and no
// delay follows the final attempt.
//
// maxAttempts < 1 makes zero attempts: no request is issued and the
// result is immediately (empty, false, nil).
func (f *Fetcher) RetryFetch(
	ctx context.Context,
	wait time.Duration,
	maxAttempts int,
	method string,
	url string,
	data url.Values,
) (string, bool, error) {
	var text string
	found, err := f.retryDo(ctx, wait, maxAttempts, "Fetcher.RetryFetch",
		func() error {
			result, fetchErr := f.Fetch(ctx, method, url, data)
			if fetchErr != nil {
				return fetchErr
			}
			text = result
			return nil
		},
	)
	if !found {
		return "", false, err
	}
	return text, true, nil
}

// RetryFetchStream is RetryFetch without the draining: on success the
// undrained response stream is handed to the caller as-is.
func (f *Fetcher) RetryFetchStream(
	ctx context.Context,
	wait time.Duration,
	maxAttempts int,
	method string,
	url string,
	data url.Values,
) (io.ReadCloser, bool, error) {
	var stream io.ReadCloser
	found, err := f.retryDo(ctx, wait, maxAttempts, "Fetcher.RetryFetchStream",
		func() error {
			result, fetchErr := f.FetchStream(ctx, method, url, data)
			if fetchErr != nil {
				return fetchErr
			}
			stream = result
			return nil
		},
	)
	if !found {
		return nil, false, err
	}
	return stream, true, nil
}

// retryDo runs one attempt function under the fixed-delay retry policy.
// It reports (true, nil) on success, (false, nil) when the attempt
// budget is exhausted by transient failures, and (false, err) when a
// non-transient error or context cancellation aborts the loop.
func (f *Fetcher) retryDo(
	ctx context.Context,
	wait time.Duration,
	maxAttempts int,
	fnName string,
	attempt func() error,
) (bool, error) {
	if maxAttempts < 1 {
		return false, nil
	}

	r := retry.NewFixedRetry(
		retry.WithDelay(wait),
		retry.WithFixedLogger(f.logger),
	)
	err := r.Do(ctx, maxAttempts, fnName, func(_ int) (error, retry.ExitStrategy) {
		attemptErr := attempt()
		if attemptErr != nil {
			if errors.IsTransient(attemptErr) {
				return attemptErr, retry.Continue
			}
			return attemptErr, retry.StopNow
		}
		return nil, retry.StopNow
	})
	if err != nil {
		if errors.IsTransient(err) {
			// budget spent without a success; expected, not an error
			return false, nil
		}
		return false, err
	}
	return true, nil
}
