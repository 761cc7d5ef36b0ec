package retry

import "context"

// Retry provides a standardized interface for implementing retry logic
// with different strategies. It allows operations to be retried, with configurable
// retry policies such as fixed delay, exponential backoff, maximum attempts,
// and custom delay strategies.
//
// The interface is used throughout the trade-offers client for handling
// transient failures in:
// - Web requests that may fail due to network issues or Steam rate limiting
// - Offer polling cycles that encounter temporary service unavailability
// - Any external call that may experience intermittent failures
//
// Usage Example:
//
//	r := retry.NewFixedRetry(
//	    retry.WithDelay(100*time.Millisecond),
//	    retry.WithFixedLogger(myLogger),
//	)
//
//	err := r.Do(ctx, 3, "web-request", func(attempt int) (error, retry.ExitStrategy) {
//	    res, err := executor.Execute(ctx, method, url, data)
//	    if err != nil {
//	        if errors.IsTransient(err) {
//	            return err, retry.Continue  // Retry this error
//	        }
//	        return err, retry.StopNow     // Don't retry this error
//	    }
//	    _ = res
//	    return nil, retry.StopNow         // Success, stop retrying
//	})
//
// The RetriableFn function receives the current attempt number (0-based) and returns
// an error and an ExitStrategy. The ExitStrategy determines whether to continue
// retrying (Continue) or stop immediately (StopNow), regardless of remaining attempts.
//
// Cancelling the context aborts the loop mid-wait; Do then returns ctx.Err(),
// which is distinct from both success (nil) and the operation's own errors.
//
// NOTE: if attempts is < 1, Do returns an error and fn is never called.
type Retry interface {
	Do(ctx context.Context, attempts int, fnName string, fn RetriableFn) error
}

type RetriableFn func(attempt int) (error, ExitStrategy)

type ExitStrategy bool

var StopNow ExitStrategy = true
var Continue ExitStrategy = false
