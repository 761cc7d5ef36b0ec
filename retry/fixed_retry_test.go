package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Fixed_Do_count(t *testing.T) {
	err := fmt.Errorf("err")
	count := 0

	r := makeFixedRetry(0)
	err2 := r.Do(context.Background(), 3, "testFnName", func(attempt int) (error, ExitStrategy) {
		assert.Equal(t, count, attempt)
		count++
		return err, Continue
	})

	assert.True(t, errors.Is(err, err2))
	assert.Equal(t, 3, count)
}

func Test_Fixed_Do_success_stops(t *testing.T) {
	count := 0

	r := makeFixedRetry(0)
	err := r.Do(context.Background(), 10, "testFnName", func(attempt int) (error, ExitStrategy) {
		count++
		return nil, StopNow
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func Test_Fixed_Do_early_exit(t *testing.T) {
	err1 := fmt.Errorf("err1")
	count := 0

	r := makeFixedRetry(0)
	err2 := r.Do(context.Background(), 10, "testFnName", func(attempt int) (error, ExitStrategy) {
		count++
		return err1, StopNow
	})

	assert.True(t, errors.Is(err1, err2))
	assert.Equal(t, 1, count)
}

func Test_Fixed_Do_0(t *testing.T) {
	count := 0

	r := makeFixedRetry(0)
	err := r.Do(context.Background(), 0, "testFnName", func(attempt int) (error, ExitStrategy) {
		count++
		assert.Fail(t, "Should never run")
		return nil, Continue
	})

	assert.Error(t, err)
	assert.Equal(t, 0, count)
}

func Test_Fixed_Do_constant_delay(t *testing.T) {
	count := 0

	r := makeFixedRetry(20 * time.Millisecond)
	start := time.Now()
	_ = r.Do(context.Background(), 3, "testFnName", func(attempt int) (error, ExitStrategy) {
		count++
		return fmt.Errorf("err"), Continue
	})
	elapsed := time.Since(start)

	// 3 attempts, 2 inter-attempt delays, no delay after the last one
	assert.Equal(t, 3, count)
	assert.GreaterOrEqual(t, elapsed, 40*time.Millisecond)
	assert.Less(t, elapsed, 100*time.Millisecond)
}

func Test_Fixed_Do_no_delay_after_final_attempt(t *testing.T) {
	r := makeFixedRetry(1 * time.Hour)
	start := time.Now()
	_ = r.Do(context.Background(), 1, "testFnName", func(attempt int) (error, ExitStrategy) {
		return fmt.Errorf("err"), Continue
	})

	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func Test_Fixed_Do_cancelled_ctx(t *testing.T) {
	count := 0
	ctx, cancel := context.WithCancel(context.Background())

	r := makeFixedRetry(1 * time.Hour)
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := r.Do(ctx, 5, "testFnName", func(attempt int) (error, ExitStrategy) {
		count++
		return fmt.Errorf("err"), Continue
	})

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, count)
}

func Test_wait_zero_duration(t *testing.T) {
	assert.NoError(t, wait(context.Background(), 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, wait(ctx, 0))
}

func makeFixedRetry(d time.Duration) *fixedRetry {
	return NewFixedRetry(
		WithDelay(d),
	).(*fixedRetry)
}
