package web

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Black4Blade/CSharpTradeOffers/errors"
)

const testUrl = "https://steamcommunity.com/tradeoffer/123/"

func Test_Fetch_drains_body(t *testing.T) {
	exec := scriptedExecutor(succeedWith("Response From Steam"))
	f := NewFetcher(exec)

	text, err := f.Fetch(context.Background(), http.MethodGet, testUrl, nil)
	require.NoError(t, err)
	assert.Equal(t, "Response From Steam", text)
	assert.Equal(t, 1, exec.calls)
	assert.True(t, exec.lastBody.isClosed)
}

func Test_Fetch_never_retries(t *testing.T) {
	exec := scriptedExecutor(failTransient())
	f := NewFetcher(exec)

	_, err := f.Fetch(context.Background(), http.MethodGet, testUrl, nil)
	require.Error(t, err)
	assert.True(t, errors.IsTransient(err))
	assert.Equal(t, 1, exec.calls)
}

func Test_Fetch_read_error(t *testing.T) {
	exec := &fakeExecutor{
		script: []execStep{{res: &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(&brokenReader{}),
		}}},
	}
	f := NewFetcher(exec)

	_, err := f.Fetch(context.Background(), http.MethodGet, testUrl, nil)
	require.Error(t, err)

	apiErr, ok := err.(*errors.ApiError)
	require.True(t, ok)
	assert.Equal(t, errors.TYPE_IO, apiErr.Type)
	assert.Equal(t, errors.STAGE_AFTER_REQUEST, apiErr.Stage)
}

func Test_FetchStream_returns_undrained_stream(t *testing.T) {
	exec := scriptedExecutor(succeedWith("Response From Steam"))
	f := NewFetcher(exec)

	stream, err := f.FetchStream(context.Background(), http.MethodGet, testUrl, nil)
	require.NoError(t, err)
	require.NotNil(t, stream)

	// same handle the executor produced, untouched
	assert.Equal(t, exec.lastBody, stream)
	assert.False(t, exec.lastBody.isRead)
	assert.False(t, exec.lastBody.isClosed)

	body, readErr := io.ReadAll(stream)
	require.NoError(t, readErr)
	assert.Equal(t, "Response From Steam", string(body))
}

func Test_FetchStream_never_retries(t *testing.T) {
	exec := scriptedExecutor(failTransient())
	f := NewFetcher(exec)

	stream, err := f.FetchStream(context.Background(), http.MethodGet, testUrl, nil)
	assert.Nil(t, stream)
	require.Error(t, err)
	assert.Equal(t, 1, exec.calls)
}

func Test_RetryFetch_first_attempt_success(t *testing.T) {
	exec := scriptedExecutor(succeedWith("Response From Steam"))
	f := NewFetcher(exec)

	start := time.Now()
	text, found, err := f.RetryFetch(
		context.Background(), 1*time.Millisecond, 5,
		http.MethodGet, testUrl, nil,
	)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Response From Steam", text)
	assert.Equal(t, 1, exec.calls)
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func Test_RetryFetch_exhaustion(t *testing.T) {
	exec := scriptedExecutor(failTransient())
	f := NewFetcher(exec)

	start := time.Now()
	text, found, err := f.RetryFetch(
		context.Background(), 1*time.Millisecond, 2,
		http.MethodGet, testUrl, nil,
	)
	elapsed := time.Since(start)

	// exhaustion is an expected outcome, not an error
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "", text)
	assert.Equal(t, 2, exec.calls)
	// one inter-attempt wait, none after the final attempt
	assert.GreaterOrEqual(t, elapsed, 1*time.Millisecond)
	assert.Less(t, elapsed, 100*time.Millisecond)
}

func Test_RetryFetch_recovers_mid_budget(t *testing.T) {
	exec := scriptedExecutor(
		failTransient(),
		failTransient(),
		succeedWith("Response From Steam"),
	)
	f := NewFetcher(exec)

	text, found, err := f.RetryFetch(
		context.Background(), 1*time.Millisecond, 5,
		http.MethodGet, testUrl, nil,
	)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Response From Steam", text)
	assert.Equal(t, 3, exec.calls)
}

func Test_RetryFetch_zero_attempts(t *testing.T) {
	for _, maxAttempts := range []int{0, -1} {
		t.Run(fmt.Sprintf("maxAttempts=%d", maxAttempts), func(t *testing.T) {
			exec := scriptedExecutor(succeedWith("never sent"))
			f := NewFetcher(exec)

			start := time.Now()
			text, found, err := f.RetryFetch(
				context.Background(), 1*time.Hour, maxAttempts,
				http.MethodGet, testUrl, nil,
			)
			assert.NoError(t, err)
			assert.False(t, found)
			assert.Equal(t, "", text)
			assert.Equal(t, 0, exec.calls)
			assert.Less(t, time.Since(start), 50*time.Millisecond)
		})
	}
}

func Test_RetryFetch_non_transient_propagates_immediately(t *testing.T) {
	permanent := &errors.ApiError{
		Stage:          errors.STAGE_AFTER_REQUEST,
		Type:           errors.TYPE_HTTP_STATUS,
		HttpStatusCode: http.StatusForbidden,
	}
	exec := scriptedExecutor(execStep{err: permanent})
	f := NewFetcher(exec)

	text, found, err := f.RetryFetch(
		context.Background(), 1*time.Millisecond, 5,
		http.MethodGet, testUrl, nil,
	)
	assert.Equal(t, "", text)
	assert.False(t, found)
	assert.Equal(t, permanent, err)
	assert.Equal(t, 1, exec.calls)
}

func Test_RetryFetch_cancelled_mid_wait(t *testing.T) {
	exec := scriptedExecutor(failTransient())
	f := NewFetcher(exec)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, found, err := f.RetryFetch(
		ctx, 1*time.Hour, 5,
		http.MethodGet, testUrl, nil,
	)
	assert.False(t, found)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, exec.calls)
}

func Test_RetryFetchStream_success(t *testing.T) {
	exec := scriptedExecutor(
		failTransient(),
		succeedWith("Response From Steam"),
	)
	f := NewFetcher(exec)

	stream, found, err := f.RetryFetchStream(
		context.Background(), 1*time.Millisecond, 3,
		http.MethodGet, testUrl, nil,
	)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, exec.calls)

	// undrained, same identity as the executor's stream
	assert.Equal(t, exec.lastBody, stream)
	assert.False(t, exec.lastBody.isRead)

	body, readErr := io.ReadAll(stream)
	require.NoError(t, readErr)
	assert.Equal(t, "Response From Steam", string(body))
}

func Test_RetryFetchStream_exhaustion(t *testing.T) {
	exec := scriptedExecutor(failTransient())
	f := NewFetcher(exec)

	stream, found, err := f.RetryFetchStream(
		context.Background(), 1*time.Millisecond, 3,
		http.MethodGet, testUrl, nil,
	)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, stream)
	assert.Equal(t, 3, exec.calls)
}

func Test_RetryFetchStream_zero_attempts(t *testing.T) {
	exec := scriptedExecutor(succeedWith("never sent"))
	f := NewFetcher(exec)

	stream, found, err := f.RetryFetchStream(
		context.Background(), 1*time.Millisecond, 0,
		http.MethodGet, testUrl, nil,
	)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, stream)
	assert.Equal(t, 0, exec.calls)
}

// fakeExecutor plays back a script of Execute outcomes; the last step
// repeats once the script runs out.
type fakeExecutor struct {
	script   []execStep
	calls    int
	lastBody *testReader
}

type execStep struct {
	res *http.Response
	err error
}

var _ Executor = &fakeExecutor{}

func (f *fakeExecutor) Execute(
	_ context.Context,
	_ string,
	_ string,
	_ url.Values,
) (*http.Response, error) {
	step := f.script[min(f.calls, len(f.script)-1)]
	f.calls++
	if step.err != nil {
		return nil, step.err
	}
	if body, ok := step.res.Body.(*testReader); ok {
		f.lastBody = body
	}
	return step.res, nil
}

func scriptedExecutor(steps ...execStep) *fakeExecutor {
	return &fakeExecutor{script: steps}
}

func succeedWith(body string) execStep {
	return execStep{
		res: &http.Response{
			StatusCode: 200,
			Body:       &testReader{Reader: bytes.NewBufferString(body)},
		},
	}
}

func failTransient() execStep {
	return execStep{
		err: &errors.ApiError{
			Stage:     errors.STAGE_REQUEST,
			Type:      errors.TYPE_IO,
			SourceErr: fmt.Errorf("connection reset by peer"),
		},
	}
}

type brokenReader struct{}

func (b *brokenReader) Read(_ []byte) (int, error) {
	return 0, fmt.Errorf("stream truncated")
}
