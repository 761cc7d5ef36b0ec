package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Black4Blade/CSharpTradeOffers/errors"
	"github.com/Black4Blade/CSharpTradeOffers/logger"
	"github.com/Black4Blade/CSharpTradeOffers/parsers"
	"github.com/Black4Blade/CSharpTradeOffers/web"
)

const (
	baseUrl = "https://api.steampowered.com"

	defaultRetryWait  = 1 * time.Second
	defaultRetryCount = 3
)

// apiClient is the shared plumbing behind every endpoint group. All
// requests go through web.Fetcher.RetryFetch with the configured retry
// budget; a spent budget surfaces to api callers as an ApiError of type
// TYPE_EXHAUSTED rather than an empty result, because at this layer
// "Steam never answered" is a failure, not an expected outcome.
type apiClient struct {
	apiKey     string
	fetcher    *web.Fetcher
	logger     logger.Logger
	retryWait  time.Duration
	retryCount int
}

type Option func(c *apiClient)

// WithRetryWait sets the delay between retry attempts for transient
// request failures.
func WithRetryWait(d time.Duration) Option {
	return func(c *apiClient) {
		c.retryWait = d
	}
}

// WithRetryCount sets the total attempt budget per request.
func WithRetryCount(count int) Option {
	return func(c *apiClient) {
		c.retryCount = count
	}
}

func newApiClient(
	apiKey string,
	fetcher *web.Fetcher,
	logger logger.Logger,
	opts ...Option,
) *apiClient {
	c := &apiClient{
		apiKey:     apiKey,
		fetcher:    fetcher,
		logger:     logger,
		retryWait:  defaultRetryWait,
		retryCount: defaultRetryCount,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *apiClient) getJson(ctx context.Context, path string, data url.Values, resData any) *errors.ApiError {
	return c.sendJson(ctx, http.MethodGet, path, data, resData)
}

func (c *apiClient) postJson(ctx context.Context, path string, data url.Values, resData any) *errors.ApiError {
	return c.sendJson(ctx, http.MethodPost, path, data, resData)
}

func (c *apiClient) sendJson(
	ctx context.Context,
	httpMethod string,
	path string,
	data url.Values,
	resData any,
) *errors.ApiError {
	endpoint := baseUrl + "/" + path

	params := url.Values{}
	for k, vs := range data {
		params[k] = vs
	}
	params.Set("key", c.apiKey)

	text, found, err := c.fetcher.RetryFetch(
		ctx, c.retryWait, c.retryCount, httpMethod, endpoint, params,
	)
	if err != nil {
		if apiErr, ok := err.(*errors.ApiError); ok {
			return apiErr
		}
		return &errors.ApiError{
			Stage:     errors.STAGE_REQUEST,
			Type:      errors.TYPE_UNKNOWN,
			SourceErr: err,
		}
	}
	if !found {
		return &errors.ApiError{
			Stage:     errors.STAGE_REQUEST,
			Type:      errors.TYPE_EXHAUSTED,
			SourceErr: fmt.Errorf("no response from Steam after %d attempts: %s %s", c.retryCount, httpMethod, path),
		}
	}

	body := []byte(text)
	if code, ok := parsers.EResultFromBytes(body); ok && code != errors.EResultOK {
		apiErr := &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_INVALID_DATA,
			Body:           body,
			HttpStatusCode: http.StatusOK,
			EResult:        code,
		}
		// Best effort to return some data
		_ = json.Unmarshal(body, resData)
		return apiErr
	}

	jsonErr := json.Unmarshal(body, resData)
	if jsonErr != nil {
		return &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_JSON_PARSE,
			SourceErr:      jsonErr,
			Body:           body,
			HttpStatusCode: http.StatusOK,
		}
	}
	return nil
}

// toNilErr converts a *errors.ApiError type to be a true nil interface.
// Internally, a Go interface has a Type and Value.
// An interface value is nil only if the V and T are both unset.
// See: https://go.dev/doc/faq#nil_error
func toNilErr[T any](r T, e *errors.ApiError) (T, error) {
	if e != nil {
		return r, e
	}
	return r, nil
}
