package web

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/Black4Blade/CSharpTradeOffers/errors"
	"github.com/Black4Blade/CSharpTradeOffers/logger"
	"github.com/Black4Blade/CSharpTradeOffers/parsers"
	"github.com/Black4Blade/CSharpTradeOffers/rate"
)

// Steam community rejects requests without a browser-looking User-Agent.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/115.0"

// Executor performs a single network call: build the request, send it,
// and hand back the open response. It never retries and never drains a
// successful response body; retry policy and draining belong to Fetcher.
//
// Errors come back as *errors.ApiError. Transport-level failures are
// marked transient (see errors.IsTransient); everything else is
// permanent from the retry layer's point of view.
type Executor interface {
	Execute(ctx context.Context, method string, url string, data url.Values) (*http.Response, error)
}

type executorConfig struct {
	userAgent string
	referer   string
	limiter   rate.Limiter
	logger    logger.Logger
}

func defaultExecutorConfig() executorConfig {
	return executorConfig{
		userAgent: defaultUserAgent,
		limiter:   &rate.NoopLimiter{},
		logger:    &logger.Noop{},
	}
}

type ExecutorOption func(c *executorConfig)

func WithUserAgent(userAgent string) ExecutorOption {
	return func(c *executorConfig) {
		c.userAgent = userAgent
	}
}

func WithReferer(referer string) ExecutorOption {
	return func(c *executorConfig) {
		c.referer = referer
	}
}

func WithRateLimiter(limiter rate.Limiter) ExecutorOption {
	return func(c *executorConfig) {
		c.limiter = limiter
	}
}

func WithExecutorLogger(log logger.Logger) ExecutorOption {
	return func(c *executorConfig) {
		c.logger = log
	}
}

type httpExecutor struct {
	httpClient *http.Client
	config     executorConfig
}

var _ Executor = &httpExecutor{}

// NewExecutor returns the default Executor built on the given
// *http.Client. Session cookies, timeouts, and transports are the
// http.Client's concern (set a Jar on it to carry Steam login cookies).
func NewExecutor(httpClient *http.Client, opts ...ExecutorOption) Executor {
	config := defaultExecutorConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &httpExecutor{
		httpClient: httpClient,
		config:     config,
	}
}

// Execute sends one request. GET and HEAD requests carry data in the
// query string; everything else posts an url-encoded form body.
func (e *httpExecutor) Execute(
	ctx context.Context,
	method string,
	urlStr string,
	data url.Values,
) (*http.Response, error) {
	req, apiErr := e.buildRequest(ctx, method, urlStr, data)
	if apiErr != nil {
		return nil, apiErr
	}

	reqId := uuid.NewString()
	e.config.logger.Debugf(
		"web.Executor: sending request. req_id=%s, method=%s, url=%s",
		reqId, method, req.URL,
	)

	e.config.limiter.Limit(req)

	res, err := e.httpClient.Do(req)
	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_REQUEST,
			Type:      errors.TYPE_IO,
			SourceErr: err,
		}
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		var body []byte
		if res.Body != nil {
			body, _ = io.ReadAll(res.Body)
			_ = res.Body.Close()
		}
		apiErr := &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_HTTP_STATUS,
			Body:           body,
			HttpStatusCode: res.StatusCode,
		}
		if code, ok := parsers.EResultFromBytes(body); ok {
			apiErr.EResult = code
		}
		e.config.logger.Debugf(
			"web.Executor: request failed. req_id=%s, status=%d, eresult=%d",
			reqId, res.StatusCode, apiErr.EResult,
		)
		return nil, apiErr
	}

	e.config.logger.Debugf(
		"web.Executor: request succeeded. req_id=%s, status=%d",
		reqId, res.StatusCode,
	)
	return res, nil
}

func (e *httpExecutor) buildRequest(
	ctx context.Context,
	method string,
	urlStr string,
	data url.Values,
) (*http.Request, *errors.ApiError) {
	var req *http.Request
	var err error

	if method == http.MethodGet || method == http.MethodHead {
		if len(data) > 0 {
			sep := "?"
			if strings.Contains(urlStr, "?") {
				sep = "&"
			}
			urlStr = urlStr + sep + data.Encode()
		}
		req, err = http.NewRequestWithContext(ctx, method, urlStr, nil)
	} else {
		var body io.Reader
		if len(data) > 0 {
			body = strings.NewReader(data.Encode())
		}
		req, err = http.NewRequestWithContext(ctx, method, urlStr, body)
		if req != nil && body != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}

	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_PREP,
			SourceErr: err,
		}
	}

	req.Header.Set("User-Agent", e.config.userAgent)
	if e.config.referer != "" {
		req.Header.Set("Referer", e.config.referer)
	}

	return req, nil
}
