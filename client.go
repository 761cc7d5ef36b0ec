package tradeoffers

import (
	"net/http"

	"github.com/Black4Blade/CSharpTradeOffers/api"
	"github.com/Black4Blade/CSharpTradeOffers/web"
)

type Client struct {
	httpClient *http.Client
	fetcher    *web.Fetcher

	econ  *api.EconService
	users *api.SteamUsers
}

func NewClient(apiKey string, opts ...ConfigOption) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := &http.Client{}
	httpClient.Transport = cfg.transport
	httpClient.Timeout = cfg.timeout
	httpClient.Jar = cfg.jar

	exec := web.NewExecutor(
		httpClient,
		web.WithRateLimiter(cfg.limiter),
		web.WithExecutorLogger(cfg.logger),
	)
	fetcher := web.NewFetcher(exec, web.WithFetcherLogger(cfg.logger))

	apiOpts := []api.Option{
		api.WithRetryWait(cfg.retryWait),
		api.WithRetryCount(cfg.retryCount),
	}

	return &Client{
		httpClient: httpClient,
		fetcher:    fetcher,
		econ:       api.NewEconServiceApi(apiKey, fetcher, cfg.logger, apiOpts...),
		users:      api.NewSteamUsersApi(apiKey, fetcher, cfg.logger, apiOpts...),
	}
}

// Econ exposes the IEconService methods (trade offers).
func (c *Client) Econ() *api.EconService {
	return c.econ
}

// Users exposes the ISteamUser methods.
func (c *Client) Users() *api.SteamUsers {
	return c.users
}

// Fetcher exposes the underlying retrying fetcher for endpoints this
// client doesn't wrap.
func (c *Client) Fetcher() *web.Fetcher {
	return c.fetcher
}
