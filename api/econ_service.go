package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Black4Blade/CSharpTradeOffers/errors"
	"github.com/Black4Blade/CSharpTradeOffers/logger"
	"github.com/Black4Blade/CSharpTradeOffers/types"
	"github.com/Black4Blade/CSharpTradeOffers/web"
)

var (
	PathGetTradeOffers        = "IEconService/GetTradeOffers/v1/"
	PathGetTradeOffer         = "IEconService/GetTradeOffer/v1/"
	PathGetTradeOffersSummary = "IEconService/GetTradeOffersSummary/v1/"
	PathDeclineTradeOffer     = "IEconService/DeclineTradeOffer/v1/"
	PathCancelTradeOffer      = "IEconService/CancelTradeOffer/v1/"
)

// EconService implements a set of IEconService API methods,
// See: https://steamapi.xpaw.me/#IEconService
type EconService struct {
	api *apiClient
}

func NewEconServiceApi(
	apiKey string,
	fetcher *web.Fetcher,
	logger logger.Logger,
	opts ...Option,
) *EconService {
	return &EconService{
		api: newApiClient(apiKey, fetcher, logger, opts...),
	}
}

// TradeOffersQuery narrows GetTradeOffers. The zero value asks for
// nothing; set at least one of Sent/Received.
type TradeOffersQuery struct {
	Sent                 bool
	Received             bool
	Descriptions         bool
	Language             string
	ActiveOnly           bool
	HistoricalOnly       bool
	TimeHistoricalCutoff int64
}

func (e *EconService) GetTradeOffers(ctx context.Context, query TradeOffersQuery) (*types.TradeOffersResult, error) {
	params := url.Values{}
	params.Add("get_sent_offers", boolParam(query.Sent))
	params.Add("get_received_offers", boolParam(query.Received))
	params.Add("get_descriptions", boolParam(query.Descriptions))
	if query.Language != "" {
		params.Add("language", query.Language)
	}
	params.Add("active_only", boolParam(query.ActiveOnly))
	params.Add("historical_only", boolParam(query.HistoricalOnly))
	if query.TimeHistoricalCutoff > 0 {
		params.Add("time_historical_cutoff", fmt.Sprint(query.TimeHistoricalCutoff))
	}

	var res types.TradeOffersResponse
	return toNilErr(&res.Response, e.api.getJson(ctx, PathGetTradeOffers, params, &res))
}

// GetTradeOffer returns a single offer by id. The second return value
// is false when Steam has no offer with that id.
func (e *EconService) GetTradeOffer(ctx context.Context, tradeOfferId string) (*types.TradeOffer, bool, error) {
	params := url.Values{}
	params.Add("tradeofferid", tradeOfferId)

	var res types.TradeOfferResponse
	err := e.api.getJson(ctx, PathGetTradeOffer, params, &res)
	if err != nil {
		if err.EResult == errors.EResultNoMatch {
			return nil, false, nil
		}
		return nil, false, err
	}
	if res.Response.Offer.TradeOfferId == "" {
		return nil, false, nil
	}
	return &res.Response.Offer, true, nil
}

func (e *EconService) GetTradeOffersSummary(ctx context.Context, timeLastVisit int64) (*types.TradeOffersSummary, error) {
	params := url.Values{}
	if timeLastVisit > 0 {
		params.Add("time_last_visit", fmt.Sprint(timeLastVisit))
	}

	var res types.TradeOffersSummaryResponse
	return toNilErr(&res.Response, e.api.getJson(ctx, PathGetTradeOffersSummary, params, &res))
}

func (e *EconService) DeclineTradeOffer(ctx context.Context, tradeOfferId string) error {
	return e.postOfferAction(ctx, PathDeclineTradeOffer, tradeOfferId)
}

func (e *EconService) CancelTradeOffer(ctx context.Context, tradeOfferId string) error {
	return e.postOfferAction(ctx, PathCancelTradeOffer, tradeOfferId)
}

func (e *EconService) postOfferAction(ctx context.Context, path string, tradeOfferId string) error {
	params := url.Values{}
	params.Add("tradeofferid", tradeOfferId)

	var res struct{}
	if apiErr := e.api.postJson(ctx, path, params, &res); apiErr != nil {
		return apiErr
	}
	return nil
}

func boolParam(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
