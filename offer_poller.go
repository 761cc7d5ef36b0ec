package tradeoffers

import (
	"context"

	"github.com/Black4Blade/CSharpTradeOffers/api"
	"github.com/Black4Blade/CSharpTradeOffers/poll"
	"github.com/Black4Blade/CSharpTradeOffers/types"
)

// OfferPoller watches the account's trade offers through a Client and
// emits poll.Updates as offers appear, change state, or disappear.
type OfferPoller struct {
	config pollerConfig
	poller poll.Poller
}

func NewOfferPoller(client *Client, opts ...PollerConfigOption) *OfferPoller {
	pConfig := defaultPollerConfig()
	for _, o := range opts {
		o(&pConfig)
	}

	query := api.TradeOffersQuery{
		Sent:       pConfig.sent,
		Received:   pConfig.received,
		ActiveOnly: pConfig.activeOnly,
	}
	source := poll.SourceFunc(func(ctx context.Context) ([]types.TradeOffer, error) {
		res, err := client.Econ().GetTradeOffers(ctx, query)
		if err != nil {
			return nil, err
		}
		offers := make([]types.TradeOffer, 0, len(res.TradeOffersReceived)+len(res.TradeOffersSent))
		offers = append(offers, res.TradeOffersReceived...)
		offers = append(offers, res.TradeOffersSent...)
		return offers, nil
	})

	return &OfferPoller{
		config: pConfig,
		poller: poll.NewPoller(
			source,
			pConfig.updatesChan,
			poll.Config{
				Interval:   pConfig.interval,
				MaxRetries: pConfig.retryTimes,
				Retry:      pConfig.retry,
				Logger:     pConfig.logger,
			},
		),
	}
}

func (p *OfferPoller) Start() {
	p.poller.Start()
}

func (p *OfferPoller) Stop() {
	p.poller.Stop()
}
