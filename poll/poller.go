package poll

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Black4Blade/CSharpTradeOffers/logger"
	"github.com/Black4Blade/CSharpTradeOffers/retry"
	"github.com/Black4Blade/CSharpTradeOffers/types"
)

// Source fetches the current snapshot of trade offers. The poller calls
// it once per cycle; api.EconService.GetTradeOffers is the usual backing.
type Source interface {
	Offers(ctx context.Context) ([]types.TradeOffer, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(ctx context.Context) ([]types.TradeOffer, error)

func (f SourceFunc) Offers(ctx context.Context) ([]types.TradeOffer, error) {
	return f(ctx)
}

const (
	KindNew     = "new"
	KindChanged = "changed"
	KindRemoved = "removed"
)

// Update describes one observed change in the offer set.
type Update struct {
	// Kind is one of KindNew, KindChanged, KindRemoved
	Kind string
	// Offer is the offer's latest known state; for KindRemoved this is
	// the last state seen before it disappeared
	Offer types.TradeOffer
	// Previous holds the prior state for KindChanged, nil otherwise
	Previous *types.TradeOffer
}

// Poller watches a Source for trade-offer changes and emits Updates
// to an optional channel.
//
// Usage Example:
//
//	updates := make(chan poll.Update, 100)
//	poller := poll.NewPoller(source, updates, poll.Config{
//	    Interval:   30 * time.Second, // one cycle per 30s
//	    MaxRetries: 2,                // retry a failed cycle once
//	})
//
//	poller.Start()
//	for upd := range updates {
//	    // react to new/changed/removed offers
//	}
//	poller.Stop()
type Poller interface {
	// Start begins the polling loop. The first cycle runs immediately,
	// subsequent cycles every Interval.
	// This method is idempotent - calling Start() multiple times
	// has no effect if already running.
	Start()

	// Stop gracefully shuts down the poller: the in-flight cycle is
	// cancelled and the loop goroutine is waited for.
	// This method is idempotent - calling Stop() multiple times
	// has no effect if already stopped.
	Stop()
}

type poller struct {
	source  Source
	updChan chan<- Update
	config  Config
	logger  logger.Logger
	retry   retry.Retry

	group   errgroup.Group
	cancel  context.CancelFunc
	mu      sync.Mutex
	running bool

	// offers seen in the previous cycle, by tradeofferid
	known map[string]types.TradeOffer
}

func NewPoller(
	source Source,
	updChan chan<- Update,
	config Config,
) Poller {
	config = applyConfig(config)

	return &poller{
		source:  source,
		updChan: updChan,
		config:  config,
		logger:  config.Logger,
		retry:   config.Retry,
		known:   make(map[string]types.TradeOffer),
	}
}

func (p *poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.group.Go(func() error {
		p.listen(ctx)
		return nil
	})
	p.running = true
}

func (p *poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}

	p.cancel()
	err := p.group.Wait()
	if err != nil {
		p.logger.Errorf("poll.Poller: failed to wait for the polling loop: %v", err)
	}

	p.running = false
	p.logger.Debugf("poll.Poller: stopped")
}

func (p *poller) listen(ctx context.Context) {
	t := time.NewTicker(p.config.Interval)
	defer t.Stop()

	p.logger.Debugf("poll.Poller: polling every %v...", p.config.Interval)

	p.cycle(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.cycle(ctx)
		}
	}
}

// cycle fetches one snapshot (with retries) and emits the diff against
// the previous one. A cycle that fails all its attempts is skipped; the
// next tick starts fresh.
func (p *poller) cycle(ctx context.Context) {
	var offers []types.TradeOffer

	loopErr := p.retry.Do(
		ctx,
		p.config.MaxRetries,
		"poll.Poller.cycle",
		func(attempt int) (error, retry.ExitStrategy) {
			res, err := p.source.Offers(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return err, retry.StopNow
				}
				return err, retry.Continue
			}
			offers = res
			return nil, retry.StopNow
		},
	)
	if loopErr != nil {
		p.logger.Errorf("poll.Poller: cycle failed, skipping until next tick: %v", loopErr)
		return
	}

	p.emitDiff(offers)
}

func (p *poller) emitDiff(offers []types.TradeOffer) {
	seen := make(map[string]types.TradeOffer, len(offers))
	for _, offer := range offers {
		seen[offer.TradeOfferId] = offer

		prev, ok := p.known[offer.TradeOfferId]
		if !ok {
			p.sendUpdate(Update{Kind: KindNew, Offer: offer})
			continue
		}
		if prev.State != offer.State || prev.TimeUpdated != offer.TimeUpdated {
			prevCopy := prev
			p.sendUpdate(Update{Kind: KindChanged, Offer: offer, Previous: &prevCopy})
		}
	}

	for id, prev := range p.known {
		if _, ok := seen[id]; !ok {
			p.sendUpdate(Update{Kind: KindRemoved, Offer: prev})
		}
	}

	p.known = seen
}

func (p *poller) sendUpdate(u Update) {
	if p.updChan != nil {
		p.updChan <- u
	}
}
