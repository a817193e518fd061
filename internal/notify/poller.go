package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cardbazaar/order-service/internal/entities"

	"github.com/google/uuid"
)

type OrderQuerier interface {
	OrdersBySeller(ctx context.Context, sellerAddress string) ([]entities.Order, error)
}

// Snapshot is the result of one poll: the wallet's sales and the subset
// still awaiting shipment.
type Snapshot struct {
	Orders       []entities.Order
	PendingCount int
}

type Observer func(Snapshot)

// Poller runs one polling task per wallet and fans each snapshot out to
// every subscribed surface. Mounting three surfaces therefore costs one
// in-flight request per tick, not three.
type Poller struct {
	logger   *slog.Logger
	querier  OrderQuerier
	wallet   string
	interval time.Duration

	mu        sync.Mutex
	observers map[string]Observer
	last      Snapshot
	polled    bool
}

func NewPoller(logger *slog.Logger, querier OrderQuerier, wallet string, interval time.Duration) *Poller {
	return &Poller{
		logger:    logger.With(slog.String("component", "poller"), slog.String("wallet", wallet)),
		querier:   querier,
		wallet:    wallet,
		interval:  interval,
		observers: make(map[string]Observer),
	}
}

// Subscribe registers an observer. If a snapshot has already been taken the
// observer receives it immediately, so late-mounted surfaces do not wait a
// full interval for their first signal.
func (p *Poller) Subscribe(obs Observer) string {
	p.mu.Lock()
	id := uuid.NewString()
	p.observers[id] = obs
	snap, polled := p.last, p.polled
	p.mu.Unlock()

	if polled {
		obs(snap)
	}
	return id
}

// Unsubscribe removes the observer. After return the observer receives no
// further snapshots, including from a poll already in flight.
func (p *Poller) Unsubscribe(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.observers, id)
}

// Run polls immediately and then on every tick until ctx is cancelled.
// Without a wallet it publishes a single empty snapshot and exits: no wallet,
// no requests. A failed poll is logged and skipped; the previous snapshot
// stands and the next tick proceeds regardless.
func (p *Poller) Run(ctx context.Context) error {
	if p.wallet == "" {
		p.dispatch(Snapshot{})
		return nil
	}

	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.poll(ctx)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	pollsTotal.Inc()

	orders, err := p.querier.OrdersBySeller(ctx, p.wallet)
	if err != nil {
		pollFailures.Inc()
		p.logger.Error("poll failed", slog.Any("error", err))
		return
	}

	pending := 0
	for _, o := range orders {
		if o.Status == entities.StatusPendingShipment {
			pending++
		}
	}

	snap := Snapshot{Orders: orders, PendingCount: pending}
	pendingSales.Set(float64(pending))
	p.dispatch(snap)
}

func (p *Poller) dispatch(snap Snapshot) {
	p.mu.Lock()
	p.last = snap
	p.polled = true
	ids := make([]string, 0, len(p.observers))
	for id := range p.observers {
		ids = append(ids, id)
	}
	p.mu.Unlock()

	// Membership is re-checked per observer so that a surface torn down
	// while a poll was in flight never sees its result.
	for _, id := range ids {
		p.mu.Lock()
		obs, ok := p.observers[id]
		p.mu.Unlock()
		if ok {
			obs(snap)
		}
	}
}
