package notify

import (
	"log/slog"
	"sync"
)

// Surface is one notification UI element (banner, toast, nav indicator).
// All surfaces apply the same reconciliation rule against the shared
// AckStore, and an acknowledgment on any of them suppresses the rest
// through the Bus without waiting for their next snapshot.
type Surface struct {
	name   string
	logger *slog.Logger
	wallet string
	store  AckStore
	bus    *Bus

	mu      sync.Mutex
	pending int
	visible bool

	pollerID string
	busID    string
	poller   *Poller
}

func NewSurface(name string, logger *slog.Logger, wallet string, store AckStore, bus *Bus) *Surface {
	return &Surface{
		name:   name,
		logger: logger.With(slog.String("surface", name)),
		wallet: wallet,
		store:  store,
		bus:    bus,
	}
}

// Attach subscribes the surface to the shared poller and to the
// acknowledgment bus. Call Detach on teardown.
func (s *Surface) Attach(p *Poller) {
	s.poller = p
	s.busID = s.bus.Subscribe(s.onAcknowledged)
	s.pollerID = p.Subscribe(s.onSnapshot)
}

func (s *Surface) Detach() {
	if s.poller != nil {
		s.poller.Unsubscribe(s.pollerID)
	}
	s.bus.Unsubscribe(s.busID)
}

func (s *Surface) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

func (s *Surface) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Acknowledge records that the seller has seen the current pending sales:
// the state is persisted with the count at acknowledgment time and every
// other surface is told to hide immediately.
func (s *Surface) Acknowledge() error {
	s.mu.Lock()
	pending := s.pending
	s.visible = false
	s.mu.Unlock()

	if s.wallet == "" {
		return nil
	}

	if err := s.store.Set(s.wallet, Acknowledge(pending)); err != nil {
		return err
	}

	s.logger.Debug("acknowledged", slog.Int("pending", pending))
	s.bus.Publish()
	return nil
}

func (s *Surface) onSnapshot(snap Snapshot) {
	if s.wallet == "" {
		s.mu.Lock()
		s.pending = 0
		s.visible = false
		s.mu.Unlock()
		return
	}

	st, _, err := s.store.Get(s.wallet)
	if err != nil {
		s.logger.Error("failed to read ack state", slog.Any("error", err))
		return
	}

	next, visible := Reconcile(snap.PendingCount, st)
	if next != st {
		// The cleared Viewed flag is written back so surfaces reading the
		// store later in the same tick agree with this one.
		if err := s.store.Set(s.wallet, next); err != nil {
			s.logger.Error("failed to write ack state", slog.Any("error", err))
		}
	}

	s.mu.Lock()
	s.pending = snap.PendingCount
	s.visible = visible
	s.mu.Unlock()
}

// onAcknowledged handles the bus event: the store is re-read rather than
// trusting any event payload, and visibility drops without waiting for the
// next poll.
func (s *Surface) onAcknowledged() {
	if s.wallet == "" {
		return
	}

	st, _, err := s.store.Get(s.wallet)
	if err != nil {
		s.logger.Error("failed to read ack state", slog.Any("error", err))
		return
	}

	s.mu.Lock()
	s.visible = s.pending > 0 && !st.Viewed
	s.mu.Unlock()
}
