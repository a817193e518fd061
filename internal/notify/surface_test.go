package notify

import (
	"context"
	"testing"
	"time"

	"github.com/cardbazaar/order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// idlePoller returns a poller that never polls on its own; tests feed it
// snapshots through dispatch.
func idlePoller(wallet string) *Poller {
	querier := &fakeQuerier{fn: func(context.Context, string) ([]entities.Order, error) {
		return nil, nil
	}}
	return NewPoller(testLogger(), querier, wallet, time.Hour)
}

func TestSurface_Visibility(t *testing.T) {
	store := NewMemoryStore()
	bus := NewBus()
	p := idlePoller("seller-wallet")

	s := NewSurface("banner", testLogger(), "seller-wallet", store, bus)
	s.Attach(p)
	defer s.Detach()

	p.dispatch(Snapshot{PendingCount: 0})
	assert.False(t, s.Visible())

	p.dispatch(Snapshot{PendingCount: 2})
	assert.True(t, s.Visible())
	assert.Equal(t, 2, s.PendingCount())

	p.dispatch(Snapshot{PendingCount: 0})
	assert.False(t, s.Visible())
}

func TestSurface_Acknowledge(t *testing.T) {
	store := NewMemoryStore()
	bus := NewBus()
	p := idlePoller("seller-wallet")

	s := NewSurface("banner", testLogger(), "seller-wallet", store, bus)
	s.Attach(p)
	defer s.Detach()

	p.dispatch(Snapshot{PendingCount: 1})
	require.True(t, s.Visible())

	require.NoError(t, s.Acknowledge())
	assert.False(t, s.Visible())

	st, ok, err := store.Get("seller-wallet")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, State{Viewed: true, LastViewedPendingCount: 1}, st)

	// The same count on the next poll stays acknowledged; a higher one does not.
	p.dispatch(Snapshot{PendingCount: 1})
	assert.False(t, s.Visible())

	p.dispatch(Snapshot{PendingCount: 2})
	assert.True(t, s.Visible())
}

func TestSurface_CrossSurfaceSuppression(t *testing.T) {
	store := NewMemoryStore()
	bus := NewBus()
	p := idlePoller("seller-wallet")

	banner := NewSurface("banner", testLogger(), "seller-wallet", store, bus)
	toast := NewSurface("toast", testLogger(), "seller-wallet", store, bus)
	banner.Attach(p)
	toast.Attach(p)
	defer banner.Detach()
	defer toast.Detach()

	p.dispatch(Snapshot{PendingCount: 1})
	require.True(t, banner.Visible())
	require.True(t, toast.Visible())

	// Acknowledging on one surface hides the other without waiting for the
	// next poll.
	require.NoError(t, toast.Acknowledge())
	assert.False(t, toast.Visible())
	assert.False(t, banner.Visible())
}

func TestSurface_SnapshotWritesBackClearedFlag(t *testing.T) {
	store := NewMemoryStore()
	bus := NewBus()
	p := idlePoller("seller-wallet")

	require.NoError(t, store.Set("seller-wallet", State{Viewed: true, LastViewedPendingCount: 1}))

	s := NewSurface("banner", testLogger(), "seller-wallet", store, bus)
	s.Attach(p)
	defer s.Detach()

	p.dispatch(Snapshot{PendingCount: 2})
	require.True(t, s.Visible())

	st, ok, err := store.Get("seller-wallet")
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, st.Viewed)
	assert.Equal(t, 1, st.LastViewedPendingCount)
}

func TestSurface_NoWallet(t *testing.T) {
	store := NewMemoryStore()
	bus := NewBus()
	p := idlePoller("")

	s := NewSurface("banner", testLogger(), "", store, bus)
	s.Attach(p)
	defer s.Detach()

	p.dispatch(Snapshot{PendingCount: 3})
	assert.False(t, s.Visible())
	assert.Zero(t, s.PendingCount())

	// Acknowledging without a wallet is a no-op and persists nothing.
	require.NoError(t, s.Acknowledge())
	_, ok, err := store.Get("")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSurface_Detach(t *testing.T) {
	store := NewMemoryStore()
	bus := NewBus()
	p := idlePoller("seller-wallet")

	s := NewSurface("banner", testLogger(), "seller-wallet", store, bus)
	s.Attach(p)

	p.dispatch(Snapshot{PendingCount: 1})
	require.True(t, s.Visible())

	s.Detach()

	p.dispatch(Snapshot{PendingCount: 5})
	assert.Equal(t, 1, s.PendingCount(), "detached surface must not apply new snapshots")

	require.NoError(t, store.Set("seller-wallet", Acknowledge(1)))
	bus.Publish()
	assert.True(t, s.Visible(), "detached surface must not receive bus events")
}
