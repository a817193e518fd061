package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	testCases := []struct {
		name         string
		pendingCount int
		state        State
		wantState    State
		wantVisible  bool
	}{
		{
			name:         "nothing pending, fresh wallet",
			pendingCount: 0,
			state:        State{},
			wantState:    State{},
			wantVisible:  false,
		},
		{
			name:         "pending sales, never acknowledged",
			pendingCount: 2,
			state:        State{},
			wantState:    State{},
			wantVisible:  true,
		},
		{
			name:         "acknowledged count unchanged stays hidden",
			pendingCount: 1,
			state:        State{Viewed: true, LastViewedPendingCount: 1},
			wantState:    State{Viewed: true, LastViewedPendingCount: 1},
			wantVisible:  false,
		},
		{
			name:         "count grows past acknowledgment, viewed flag cleared",
			pendingCount: 2,
			state:        State{Viewed: true, LastViewedPendingCount: 1},
			wantState:    State{Viewed: false, LastViewedPendingCount: 1},
			wantVisible:  true,
		},
		{
			name:         "count drops below acknowledgment stays hidden",
			pendingCount: 1,
			state:        State{Viewed: true, LastViewedPendingCount: 3},
			wantState:    State{Viewed: true, LastViewedPendingCount: 3},
			wantVisible:  false,
		},
		{
			name:         "all sales shipped hides even unviewed state",
			pendingCount: 0,
			state:        State{Viewed: false, LastViewedPendingCount: 2},
			wantState:    State{Viewed: false, LastViewedPendingCount: 2},
			wantVisible:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, visible := Reconcile(tc.pendingCount, tc.state)
			assert.Equal(t, tc.wantState, got)
			assert.Equal(t, tc.wantVisible, visible)
		})
	}
}

func TestAcknowledge(t *testing.T) {
	st := Acknowledge(3)
	assert.Equal(t, State{Viewed: true, LastViewedPendingCount: 3}, st)

	// Acknowledging keeps the notification hidden until the count grows.
	next, visible := Reconcile(3, st)
	assert.False(t, visible)

	_, visible = Reconcile(4, next)
	assert.True(t, visible)
}
