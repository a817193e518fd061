package notify

// State is the per-wallet acknowledgment record. LastViewedPendingCount is
// the pending count at the moment of the last acknowledgment, not zero:
// keeping the count makes a later increase detectable, which a bare
// seen/unseen flag cannot express.
type State struct {
	Viewed                 bool `json:"viewed"`
	LastViewedPendingCount int  `json:"last_viewed_pending_count"`
}

// Reconcile folds a freshly polled pending count into the cached state and
// reports whether the notification should be shown.
//
// When the count exceeds the last acknowledged count, new sales arrived
// after the wallet last caught up, so any stale Viewed flag is cleared
// before visibility is evaluated.
func Reconcile(pendingCount int, st State) (State, bool) {
	if pendingCount > st.LastViewedPendingCount {
		st.Viewed = false
	}
	visible := pendingCount > 0 && !st.Viewed
	return st, visible
}

// Acknowledge returns the state to persist when the seller explicitly
// dismisses the notification or opens the pending-sales view.
func Acknowledge(pendingCount int) State {
	return State{Viewed: true, LastViewedPendingCount: pendingCount}
}
