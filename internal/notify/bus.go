package notify

import (
	"sync"

	"github.com/google/uuid"
)

// Bus is a process-local broadcast for acknowledgment changes. The event
// carries no payload: receivers re-read the shared AckStore instead of
// trusting a snapshot that may already be stale by delivery time.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string]func()
}

func NewBus() *Bus {
	return &Bus{subscribers: make(map[string]func())}
}

// Subscribe registers fn and returns a token for Unsubscribe.
func (b *Bus) Subscribe(fn func()) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	b.subscribers[id] = fn
	return id
}

func (b *Bus) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subscribers, id)
}

// Publish invokes every subscriber present at call time before returning.
func (b *Bus) Publish() {
	b.mu.RLock()
	fns := make([]func(), 0, len(b.subscribers))
	for _, fn := range b.subscribers {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}
