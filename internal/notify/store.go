package notify

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// AckStore holds acknowledgment state keyed by wallet address. State is
// created lazily on first read and never deleted; a disconnected wallet's
// entry simply goes stale.
type AckStore interface {
	Get(wallet string) (State, bool, error)
	Set(wallet string, st State) error
}

// FileStore persists acknowledgment state as a single JSON file so it
// survives client restarts, the same way the web client keeps this state in
// browser storage. Writes go through a temp file and rename.
type FileStore struct {
	mu     sync.Mutex
	path   string
	states map[string]State
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		states: make(map[string]State),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ack store: %w", err)
	}
	if err := json.Unmarshal(data, &s.states); err != nil {
		return nil, fmt.Errorf("failed to parse ack store: %w", err)
	}
	return s, nil
}

func (s *FileStore) Get(wallet string) (State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[wallet]
	return st, ok, nil
}

func (s *FileStore) Set(wallet string, st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[wallet] = st
	return s.flush()
}

func (s *FileStore) flush() error {
	data, err := json.Marshal(s.states)
	if err != nil {
		return fmt.Errorf("failed to marshal ack store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create ack store dir: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write ack store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace ack store: %w", err)
	}
	return nil
}

// MemoryStore is an AckStore for tests and for sessions that should not
// leave state behind.
type MemoryStore struct {
	mu     sync.Mutex
	states map[string]State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]State)}
}

func (s *MemoryStore) Get(wallet string) (State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[wallet]
	return st, ok, nil
}

func (s *MemoryStore) Set(wallet string, st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[wallet] = st
	return nil
}
