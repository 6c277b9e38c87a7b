package storage

import (
	"context"
	"sync"
)

// MemoryStore is an ephemeral driver for tests and throwaway runs. Nothing
// survives the process.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte

	// FailWrites makes every Put fail. Tests use it to exercise the
	// degraded-durability path.
	FailWrites error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.slots[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites != nil {
		return s.FailWrites
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	s.slots[key] = stored
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (s *MemoryStore) Close(_ context.Context) error {
	return nil
}
