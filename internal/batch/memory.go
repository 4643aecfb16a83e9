package batch

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store for tests and ephemeral agents.
type MemoryStore struct {
	mu    sync.Mutex
	items []PendingSubmission

	// FailNextSave, when set, makes the next Save return this error
	// once. Used to exercise eviction behavior in tests.
	FailNextSave error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) ([]PendingSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]PendingSubmission(nil), s.items...), nil
}

func (s *MemoryStore) Save(_ context.Context, items []PendingSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.FailNextSave; err != nil {
		s.FailNextSave = nil
		return err
	}
	s.items = append([]PendingSubmission(nil), items...)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
