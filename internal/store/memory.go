package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"sitegen_server/internal/types"
)

type memoryEntry struct {
	result  types.GenerateResult
	expires time.Time
}

// MemoryStore is the single-process fallback used when no Redis address is
// configured. Expired entries are dropped lazily on access and on Save.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, result types.GenerateResult) (string, error) {
	id := uuid.NewString()
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, k)
		}
	}
	s.entries[id] = memoryEntry{result: result, expires: now.Add(s.ttl)}
	return id, nil
}

func (s *MemoryStore) Load(_ context.Context, id string) (*types.GenerateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !s.now().Before(e.expires) {
		delete(s.entries, id)
		return nil, ErrNotFound
	}
	result := e.result
	return &result, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.entries, id)
	if !s.now().Before(e.expires) {
		return ErrNotFound
	}
	return nil
}
