package oauth

import (
	"context"
	"sync"
	"time"

	"envybase/internal/domain/service"
)

type stateEntry struct {
	provider  string
	expiresAt time.Time
}

// MemoryStateStore keeps OAuth state values in process. It is used when Redis
// is disabled and only suits a single instance.
type MemoryStateStore struct {
	mu      sync.Mutex
	entries map[string]stateEntry
	now     func() time.Time
}

// NewMemoryStateStore creates an empty in-memory state store.
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{
		entries: make(map[string]stateEntry),
		now:     time.Now,
	}
}

var _ service.StateStore = (*MemoryStateStore)(nil)

// Save stores state bound to provider and drops expired entries.
func (s *MemoryStateStore) Save(_ context.Context, state, provider string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, key)
		}
	}
	s.entries[state] = stateEntry{provider: provider, expiresAt: now.Add(ttl)}

	return nil
}

// Consume removes state. Unknown and expired values yield ErrStateNotFound.
func (s *MemoryStateStore) Consume(_ context.Context, state string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[state]
	if !ok {
		return "", service.ErrStateNotFound
	}
	delete(s.entries, state)

	if s.now().After(entry.expiresAt) {
		return "", service.ErrStateNotFound
	}

	return entry.provider, nil
}
