package nonce

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	eventID   int64
	expiresAt time.Time
}

// MemoryStore is an in-process Store. Expired entries are rejected on
// read immediately, and physically removed by Sweep.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// NewMemoryStoreWithClock is for tests that need a controllable clock.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	s := NewMemoryStore()
	s.now = now
	return s
}

func (s *MemoryStore) Put(_ context.Context, nonce string, eventID int64, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[nonce] = entry{eventID: eventID, expiresAt: expiresAt}
	return nil
}

func (s *MemoryStore) Peek(_ context.Context, nonce string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[nonce]
	if !ok || !s.now().Before(e.expiresAt) {
		return 0, false, nil
	}
	return e.eventID, true, nil
}

func (s *MemoryStore) Consume(_ context.Context, nonce string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[nonce]
	if !ok {
		return 0, false, nil
	}
	delete(s.entries, nonce)
	if !s.now().Before(e.expiresAt) {
		return 0, false, nil
	}
	return e.eventID, true, nil
}

func (s *MemoryStore) Sweep(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for nonce, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, nonce)
			removed++
		}
	}
	return removed, nil
}

// Len reports the number of tracked entries, live or expired.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
