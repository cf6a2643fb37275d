package kvstore

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore is a single-process Store backed by a mutex-guarded map.
// Expired entries are evicted lazily from the read paths.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// cleanup evicts key if its expiry has passed. Callers hold mu.
func (s *MemoryStore) cleanup(key string) {
	entry, ok := s.entries[key]
	if ok && s.now().After(entry.expiresAt) {
		delete(s.entries, key)
	}
}

// Set writes value under key with the given TTL
func (s *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{value: value, expiresAt: s.now().Add(ttl)}
	return nil
}

// Get returns the live value for key, evicting it first if expired
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanup(key)
	entry, ok := s.entries[key]
	if !ok {
		return "", false, nil
	}
	return entry.value, true, nil
}

// Exists reports whether key holds a live value
func (s *MemoryStore) Exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanup(key)
	_, ok := s.entries[key]
	return ok, nil
}

// TTL returns the remaining lifetime for key, or TTLMissing when absent
func (s *MemoryStore) TTL(_ context.Context, key string) (time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleanup(key)
	entry, ok := s.entries[key]
	if !ok {
		return TTLMissing, nil
	}
	remain := entry.expiresAt.Sub(s.now())
	if remain < 0 {
		remain = 0
	}
	return remain, nil
}

// Delete removes key
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
