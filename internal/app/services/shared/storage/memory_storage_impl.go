package storage

import (
	"context"
	"strconv"
	"sync"
	"time"

	"telecheck-service/internal/app/contracts"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// memorySessionStorage is the self-contained SessionStorage used by tests
// and single-node deployments without Redis.
type memorySessionStorage struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemorySessionStorage() contracts.SessionStorage {
	return &memorySessionStorage{entries: make(map[string]memoryEntry)}
}

func (s *memorySessionStorage) Set(ctx context.Context, key, value string, exp time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := memoryEntry{value: value}
	if exp > 0 {
		entry.expiresAt = time.Now().Add(exp)
	}
	s.entries[key] = entry
	return nil
}

func (s *memorySessionStorage) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok {
		return "", nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		return "", nil
	}
	return entry.value, nil
}

func (s *memorySessionStorage) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.entries, key)
	}
	return nil
}

func (s *memorySessionStorage) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || (!entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt)) {
		s.entries[key] = memoryEntry{value: "1", expiresAt: time.Now().Add(ttl)}
		return 1, nil
	}

	count, err := strconv.ParseInt(entry.value, 10, 64)
	if err != nil {
		count = 0
	}
	count++
	entry.value = strconv.FormatInt(count, 10)
	s.entries[key] = entry
	return count, nil
}
