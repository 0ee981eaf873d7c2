package cache

import (
	"sync"
	"time"
)

const janitorInterval = 10 * time.Minute

// MemoryStore is an in-process TTL key-value store. It backs the
// anti-forgery token manager on single-instance deployments where no
// Redis is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// NewMemoryStore creates an empty store and starts its janitor
func NewMemoryStore() *MemoryStore {
	ms := &MemoryStore{entries: make(map[string]memoryEntry)}
	go ms.janitor()
	return ms
}

// Set stores value under key for the given lifetime
func (ms *MemoryStore) Set(key string, value string, expiration time.Duration) {
	ms.mu.Lock()
	ms.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(expiration)}
	ms.mu.Unlock()
}

// Get returns the value for key; expired entries read as absent
func (ms *MemoryStore) Get(key string) (string, bool) {
	ms.mu.RLock()
	entry, ok := ms.entries[key]
	ms.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return "", false
	}
	return entry.value, true
}

// Delete removes key
func (ms *MemoryStore) Delete(key string) {
	ms.mu.Lock()
	delete(ms.entries, key)
	ms.mu.Unlock()
}

// janitor drops expired entries so abandoned tokens don't pile up
func (ms *MemoryStore) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		ms.mu.Lock()
		for key, entry := range ms.entries {
			if now.After(entry.expiresAt) {
				delete(ms.entries, key)
			}
		}
		ms.mu.Unlock()
	}
}
