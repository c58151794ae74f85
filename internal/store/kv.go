// Package store holds the session-scoped client state: the bearer token and
// the favorite-asset list. Nothing here is durable; all state lives for the
// lifetime of the process, the way a browser tab's session storage would.
package store

import "sync"

// KV is a minimal key-value store for session-scoped state. Implementations
// must be safe for concurrent use by overlapping refreshes.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// memoryKV is the production binding: a mutex-guarded in-process map.
type memoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV creates an empty in-memory key-value store.
func NewMemoryKV() KV {
	return &memoryKV{data: make(map[string]string)}
}

func (m *memoryKV) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	return value, ok
}

func (m *memoryKV) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
}

func (m *memoryKV) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
}
