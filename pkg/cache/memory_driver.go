package cache

import (
	"encoding/json"
	"sync"
	"time"
)

type memoryEntry struct {
	data    []byte
	expires time.Time
}

// memoryDriver is a process-local store with lazy expiry. Good enough for
// single-instance development and tests; sessions do not survive restarts.
type memoryDriver struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func newMemoryDriver() *memoryDriver {
	return &memoryDriver{entries: make(map[string]memoryEntry)}
}

func (d *memoryDriver) Get(key string, dest interface{}) bool {
	d.mu.RLock()
	e, ok := d.entries[key]
	d.mu.RUnlock()

	if !ok {
		return false
	}
	if !e.expires.IsZero() && time.Now().After(e.expires) {
		d.mu.Lock()
		delete(d.entries, key)
		d.mu.Unlock()
		return false
	}

	return json.Unmarshal(e.data, dest) == nil
}

func (d *memoryDriver) Set(key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	e := memoryEntry{data: data}
	if ttl > 0 {
		e.expires = time.Now().Add(ttl)
	}

	d.mu.Lock()
	d.entries[key] = e
	d.mu.Unlock()
	return nil
}

func (d *memoryDriver) Del(keys ...string) error {
	d.mu.Lock()
	for _, k := range keys {
		delete(d.entries, k)
	}
	d.mu.Unlock()
	return nil
}
