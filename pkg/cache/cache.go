// Package cache provides the key/value store backing sessions.
//
// Two drivers are available: "redis" for production and an in-process
// "memory" driver used as a fallback and in tests. Values are JSON-encoded
// so both drivers behave identically.
package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/josbet/floreria/config"
)

// Driver is the storage backend contract.
type Driver interface {
	// Get unmarshals the value under key into dest.
	// Returns true on a hit, false on miss or error.
	Get(key string, dest interface{}) bool
	// Set stores value under key for the given TTL.
	Set(key string, value interface{}, ttl time.Duration) error
	// Del removes keys.
	Del(keys ...string) error
}

var (
	mu      sync.RWMutex
	current Driver = newMemoryDriver()
)

// Connect selects the configured driver. When Redis is configured but
// unreachable the memory driver stays active and the error is returned so
// the caller can log a warning; the app remains usable for development.
func Connect() error {
	if config.CacheDriver() == "memory" {
		return nil
	}

	d, err := newRedisDriver()
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}

	mu.Lock()
	current = d
	mu.Unlock()
	return nil
}

// UseMemory forces the in-process driver. Intended for tests.
func UseMemory() {
	mu.Lock()
	current = newMemoryDriver()
	mu.Unlock()
}

func driver() Driver {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Get retrieves a cached value by key and unmarshals into dest.
func Get(key string, dest interface{}) bool {
	return driver().Get(key, dest)
}

// Set stores value under key for the given TTL.
func Set(key string, value interface{}, ttl time.Duration) error {
	return driver().Set(key, value, ttl)
}

// Del removes one or more keys.
func Del(keys ...string) error {
	return driver().Del(keys...)
}
