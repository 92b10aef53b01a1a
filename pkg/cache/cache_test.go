package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josbet/floreria/pkg/cache"
)

func init() {
	cache.UseMemory()
}

func TestSetGet(t *testing.T) {
	type payload struct {
		Name  string
		Count int
	}

	require.NoError(t, cache.Set("k1", payload{Name: "rosas", Count: 3}, time.Minute))

	var got payload
	require.True(t, cache.Get("k1", &got))
	assert.Equal(t, "rosas", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestGetMissingKey(t *testing.T) {
	var got string
	assert.False(t, cache.Get("does-not-exist", &got))
}

func TestDel(t *testing.T) {
	require.NoError(t, cache.Set("k2", "v", time.Minute))
	require.NoError(t, cache.Del("k2"))

	var got string
	assert.False(t, cache.Get("k2", &got))
}

func TestExpiry(t *testing.T) {
	require.NoError(t, cache.Set("k3", "v", 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	var got string
	assert.False(t, cache.Get("k3", &got), "expired key must not be returned")
}

func TestZeroTTLNeverExpires(t *testing.T) {
	require.NoError(t, cache.Set("k4", "v", 0))

	var got string
	require.True(t, cache.Get("k4", &got))
	assert.Equal(t, "v", got)
}
