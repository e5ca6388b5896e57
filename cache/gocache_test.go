package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoCache_Basic(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)

	cache.Set("key1", []byte("value1"), 0)
	cache.Set("key2", []byte("value2"), 0)

	value, found := cache.Get("key1")
	assert.True(t, found)
	assert.Equal(t, []byte("value1"), value)

	value, found = cache.Get("key2")
	assert.True(t, found)
	assert.Equal(t, []byte("value2"), value)

	_, found = cache.Get("missing")
	assert.False(t, found)

	assert.Equal(t, 2, cache.ItemCount())
}

func TestGoCache_Overwrite(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)

	cache.Set("key1", []byte("old"), 0)
	cache.Set("key1", []byte("new"), 0)

	value, found := cache.Get("key1")
	assert.True(t, found)
	assert.Equal(t, []byte("new"), value)
	assert.Equal(t, 1, cache.ItemCount())
}

func TestGoCache_Delete(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)

	cache.Set("key1", []byte("value1"), 0)
	cache.Set("key2", []byte("value2"), 0)

	cache.Delete("key1")

	_, found := cache.Get("key1")
	assert.False(t, found)

	value, found := cache.Get("key2")
	assert.True(t, found)
	assert.Equal(t, []byte("value2"), value)
}

func TestGoCache_Clear(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)

	cache.Set("key1", []byte("value1"), 0)
	cache.Set("key2", []byte("value2"), 0)

	cache.Clear()

	assert.Equal(t, 0, cache.ItemCount())
	_, found := cache.Get("key1")
	assert.False(t, found)
}

func TestGoCache_Expiration(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)

	// Entry with a very short TTL
	cache.Set("short", []byte("value"), 30*time.Millisecond)
	cache.Set("long", []byte("value"), 5*time.Minute)

	_, found := cache.Get("short")
	assert.True(t, found)

	time.Sleep(50 * time.Millisecond)

	// Expired entry is treated as absent on read, no sweep needed
	_, found = cache.Get("short")
	assert.False(t, found)

	_, found = cache.Get("long")
	assert.True(t, found)
}

func TestGoCache_ConcurrentAccess(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				cache.Set("shared", []byte("value"), 0)
				cache.Get("shared")
			}
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	value, found := cache.Get("shared")
	assert.True(t, found)
	assert.Equal(t, []byte("value"), value)
}
