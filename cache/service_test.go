package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GetSet(t *testing.T) {
	service := NewService(DefaultConfig())

	service.Set("key1", []byte("value1"), 0)

	value, found := service.Get("key1")
	assert.True(t, found)
	assert.Equal(t, []byte("value1"), value)

	_, found = service.Get("missing")
	assert.False(t, found)
}

func TestService_GetOrLoad_MissInvokesLoader(t *testing.T) {
	service := NewService(DefaultConfig())

	loaderCalls := 0
	loader := func() ([]byte, error) {
		loaderCalls++
		return []byte("loaded"), nil
	}

	value, err := service.GetOrLoad("key1", loader, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []byte("loaded"), value)
	assert.Equal(t, 1, loaderCalls)

	// Second call served from cache, loader not invoked again
	value, err = service.GetOrLoad("key1", loader, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []byte("loaded"), value)
	assert.Equal(t, 1, loaderCalls)
}

func TestService_GetOrLoad_LoaderError(t *testing.T) {
	service := NewService(DefaultConfig())

	loaderErr := errors.New("upstream down")
	_, err := service.GetOrLoad("key1", func() ([]byte, error) {
		return nil, loaderErr
	}, time.Minute)

	require.Error(t, err)
	assert.ErrorIs(t, err, loaderErr)

	// Failed loads are not cached
	_, found := service.Get("key1")
	assert.False(t, found)
}

func TestService_GetOrLoad_TTLExpiry(t *testing.T) {
	service := NewService(DefaultConfig())

	loaderCalls := 0
	loader := func() ([]byte, error) {
		loaderCalls++
		return []byte("loaded"), nil
	}

	_, err := service.GetOrLoad("key1", loader, 30*time.Millisecond)
	require.NoError(t, err)
	_, err = service.GetOrLoad("key1", loader, 30*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 1, loaderCalls)

	time.Sleep(50 * time.Millisecond)

	_, err = service.GetOrLoad("key1", loader, 30*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 2, loaderCalls)
}

func TestService_Stats(t *testing.T) {
	service := NewService(DefaultConfig())

	service.Set("key1", []byte("value1"), 0)
	service.Set("key2", []byte("value2"), 0)

	assert.Equal(t, 2, service.Stats().Items)

	service.Clear()
	assert.Equal(t, 0, service.Stats().Items)
}
