package cache

import (
	"fmt"
	"time"
)

// Service implements Cache interface with go-cache as the backing store
type Service struct {
	goCache *GoCache
	config  Config
}

// NewService creates a new cache service with the given configuration
func NewService(config Config) *Service {
	return &Service{
		goCache: NewGoCache(config.GetTTL(), config.GetCleanupInterval()),
		config:  config,
	}
}

// Get retrieves the value for a key from the local cache
func (s *Service) Get(key string) ([]byte, bool) {
	return s.goCache.Get(key)
}

// Set stores a value with the specified TTL
func (s *Service) Set(key string, value []byte, ttl time.Duration) {
	s.goCache.Set(key, value, ttl)
}

// GetOrLoad retrieves the value for a key or loads it using the loader.
// Same-key races resolve last-write-wins; concurrent loads for the same
// missing key may each invoke the loader.
func (s *Service) GetOrLoad(key string, loader LoaderFunc, ttl time.Duration) ([]byte, error) {
	if value, found := s.goCache.Get(key); found {
		return value, nil
	}

	value, err := loader()
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	s.goCache.Set(key, value, ttl)
	return value, nil
}

// Delete removes an entry from the cache
func (s *Service) Delete(key string) {
	s.goCache.Delete(key)
}

// Clear removes all items from the cache
func (s *Service) Clear() {
	s.goCache.Clear()
}

// Stats returns statistics about the cache service
func (s *Service) Stats() ServiceStats {
	return ServiceStats{
		Items: s.goCache.ItemCount(),
	}
}

// ServiceStats represents cache service statistics
type ServiceStats struct {
	Items int // Number of items in the backing store
}
