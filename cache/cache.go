package cache

import "time"

// LoaderFunc defines a function for loading the value of a key that is
// missing from the cache.
type LoaderFunc func() ([]byte, error)

// Cache interface for a TTL-bounded key/value cache
type Cache interface {
	// Get retrieves the value for a key
	//
	// Returns:
	// - []byte: the cached value
	// - bool: whether a fresh entry was found
	Get(key string) ([]byte, bool)

	// Set stores a value with the specified TTL
	// If ttl is 0, the cache's default expiration is used
	Set(key string, value []byte, ttl time.Duration)

	// GetOrLoad retrieves the value for a key from the cache or loads it
	// using the loader and stores the result with the specified TTL
	//
	// Returns:
	// - []byte: the cached or freshly loaded value
	// - error: loader execution error
	GetOrLoad(key string, loader LoaderFunc, ttl time.Duration) ([]byte, error)

	// Delete removes an entry from the cache
	Delete(key string)
}
