package cache

import "time"

// Config represents cache configuration
type Config struct {
	// TTL time to live for cached entries; entries older than this are
	// treated as absent on read
	TTL time.Duration `yaml:"ttl"`

	// CleanupInterval interval for the backing store's purge of expired
	// items; expiration itself is always judged on read
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{
		TTL:             60 * time.Second,
		CleanupInterval: 5 * time.Minute,
	}
}

func (c *Config) GetTTL() time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}
	return 60 * time.Second
}

func (c *Config) GetCleanupInterval() time.Duration {
	if c.CleanupInterval > 0 {
		return c.CleanupInterval
	}
	return 5 * time.Minute
}
