package config

import (
	"fmt"
	"time"
)

const (
	DEFAULT_PER_PAGE  = 250
	DEFAULT_MAX_COINS = 1000

	// MAX_PER_PAGE is CoinGecko's API maximum per_page value
	MAX_PER_PAGE = 250
)

// CoingeckoConfig configures the upstream CoinGecko markets fetcher
type CoingeckoConfig struct {
	// OverridePublicURL replaces the public API base URL, used in tests
	// and when routing through a local proxy
	OverridePublicURL string `yaml:"override_public_url"`

	// APIKey optional demo API key appended to requests
	APIKey string `yaml:"api_key"`

	// PerPage page size used when aggregating top coins
	PerPage int `yaml:"per_page"`

	// MaxCoins hard cap on the aggregated top coins set
	MaxCoins int `yaml:"max_coins"`

	// RetryDelay base backoff after an upstream 429; the wait grows
	// linearly with the attempt number
	RetryDelay time.Duration `yaml:"retry_delay"`

	// RequestDelay delay between successive page requests
	RequestDelay time.Duration `yaml:"request_delay"`

	// RequestTimeout total timeout for a single request attempt
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// RateLimitRPS client-side requests per second; 0 disables pacing
	RateLimitRPS float64 `yaml:"rate_limit_rps"`
}

func DefaultCoingeckoConfig() CoingeckoConfig {
	return CoingeckoConfig{
		PerPage:        DEFAULT_PER_PAGE,
		MaxCoins:       DEFAULT_MAX_COINS,
		RetryDelay:     15 * time.Second,
		RequestDelay:   5 * time.Second,
		RequestTimeout: 30 * time.Second,
	}
}

func (c *CoingeckoConfig) Validate() error {
	if c.PerPage < 1 || c.PerPage > MAX_PER_PAGE {
		return fmt.Errorf("per_page must be between 1 and %d, got %d", MAX_PER_PAGE, c.PerPage)
	}
	if c.MaxCoins < 1 {
		return fmt.Errorf("max_coins must be greater than 0, got %d", c.MaxCoins)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry_delay cannot be negative")
	}
	if c.RequestDelay < 0 {
		return fmt.Errorf("request_delay cannot be negative")
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("rate_limit_rps cannot be negative")
	}
	return nil
}

func (c *CoingeckoConfig) GetPerPage() int {
	if c.PerPage > 0 {
		return c.PerPage
	}
	return DEFAULT_PER_PAGE
}

func (c *CoingeckoConfig) GetMaxCoins() int {
	if c.MaxCoins > 0 {
		return c.MaxCoins
	}
	return DEFAULT_MAX_COINS
}

func (c *CoingeckoConfig) GetRequestTimeout() time.Duration {
	if c.RequestTimeout > 0 {
		return c.RequestTimeout
	}
	return 30 * time.Second
}
