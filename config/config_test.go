package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)

	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	return tmpfile.Name()
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 250, cfg.Coingecko.PerPage)
	assert.Equal(t, 1000, cfg.Coingecko.MaxCoins)
	assert.Equal(t, 15*time.Second, cfg.Coingecko.RetryDelay)
	assert.Equal(t, 5*time.Second, cfg.Coingecko.RequestDelay)
	assert.Equal(t, 30*time.Second, cfg.Coingecko.RequestTimeout)
	assert.Equal(t, 60*time.Second, cfg.Cache.TTL)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeTestConfig(t, `
port: "9090"
coingecko:
  override_public_url: "http://localhost:8545"
  per_page: 100
  max_coins: 500
  retry_delay: 1s
  request_delay: 0s
cache:
  ttl: 5s
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://localhost:8545", cfg.Coingecko.OverridePublicURL)
	assert.Equal(t, 100, cfg.Coingecko.PerPage)
	assert.Equal(t, 500, cfg.Coingecko.MaxCoins)
	assert.Equal(t, 1*time.Second, cfg.Coingecko.RetryDelay)
	assert.Equal(t, time.Duration(0), cfg.Coingecko.RequestDelay)
	assert.Equal(t, 5*time.Second, cfg.Cache.TTL)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeTestConfig(t, `
coingecko:
  max_coins: 200
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.Coingecko.MaxCoins)
	// Untouched fields keep their defaults
	assert.Equal(t, 250, cfg.Coingecko.PerPage)
	assert.Equal(t, 15*time.Second, cfg.Coingecko.RetryDelay)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("nonexistent.yaml")
	assert.Error(t, err)
}

func TestLoadConfig_InvalidPerPage(t *testing.T) {
	path := writeTestConfig(t, `
coingecko:
  per_page: 300
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "per_page")
}

func TestCoingeckoConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CoingeckoConfig)
		wantErr bool
	}{
		{"defaults valid", func(c *CoingeckoConfig) {}, false},
		{"per_page zero", func(c *CoingeckoConfig) { c.PerPage = 0 }, true},
		{"per_page above max", func(c *CoingeckoConfig) { c.PerPage = 251 }, true},
		{"max_coins zero", func(c *CoingeckoConfig) { c.MaxCoins = 0 }, true},
		{"negative retry_delay", func(c *CoingeckoConfig) { c.RetryDelay = -time.Second }, true},
		{"negative rate_limit_rps", func(c *CoingeckoConfig) { c.RateLimitRPS = -1 }, true},
		{"zero request_delay valid", func(c *CoingeckoConfig) { c.RequestDelay = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCoingeckoConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCoingeckoConfig_Getters(t *testing.T) {
	cfg := CoingeckoConfig{}

	assert.Equal(t, 250, cfg.GetPerPage())
	assert.Equal(t, 1000, cfg.GetMaxCoins())
	assert.Equal(t, 30*time.Second, cfg.GetRequestTimeout())
}
