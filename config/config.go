package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coinwatch/market-fetcher/cache"
)

type Config struct {
	Port      string          `yaml:"port"`
	Coingecko CoingeckoConfig `yaml:"coingecko"`
	Cache     cache.Config    `yaml:"cache"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// DefaultConfig returns a configuration populated with defaults,
// suitable as the base for yaml overrides
func DefaultConfig() *Config {
	return &Config{
		Port:      "8080",
		Coingecko: DefaultCoingeckoConfig(),
		Cache:     cache.DefaultConfig(),
	}
}

func (c *Config) Validate() error {
	if err := c.Coingecko.Validate(); err != nil {
		return fmt.Errorf("coingecko configuration validation failed: %w", err)
	}
	return nil
}
