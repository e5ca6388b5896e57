package markets

import (
	"encoding/json"
	"log"
	"sync/atomic"

	"golang.org/x/time/rate"

	cg "github.com/coinwatch/market-fetcher/coingecko"
	"github.com/coinwatch/market-fetcher/config"
	"github.com/coinwatch/market-fetcher/metrics"
)

//go:generate mockgen -destination=mocks/client.go . APIClient

// APIClient defines interface for upstream markets API operations
type APIClient interface {
	// FetchPage fetches a single page of raw market records
	FetchPage(params cg.MarketsParams) ([][]byte, error)
	// Healthy checks if the API has had at least one successful fetch
	Healthy() bool
}

// CoinGeckoClient implements APIClient for CoinGecko
type CoinGeckoClient struct {
	config          *config.Config
	httpClient      *cg.HTTPClientWithRetries
	successfulFetch atomic.Bool // Flag indicating if at least one fetch was successful
}

// NewCoinGeckoClient creates a new CoinGecko API client
func NewCoinGeckoClient(cfg *config.Config) *CoinGeckoClient {
	retryOpts := cg.DefaultRetryOptions()
	retryOpts.LogPrefix = "CoinGecko"
	retryOpts.RetryDelay = cfg.Coingecko.RetryDelay
	retryOpts.RequestTimeout = cfg.Coingecko.GetRequestTimeout()

	var limiter *rate.Limiter
	if cfg.Coingecko.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Coingecko.RateLimitRPS), 1)
	}

	metricsWriter := metrics.NewMetricsWriter(metrics.ServiceMarkets)

	return &CoinGeckoClient{
		config:     cfg,
		httpClient: cg.NewHTTPClientWithRetries(retryOpts, metricsWriter, limiter),
	}
}

// Healthy checks if the API has had at least one successful fetch
func (c *CoinGeckoClient) Healthy() bool {
	return c.successfulFetch.Load()
}

// apiBaseURL returns the upstream base URL, honoring the config override
func (c *CoinGeckoClient) apiBaseURL() string {
	if c.config.Coingecko.OverridePublicURL != "" {
		return c.config.Coingecko.OverridePublicURL
	}
	return cg.COINGECKO_PUBLIC_URL
}

// FetchPage fetches a single page of market records with retry capability
func (c *CoinGeckoClient) FetchPage(params cg.MarketsParams) ([][]byte, error) {
	requestBuilder := NewMarketsRequestBuilder(c.apiBaseURL()).
		WithPage(params.Page).
		WithPerPage(params.PerPage).
		WithOrder(params.Order)

	requestBuilder.
		WithCurrency(params.Currency).
		WithApiKey(c.config.Coingecko.APIKey)

	request, err := requestBuilder.Build()
	if err != nil {
		log.Printf("CoinGecko: Error building request: %v", err)
		return nil, err
	}

	body, err := c.httpClient.ExecuteRequest(request)
	if err != nil {
		return nil, err
	}

	// Parse the response as array of RawMessage
	var rawData []json.RawMessage
	if err := json.Unmarshal(body, &rawData); err != nil {
		log.Printf("CoinGecko: Error parsing JSON response: %v", err)
		return nil, err
	}

	records := make([][]byte, 0, len(rawData))
	for _, record := range rawData {
		records = append(records, []byte(record))
	}

	log.Printf("CoinGecko: Successfully processed page %d with %d items",
		params.Page, len(records))

	c.successfulFetch.Store(true)

	return records, nil
}
