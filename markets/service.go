package markets

import (
	"fmt"
	"log"
	"time"

	"github.com/coinwatch/market-fetcher/cache"
	cg "github.com/coinwatch/market-fetcher/coingecko"
	"github.com/coinwatch/market-fetcher/config"
	"github.com/coinwatch/market-fetcher/metrics"
)

// Service is the acquisition facade: cache lookup first, then the
// aggregator or single-page fetcher on a miss, normalization on the way out
type Service struct {
	cache         cache.Cache
	config        *config.Config
	apiClient     APIClient
	metricsWriter *metrics.MetricsWriter
}

// NewService creates a new markets service with the given cache and configuration
func NewService(cache cache.Cache, cfg *config.Config) *Service {
	return &Service{
		cache:         cache,
		config:        cfg,
		apiClient:     NewCoinGeckoClient(cfg),
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceMarkets),
	}
}

// TopCoins returns the top `limit` coins by market cap, normalized.
// The cache stores the full capped aggregate under a limit-independent key,
// so different limits share one entry and slicing happens per request.
func (s *Service) TopCoins(limit int) ([]Coin, error) {
	maxCoins := s.config.Coingecko.GetMaxCoins()
	if limit < 1 || limit > maxCoins {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", cg.ErrInvalidArgument, maxCoins)
	}

	defer metrics.RecordFetchDuration(metrics.ServiceMarkets, "top", time.Now())

	loaded := false
	data, err := s.cache.GetOrLoad(topCacheKey(maxCoins), func() ([]byte, error) {
		loaded = true
		log.Printf("Markets: Cache miss for top coins, aggregating up to %d from CoinGecko", maxCoins)

		fetcher := NewPaginatedFetcher(s.apiClient, maxCoins, s.config.Coingecko.RequestDelay, cg.MarketsParams{
			PerPage: s.config.Coingecko.GetPerPage(),
		})
		records, err := fetcher.FetchData()
		if err != nil {
			return nil, err
		}
		return marshalRecords(records)
	}, s.config.Cache.GetTTL())
	if err != nil {
		return nil, err
	}
	s.recordCacheOutcome(loaded)

	records, err := unmarshalRecords(data)
	if err != nil {
		return nil, err
	}

	coins := NormalizeRecords(records)
	if len(coins) == 0 {
		return nil, cg.ErrNoData
	}

	if limit < len(coins) {
		coins = coins[:limit]
	}
	return coins, nil
}

// PageCoins returns exactly one upstream page, normalized. An empty page is
// a valid result, callers decide how to report "nothing found".
func (s *Service) PageCoins(page, perPage int) ([]Coin, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1", cg.ErrInvalidArgument)
	}
	if perPage < 1 || perPage > config.MAX_PER_PAGE {
		return nil, fmt.Errorf("%w: per_page must be between 1 and %d", cg.ErrInvalidArgument, config.MAX_PER_PAGE)
	}

	defer metrics.RecordFetchDuration(metrics.ServiceMarkets, "page", time.Now())

	loaded := false
	data, err := s.cache.GetOrLoad(pageCacheKey(page, perPage), func() ([]byte, error) {
		loaded = true
		log.Printf("Markets: Cache miss for page %d (per_page %d), fetching from CoinGecko", page, perPage)

		records, err := s.apiClient.FetchPage(cg.MarketsParams{
			Page:    page,
			PerPage: perPage,
		})
		if err != nil {
			return nil, err
		}
		return marshalRecords(records)
	}, s.config.Cache.GetTTL())
	if err != nil {
		return nil, err
	}
	s.recordCacheOutcome(loaded)

	records, err := unmarshalRecords(data)
	if err != nil {
		return nil, err
	}

	return NormalizeRecords(records), nil
}

// Healthy checks if the service is operational
func (s *Service) Healthy() bool {
	if s.apiClient != nil {
		return s.apiClient.Healthy()
	}
	return false
}

func (s *Service) recordCacheOutcome(loaded bool) {
	if loaded {
		s.metricsWriter.RecordCacheMiss()
	} else {
		s.metricsWriter.RecordCacheHit()
	}
}
