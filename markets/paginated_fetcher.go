package markets

import (
	"log"
	"time"

	cg "github.com/coinwatch/market-fetcher/coingecko"
	"github.com/coinwatch/market-fetcher/config"
)

// PaginatedFetcher aggregates market records across successive pages until
// a configured maximum is reached or upstream runs out of data
type PaginatedFetcher struct {
	apiClient    APIClient
	maxCoins     int
	requestDelay time.Duration // Delay between page requests
	params       cg.MarketsParams

	// sleep is replaceable so tests run without real waits
	sleep func(time.Duration)
}

// NewPaginatedFetcher creates a new paginated fetcher
func NewPaginatedFetcher(apiClient APIClient, maxCoins int, requestDelay time.Duration, params cg.MarketsParams) *PaginatedFetcher {
	if params.Currency == "" {
		params.Currency = "usd"
	}
	if params.Order == "" {
		params.Order = "market_cap_desc"
	}
	if params.PerPage <= 0 {
		params.PerPage = config.DEFAULT_PER_PAGE
	}

	return &PaginatedFetcher{
		apiClient:    apiClient,
		maxCoins:     maxCoins,
		requestDelay: requestDelay,
		params:       params,
		sleep:        time.Sleep,
	}
}

// FetchData fetches pages sequentially, accumulating records in upstream
// order, and truncates the result to exactly maxCoins. Pagination stops on
// an empty page. Page errors propagate as-is; retries happen one level
// down, inside the API client.
func (pf *PaginatedFetcher) FetchData() ([][]byte, error) {
	startTime := time.Now()
	allItems := make([][]byte, 0, pf.maxCoins)
	completedPages := 0
	page := 1

	for len(allItems) < pf.maxCoins {
		log.Printf("MarketsFetcher: Fetching page %d with limit %d", page, pf.params.PerPage)
		pageStartTime := time.Now()

		pageItems, err := pf.fetchSinglePage(page)
		if err != nil {
			log.Printf("MarketsFetcher: Error fetching page %d: %v", page, err)
			return nil, err
		}

		if len(pageItems) == 0 {
			log.Printf("MarketsFetcher: Got empty page %d, no more data available", page)
			break
		}

		allItems = append(allItems, pageItems...)
		completedPages++

		log.Printf("MarketsFetcher: Completed page %d with %d items in %.2fs, total items: %d",
			page, len(pageItems), time.Since(pageStartTime).Seconds(), len(allItems))

		if len(allItems) >= pf.maxCoins {
			allItems = allItems[:pf.maxCoins]
			break
		}

		page++
		pf.applyDelay()
	}

	pf.logSummary(startTime, allItems, completedPages)
	return allItems, nil
}

// fetchSinglePage fetches a single page of data using the API client
func (pf *PaginatedFetcher) fetchSinglePage(page int) ([][]byte, error) {
	params := pf.params
	params.Page = page

	return pf.apiClient.FetchPage(params)
}

// applyDelay waits between page requests; never called after the final page
func (pf *PaginatedFetcher) applyDelay() {
	if pf.requestDelay > 0 {
		log.Printf("MarketsFetcher: Waiting %.2fs before fetching next page", pf.requestDelay.Seconds())
		pf.sleep(pf.requestDelay)
	}
}

// logSummary logs a summary of the fetch operation
func (pf *PaginatedFetcher) logSummary(startTime time.Time, items [][]byte, completedPages int) {
	totalTime := time.Since(startTime)
	log.Printf("MarketsFetcher: Fetched %d items in %d pages (%.2fs)",
		len(items), completedPages, totalTime.Seconds())
}
