package markets

import (
	"encoding/json"
	"fmt"
)

const (
	// CACHE_KEY_TOP_PREFIX is the prefix for the aggregated top coins entry
	CACHE_KEY_TOP_PREFIX = "markets:top:"

	// CACHE_KEY_PAGE_PREFIX is the prefix for single-page entries
	CACHE_KEY_PAGE_PREFIX = "markets:page:"
)

// topCacheKey builds the cache key for the full capped top coins set.
// The key depends on the configured maximum, not the requested limit.
func topCacheKey(maxCoins int) string {
	return fmt.Sprintf("%s%d", CACHE_KEY_TOP_PREFIX, maxCoins)
}

// pageCacheKey builds the cache key for one (page, per_page) combination
func pageCacheKey(page, perPage int) string {
	return fmt.Sprintf("%s%d:%d", CACHE_KEY_PAGE_PREFIX, page, perPage)
}

// marshalRecords serializes raw upstream records into one cacheable blob,
// preserving order. The round-trip through unmarshalRecords is lossless.
func marshalRecords(records [][]byte) ([]byte, error) {
	rawData := make([]json.RawMessage, 0, len(records))
	for _, record := range records {
		rawData = append(rawData, json.RawMessage(record))
	}

	data, err := json.Marshal(rawData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal records: %w", err)
	}
	return data, nil
}

// unmarshalRecords decodes a cached blob back into raw upstream records
func unmarshalRecords(data []byte) ([][]byte, error) {
	var rawData []json.RawMessage
	if err := json.Unmarshal(data, &rawData); err != nil {
		return nil, fmt.Errorf("failed to unmarshal records: %w", err)
	}

	records := make([][]byte, 0, len(rawData))
	for _, record := range rawData {
		records = append(records, []byte(record))
	}
	return records, nil
}
