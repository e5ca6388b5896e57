package markets

import (
	"encoding/json"
	"strings"
)

// Coin is the canonical, upstream-independent coin representation consumed
// by the rest of the application. Nullable fields stay nil when upstream
// omits them; id and name fall back to the empty string instead.
type Coin struct {
	Rank           *int     `json:"rank"`
	Symbol         string   `json:"symbol"`
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	PriceUSD       *float64 `json:"price_usd"`
	MarketCapUSD   *float64 `json:"market_cap_usd"`
	Change24hPct   *float64 `json:"change_24h_pct"`
	TotalVolumeUSD *float64 `json:"total_volume_usd"`
	LastUpdated    *string  `json:"last_updated"`
	ImageURL       *string  `json:"image_url"`
}

// NormalizeRecord maps one raw upstream record to the canonical shape.
// It is pure and total: missing or wrong-typed fields fall back to their
// defaults, the symbol is uppercased, timestamps pass through unparsed.
func NormalizeRecord(record map[string]interface{}) Coin {
	return Coin{
		Rank:           intField(record, "market_cap_rank"),
		Symbol:         strings.ToUpper(stringField(record, "symbol")),
		ID:             stringField(record, "id"),
		Name:           stringField(record, "name"),
		PriceUSD:       floatField(record, "current_price"),
		MarketCapUSD:   floatField(record, "market_cap"),
		Change24hPct:   floatField(record, "price_change_percentage_24h"),
		TotalVolumeUSD: floatField(record, "total_volume"),
		LastUpdated:    stringPtrField(record, "last_updated"),
		ImageURL:       stringPtrField(record, "image"),
	}
}

// NormalizeRecords parses raw JSON records and normalizes each one.
// Malformed entries are skipped, this can happen with real API responses.
func NormalizeRecords(records [][]byte) []Coin {
	coins := make([]Coin, 0, len(records))

	for _, raw := range records {
		var record map[string]interface{}
		if err := json.Unmarshal(raw, &record); err != nil {
			continue
		}
		coins = append(coins, NormalizeRecord(record))
	}

	return coins
}

// stringField extracts a string value, returning "" when absent or not a string
func stringField(record map[string]interface{}, key string) string {
	if value, ok := record[key].(string); ok {
		return value
	}
	return ""
}

// stringPtrField extracts an optional string value
func stringPtrField(record map[string]interface{}, key string) *string {
	if value, ok := record[key].(string); ok {
		return &value
	}
	return nil
}

// floatField extracts an optional numeric value.
// JSON numbers decode as float64.
func floatField(record map[string]interface{}, key string) *float64 {
	if value, ok := record[key].(float64); ok {
		return &value
	}
	return nil
}

// intField extracts an optional integer value
func intField(record map[string]interface{}, key string) *int {
	if value, ok := record[key].(float64); ok {
		intValue := int(value)
		return &intValue
	}
	return nil
}
