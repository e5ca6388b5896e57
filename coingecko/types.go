package coingecko

const (
	// Base URL for the public API
	COINGECKO_PUBLIC_URL = "https://api.coingecko.com"
)

// MarketsParams holds query parameters for one page of the markets listing
type MarketsParams struct {
	Currency string // vs_currency, defaults to "usd"
	Order    string // defaults to "market_cap_desc"
	Page     int
	PerPage  int
}
