package coingecko

import (
	"errors"
	"fmt"
)

// Classified failure conditions surfaced by the acquisition pipeline.
// Every failure is a returned value; nothing here terminates the process.
var (
	// ErrInvalidArgument caller-supplied pagination parameters out of range
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrRateLimitExceeded upstream 429 persisting past all retries
	ErrRateLimitExceeded = errors.New("CoinGecko API rate limit exceeded, please try again later")

	// ErrUpstreamUnavailable network-level failures persisting past retries
	ErrUpstreamUnavailable = errors.New("failed to fetch data from CoinGecko")

	// ErrNoData upstream returned zero records for a request expecting at least one
	ErrNoData = errors.New("no cryptocurrency data found")
)

// HTTPError represents a non-429 upstream HTTP error with its status preserved
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.Status, e.Message)
}
