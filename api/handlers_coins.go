package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/coinwatch/market-fetcher/coingecko"
	"github.com/coinwatch/market-fetcher/markets"
)

const (
	DEFAULT_PAGE     = 1
	DEFAULT_PER_PAGE = 10
	DEFAULT_LIMIT    = 100

	// ESTIMATED_TOTAL is used for pagination metadata; the upstream
	// listing holds roughly this many ranked coins
	ESTIMATED_TOTAL = 1000
)

// CryptoResponse is the envelope returned by the /cryptos endpoints
type CryptoResponse struct {
	Coins       []markets.Coin `json:"coins"`
	TotalCount  int            `json:"total_count"`
	LastUpdated string         `json:"last_updated"`
	Page        int            `json:"page"`
	PerPage     int            `json:"per_page"`
	TotalPages  int            `json:"total_pages"`
	HasNext     bool           `json:"has_next"`
	HasPrev     bool           `json:"has_prev"`
}

// handleGetCryptos serves one page of the coin listing
func (s *Server) handleGetCryptos(w http.ResponseWriter, r *http.Request) {
	page := queryIntParam(r, "page", DEFAULT_PAGE)
	perPage := queryIntParam(r, "per_page", DEFAULT_PER_PAGE)

	coins, err := s.marketsService.PageCoins(page, perPage)
	if err != nil {
		s.sendServiceError(w, err)
		return
	}

	if len(coins) == 0 {
		http.Error(w, "No cryptocurrency data found for the requested page", http.StatusNotFound)
		return
	}

	totalPages := (ESTIMATED_TOTAL + perPage - 1) / perPage

	s.sendJSONResponse(w, CryptoResponse{
		Coins:       coins,
		TotalCount:  len(coins),
		LastUpdated: latestUpdate(coins),
		Page:        page,
		PerPage:     perPage,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	})
}

// handleGetTopCryptos serves the top N coins by market cap
func (s *Server) handleGetTopCryptos(w http.ResponseWriter, r *http.Request) {
	limit := DEFAULT_LIMIT
	if limitParam := mux.Vars(r)["limit"]; limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil {
			http.Error(w, "Limit must be an integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	if limit <= 0 || limit > ESTIMATED_TOTAL {
		http.Error(w, fmt.Sprintf("Limit must be between 1 and %d", ESTIMATED_TOTAL), http.StatusBadRequest)
		return
	}

	coins, err := s.marketsService.TopCoins(limit)
	if err != nil {
		s.sendServiceError(w, err)
		return
	}

	s.sendJSONResponse(w, CryptoResponse{
		Coins:       coins,
		TotalCount:  len(coins),
		LastUpdated: latestUpdate(coins),
		Page:        1,
		PerPage:     DEFAULT_PER_PAGE,
		TotalPages:  1,
	})
}

// sendServiceError maps classified pipeline errors onto HTTP statuses
func (s *Server) sendServiceError(w http.ResponseWriter, err error) {
	var httpErr *coingecko.HTTPError

	switch {
	case errors.Is(err, coingecko.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, coingecko.ErrRateLimitExceeded):
		http.Error(w, coingecko.ErrRateLimitExceeded.Error(), http.StatusTooManyRequests)
	case errors.Is(err, coingecko.ErrNoData):
		http.Error(w, coingecko.ErrNoData.Error(), http.StatusNotFound)
	case errors.As(err, &httpErr):
		// Preserve the upstream status
		http.Error(w, httpErr.Error(), httpErr.Status)
	case errors.Is(err, coingecko.ErrUpstreamUnavailable):
		http.Error(w, coingecko.ErrUpstreamUnavailable.Error(), http.StatusInternalServerError)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// latestUpdate returns the most recent last_updated timestamp across coins.
// ISO-8601 timestamps compare correctly as strings.
func latestUpdate(coins []markets.Coin) string {
	latest := ""
	for _, coin := range coins {
		if coin.LastUpdated != nil && *coin.LastUpdated > latest {
			latest = *coin.LastUpdated
		}
	}
	return latest
}
