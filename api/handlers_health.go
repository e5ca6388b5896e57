package api

import (
	"net/http"
)

// handleRoot responds with a short service description
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.sendJSONResponse(w, map[string]interface{}{
		"message": "Market fetcher is running",
		"endpoints": map[string][]string{
			"crypto": {"/cryptos", "/cryptos/top/{limit}"},
		},
	})
}

// handleHealth responds with 200 OK to indicate the service is running
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status": "ok",
		"services": map[string]string{
			"markets": "unknown",
		},
	}

	if s.marketsService.Healthy() {
		status["services"].(map[string]string)["markets"] = "up"
	}

	s.sendJSONResponse(w, status)
}
