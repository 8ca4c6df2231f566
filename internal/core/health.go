package core

import (
	"net/http"
	"time"
)

// HealthResponse is the JSON response body for the health check endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	TS      int64  `json:"ts"`
}

// HandleHealth reports service liveness. There are no external dependencies
// to probe; the process being able to answer is the health signal. Always
// returns 200 with the service name and the current Unix timestamp.
//
// This endpoint is public and is mounted at GET /health.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	JSON(w, r, http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: s.Config.Service,
		TS:      time.Now().Unix(),
	})
}
