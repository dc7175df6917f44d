package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/WolfJourney_Go/internal/logger"
)

const readinessTimeout = 2 * time.Second

// Readiness statuses
const (
	StatusUnavailable = "unavailable"
	checkStorage      = "storage"
)

// HealthResponse is the body of /healthz and /readyz. Checks is only set by
// readiness and holds one entry per dependency probed.
type HealthResponse struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks,omitempty"`
}

// CheckResult is the outcome of pinging one dependency
type CheckResult struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
}

// Pinger is anything whose reachability gates readiness
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandleHealthz reports that the process is serving
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: MsgHealthOK})
	}
}

// HandleReadyz pings the storage backend
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		check, err := ping(ctx, store)
		resp := HealthResponse{Status: check.Status, Checks: map[string]CheckResult{checkStorage: check}}
		if err != nil {
			// the cause stays in the log, probes only see the status
			logger.FromContext(r.Context()).Error("Readiness check failed", "check", checkStorage, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func ping(ctx context.Context, p Pinger) (CheckResult, error) {
	start := time.Now()
	err := p.Ping(ctx)
	res := CheckResult{Status: MsgHealthOK, LatencyMS: time.Since(start).Milliseconds()}
	if err != nil {
		res.Status = StatusUnavailable
	}
	return res, err
}
