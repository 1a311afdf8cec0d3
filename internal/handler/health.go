package handler

import (
	"net/http"

	"github.com/StanleyPangaruy/valorant-lootbox/internal/domain"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/logger"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// PoolProvider exposes the skin pool the service draws from
type PoolProvider interface {
	Pool() domain.SkinPool
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports ready only when the catalog produced at least one skin.
// The service still runs with an empty pool, but every draw is a no-op.
// @Summary Readiness check
// @Description Returns OK if the skin pool is populated
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(pools PoolProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pools.Pool().IsEmpty() {
			logger.FromContext(r.Context()).Warn("Readiness check failed", "reason", ErrMsgCatalogEmpty)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: ErrMsgCatalogEmpty,
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
