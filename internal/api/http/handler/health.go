package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/response"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/logger"
)

const healthTimeout = 2 * time.Second

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Health serves liveness and readiness probes.
type Health struct {
	db     HealthChecker
	logger *logger.Logger
}

func NewHealth(db HealthChecker, logger *logger.Logger) *Health {
	return &Health{db: db, logger: logger}
}

func (h *Health) Root(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "API Running"})
}

func (h *Health) Ping(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]bool{"pong": true})
}

// Ready pings the database.
func (h *Health) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("Health handler: database ping failed",
			"error", err.Error())
		response.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "database": "down"})
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"status": "ok", "database": "up"})
}
