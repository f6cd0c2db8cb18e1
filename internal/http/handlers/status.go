package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/hradek/salon-booking-ai/pkg/logging"
)

// BookingCounter reports booking volume for the status endpoint.
type BookingCounter interface {
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

// StatusHandler serves liveness and a small ops status payload.
type StatusHandler struct {
	bookings BookingCounter
	started  time.Time
	logger   *logging.Logger
}

func NewStatusHandler(bookings BookingCounter, logger *logging.Logger) *StatusHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatusHandler{
		bookings: bookings,
		started:  time.Now(),
		logger:   logger,
	}
}

// Health handles GET /health.
func (h *StatusHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Status handles GET /status with uptime and last-24h booking volume.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	}
	if h.bookings != nil {
		n, err := h.bookings.CountSince(r.Context(), time.Now().Add(-24*time.Hour))
		if err != nil {
			h.logger.Error("booking count failed", "error", err)
			resp["bookings_24h"] = "unavailable"
		} else {
			resp["bookings_24h"] = n
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
