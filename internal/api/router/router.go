package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hradek/salon-booking-ai/internal/http/handlers"
	httpmiddleware "github.com/hradek/salon-booking-ai/internal/http/middleware"
	"github.com/hradek/salon-booking-ai/internal/messaging"
	"github.com/hradek/salon-booking-ai/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger           *logging.Logger
	MessagingHandler *messaging.Handler
	StatusHandler    *handlers.StatusHandler
	MetricsHandler   http.Handler
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	if cfg.StatusHandler != nil {
		r.Get("/health", cfg.StatusHandler.Health)
		r.Get("/status", cfg.StatusHandler.Status)
	}
	if cfg.MessagingHandler != nil {
		r.Post("/webhooks/whatsapp", cfg.MessagingHandler.WhatsAppWebhook)
	}
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}
