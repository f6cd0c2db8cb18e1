package messaging

import (
	"context"
	"encoding/xml"
	"errors"
	"net/http"
	"time"

	"github.com/hradek/salon-booking-ai/internal/observability/metrics"
	"github.com/hradek/salon-booking-ai/pkg/logging"
)

// ConversationHandler is the chat state machine the webhook feeds.
type ConversationHandler interface {
	Handle(ctx context.Context, identifier, text string) (string, error)
}

// Handler handles Twilio WhatsApp webhook requests and replies inline
// with TwiML.
type Handler struct {
	authToken string
	machine   ConversationHandler
	metrics   *metrics.ConversationMetrics
	logger    *logging.Logger
}

// NewHandler creates a new messaging handler. An empty authToken
// disables signature validation (local development only).
func NewHandler(authToken string, machine ConversationHandler, m *metrics.ConversationMetrics, logger *logging.Logger) *Handler {
	if machine == nil {
		panic("messaging: conversation handler cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		authToken: authToken,
		machine:   machine,
		metrics:   m,
		logger:    logger,
	}
}

type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message,omitempty"`
}

// WhatsAppWebhook handles POST /webhooks/whatsapp requests.
func (h *Handler) WhatsAppWebhook(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	if h.authToken != "" {
		if !ValidateTwilioSignature(r, h.authToken, buildAbsoluteURL(r)) {
			h.logger.Warn("invalid twilio signature")
			h.metrics.ObserveInbound("invalid_signature")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
	}

	webhook, err := ParseTwilioWebhook(r)
	if err != nil {
		h.logger.Error("failed to parse twilio webhook", "error", err)
		h.metrics.ObserveInbound("bad_request")
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	from := NormalizeIdentifier(webhook.From)
	if from == "" || webhook.Body == "" {
		err := errors.New("missing required twilio fields")
		h.logger.Error("invalid twilio payload", "error", err, "sid", webhook.MessageSid)
		h.metrics.ObserveInbound("bad_request")
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	reply, err := h.machine.Handle(r.Context(), from, webhook.Body)
	status := "ok"
	if err != nil {
		status = "error"
		h.logger.Error("conversation turn failed", "error", err, "from", from, "sid", webhook.MessageSid)
	}
	h.metrics.ObserveInbound(status)
	h.metrics.ObserveHandleLatency(status, time.Since(started).Seconds())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("whatsapp webhook handled", "from", from, "sid", webhook.MessageSid, "duration", time.Since(started))
	writeTwiML(w, reply)
}

func writeTwiML(w http.ResponseWriter, message string) {
	body, err := xml.Marshal(twimlResponse{Message: message})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(body)
}
