package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/hradek/salon-booking-ai/internal/http/handlers"
	"github.com/hradek/salon-booking-ai/internal/messaging"
	"github.com/hradek/salon-booking-ai/pkg/logging"
)

type echoMachine struct{}

func (echoMachine) Handle(_ context.Context, _, text string) (string, error) {
	return "echo: " + text, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.Default()
	messagingHandler := messaging.NewHandler("", echoMachine{}, nil, logger)

	return New(&Config{
		Logger:           logger,
		MessagingHandler: messagingHandler,
		StatusHandler:    handlers.NewStatusHandler(nil, logger),
	})
}

func TestRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", resp["status"])
	}
}

func TestRouterWebhookRoute(t *testing.T) {
	router := newTestRouter(t)

	form := url.Values{
		"MessageSid": {"SM1"},
		"From":       {"whatsapp:+420777000001"},
		"To":         {"whatsapp:+420111222333"},
		"Body":       {"hi"},
	}
	req := httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "echo: hi") {
		t.Fatalf("body = %s", rr.Body.String())
	}
}

func TestRouterUnknownRouteIs404(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
