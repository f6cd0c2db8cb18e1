package messaging

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

type fakeMachine struct {
	reply      string
	err        error
	identifier string
	text       string
}

func (f *fakeMachine) Handle(_ context.Context, identifier, text string) (string, error) {
	f.identifier = identifier
	f.text = text
	return f.reply, f.err
}

func postWebhook(t *testing.T, h *Handler, form url.Values, sign string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "https://bot.example/webhooks/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if sign != "" {
		req.Header.Set("X-Twilio-Signature", sign)
	}
	rec := httptest.NewRecorder()
	h.WhatsAppWebhook(rec, req)
	return rec
}

func defaultForm() url.Values {
	return url.Values{
		"MessageSid": {"SM123"},
		"AccountSid": {"AC123"},
		"From":       {"whatsapp:+420 777 000 001"},
		"To":         {"whatsapp:+420111222333"},
		"Body":       {"hi"},
	}
}

func TestWebhookRepliesWithTwiML(t *testing.T) {
	machine := &fakeMachine{reply: "Welcome to Salon Demo! What service would you like?"}
	h := NewHandler("", machine, nil, nil)

	rec := postWebhook(t, h, defaultForm(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/xml" {
		t.Fatalf("content type = %s", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<Response><Message>Welcome to Salon Demo! What service would you like?</Message></Response>") {
		t.Fatalf("body = %s", body)
	}
	if machine.identifier != "whatsapp:+420777000001" {
		t.Fatalf("identifier = %s", machine.identifier)
	}
	if machine.text != "hi" {
		t.Fatalf("text = %s", machine.text)
	}
}

func TestWebhookEscapesReply(t *testing.T) {
	machine := &fakeMachine{reply: "Times shown in <Europe/Prague> & UTC"}
	h := NewHandler("", machine, nil, nil)

	rec := postWebhook(t, h, defaultForm(), "")
	body := rec.Body.String()
	if !strings.Contains(body, "&lt;Europe/Prague&gt; &amp; UTC") {
		t.Fatalf("reply not escaped: %s", body)
	}
}

func TestWebhookRejectsMissingFields(t *testing.T) {
	machine := &fakeMachine{reply: "ok"}
	h := NewHandler("", machine, nil, nil)

	form := defaultForm()
	form.Del("Body")
	rec := postWebhook(t, h, form, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestWebhookMachineErrorIs500(t *testing.T) {
	machine := &fakeMachine{err: errors.New("redis down")}
	h := NewHandler("", machine, nil, nil)

	rec := postWebhook(t, h, defaultForm(), "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestWebhookSignatureValidation(t *testing.T) {
	machine := &fakeMachine{reply: "ok"}
	h := NewHandler("secret-token", machine, nil, nil)

	// No signature header at all.
	rec := postWebhook(t, h, defaultForm(), "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}

	// A correctly computed signature passes.
	form := defaultForm()
	payload := buildSignaturePayload("https://bot.example/webhooks/whatsapp", form)
	rec = postWebhook(t, h, form, computeSignature(payload, "secret-token"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}

	// A signature computed with the wrong token fails.
	rec = postWebhook(t, h, form, computeSignature(payload, "wrong-token"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestNormalizeIdentifier(t *testing.T) {
	cases := []struct{ in, want string }{
		{"whatsapp:+420 777 000 001", "whatsapp:+420777000001"},
		{"whatsapp:+420777000001", "whatsapp:+420777000001"},
		{"+1 (555) 123-4567", "+15551234567"},
		{"", ""},
		{"whatsapp:", ""},
	}
	for _, tc := range cases {
		if got := NormalizeIdentifier(tc.in); got != tc.want {
			t.Errorf("NormalizeIdentifier(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
