package reservio

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetServices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/businesses/biz_1/services" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer key" {
			t.Fatalf("unexpected auth header: %s", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "svc_1", "type": "service", "attributes": map[string]any{"name": "Haircut", "duration": 1800}},
				{"id": "svc_2", "type": "service", "attributes": map[string]any{"name": "Beard trim", "duration": 900}},
			},
		})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "key", 0, nil)
	services, err := c.GetServices(context.Background(), "biz_1")
	if err != nil {
		t.Fatalf("GetServices error: %v", err)
	}
	if len(services) != 2 {
		t.Fatalf("unexpected services: %+v", services)
	}
	if services[0].Name != "Haircut" || services[0].Duration != 30*time.Minute {
		t.Fatalf("unexpected first service: %+v", services[0])
	}
}

func TestGetServices_MalformedEntry(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": "", "type": "service", "attributes": map[string]any{"name": ""}}},
		})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "key", 0, nil)
	if _, err := c.GetServices(context.Background(), "biz_1"); err == nil {
		t.Fatal("expected error for malformed service entry")
	}
}

func TestGetSlots(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("filter[serviceId]") != "svc_1" {
			t.Fatalf("missing serviceId filter: %v", q)
		}
		if q.Get("filter[from]") == "" || q.Get("filter[to]") == "" {
			t.Fatalf("missing time window filters: %v", q)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "sl_1", "type": "slot", "attributes": map[string]any{
					"start": "2026-09-01T09:00:00Z", "end": "2026-09-01T09:30:00Z",
				}},
			},
		})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "key", 0, nil)
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	slots, err := c.GetSlots(context.Background(), "biz_1", "svc_1", from, from.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("GetSlots error: %v", err)
	}
	if len(slots) != 1 || !slots[0].Start.Equal(time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected slots: %+v", slots)
	}
}

func TestGetSlots_ResourceFilter(t *testing.T) {
	var gotResource string
	var hasResource bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotResource = q.Get("filter[resourceId]")
		hasResource = q.Has("filter[resourceId]")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{}})
	}))
	defer ts.Close()

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	c := NewClient(ts.URL, "key", 0, nil)
	c.ResourceID = "res_7"
	if _, err := c.GetSlots(context.Background(), "biz_1", "svc_1", from, from.Add(time.Hour)); err != nil {
		t.Fatalf("GetSlots error: %v", err)
	}
	if gotResource != "res_7" {
		t.Fatalf("expected resourceId filter res_7, got %q", gotResource)
	}

	c.ResourceID = ""
	if _, err := c.GetSlots(context.Background(), "biz_1", "svc_1", from, from.Add(time.Hour)); err != nil {
		t.Fatalf("GetSlots error: %v", err)
	}
	if hasResource {
		t.Fatal("expected no resourceId filter when unconfigured")
	}
}

func TestGetSlots_MalformedTimestampFailsHard(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "sl_1", "type": "slot", "attributes": map[string]any{"start": "not-a-time", "end": "also-not"}},
			},
		})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "key", 0, nil)
	if _, err := c.GetSlots(context.Background(), "biz_1", "svc_1", time.Now(), time.Now().Add(time.Hour)); err == nil {
		t.Fatal("expected error for malformed slot timestamp")
	}
}

func TestCreateBooking(t *testing.T) {
	var captured map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/businesses/biz_1/bookings" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"id": "bk_1", "type": "booking", "attributes": map[string]any{"status": "confirmed"}},
		})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "key", 0, nil)
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	booking, err := c.CreateBooking(context.Background(), CreateBookingRequest{
		BusinessID:  "biz_1",
		ServiceID:   "svc_1",
		Slot:        Slot{Start: start, End: start.Add(30 * time.Minute)},
		ClientName:  "Jana Novakova",
		ClientEmail: "jana@example.com",
		ClientPhone: "+420777123456",
	})
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}
	if booking.ID != "bk_1" || booking.Status != "confirmed" {
		t.Fatalf("unexpected booking: %+v", booking)
	}

	data := captured["data"].(map[string]any)
	attrs := data["attributes"].(map[string]any)
	if attrs["bookedClientName"] != "Jana Novakova" || attrs["via"] != "application" {
		t.Fatalf("unexpected booking attributes: %+v", attrs)
	}
	rels := data["relationships"].(map[string]any)
	event := rels["event"].(map[string]any)["data"].(map[string]any)
	eventAttrs := event["attributes"].(map[string]any)
	if eventAttrs["eventType"] != "appointment" {
		t.Fatalf("unexpected event attributes: %+v", eventAttrs)
	}
}

func TestCreateBooking_Conflict(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"title":"slot taken"}]}`, http.StatusConflict)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "key", 0, nil)
	_, err := c.CreateBooking(context.Background(), CreateBookingRequest{BusinessID: "biz_1", ServiceID: "svc_1"})
	if !errors.Is(err, ErrBookingRejected) {
		t.Fatalf("expected ErrBookingRejected, got %v", err)
	}
}

func TestServerErrorIsUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "key", 0, nil)
	if _, err := c.GetBusiness(context.Background(), "biz_1"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestGetBusiness(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"id":   "biz_1",
				"type": "business",
				"attributes": map[string]any{
					"name":  "Salon U Mostu",
					"phone": "+420222333444",
					"email": "info@salonumostu.cz",
					"address": map[string]any{
						"street": "Mostecka 21", "city": "Praha", "zip": "11800",
					},
				},
			},
		})
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "key", 0, nil)
	biz, err := c.GetBusiness(context.Background(), "biz_1")
	if err != nil {
		t.Fatalf("GetBusiness error: %v", err)
	}
	if biz.Name != "Salon U Mostu" {
		t.Fatalf("unexpected business: %+v", biz)
	}
	if biz.Address != "Mostecka 21, Praha, 11800" {
		t.Fatalf("unexpected address: %q", biz.Address)
	}
}
