package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/hradek/salon-booking-ai/internal/conversation"
)

type failingRecorder struct{ err error }

func (f failingRecorder) RecordBooking(context.Context, conversation.BookingRecord) error {
	return f.err
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *ConversationMetrics
	m.ObserveInbound("ok")
	m.ObserveHandleLatency("ok", 0.1)
	m.ObserveBooking()
}

func TestInstrumentedRecorderCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewConversationMetrics(reg)

	rec := NewInstrumentedRecorder(failingRecorder{}, m)
	if err := rec.RecordBooking(context.Background(), conversation.BookingRecord{}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if got := testutil.ToFloat64(m.bookingsTotal); got != 1 {
		t.Fatalf("bookings counter = %v", got)
	}

	failing := NewInstrumentedRecorder(failingRecorder{err: errors.New("boom")}, m)
	if err := failing.RecordBooking(context.Background(), conversation.BookingRecord{}); err == nil {
		t.Fatal("expected error")
	}
	if got := testutil.ToFloat64(m.recorderFailure); got != 1 {
		t.Fatalf("failure counter = %v", got)
	}
}
