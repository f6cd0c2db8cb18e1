package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hradek/salon-booking-ai/internal/conversation"
)

// ConversationMetrics exposes counters/histograms for the chat flow.
type ConversationMetrics struct {
	inboundTotal    *prometheus.CounterVec
	handleLatency   *prometheus.HistogramVec
	bookingsTotal   prometheus.Counter
	recorderFailure prometheus.Counter
}

func NewConversationMetrics(reg prometheus.Registerer) *ConversationMetrics {
	m := &ConversationMetrics{
		inboundTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salonbot",
			Subsystem: "messaging",
			Name:      "inbound_webhook_total",
			Help:      "Total inbound WhatsApp webhooks",
		}, []string{"status"}),
		handleLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "salonbot",
			Subsystem: "conversation",
			Name:      "handle_latency_seconds",
			Help:      "Latency of conversation turn processing",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
		bookingsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "salonbot",
			Subsystem: "conversation",
			Name:      "bookings_confirmed_total",
			Help:      "Total bookings committed through the chat",
		}),
		recorderFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "salonbot",
			Subsystem: "conversation",
			Name:      "booking_record_failures_total",
			Help:      "Failures persisting local booking records",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.inboundTotal, m.handleLatency, m.bookingsTotal, m.recorderFailure)
	return m
}

func (m *ConversationMetrics) ObserveInbound(status string) {
	if m == nil {
		return
	}
	m.inboundTotal.WithLabelValues(status).Inc()
}

func (m *ConversationMetrics) ObserveHandleLatency(status string, seconds float64) {
	if m == nil {
		return
	}
	m.handleLatency.WithLabelValues(status).Observe(seconds)
}

func (m *ConversationMetrics) ObserveBooking() {
	if m == nil {
		return
	}
	m.bookingsTotal.Inc()
}

// InstrumentedRecorder decorates a BookingRecorder with booking
// counters.
type InstrumentedRecorder struct {
	next    conversation.BookingRecorder
	metrics *ConversationMetrics
}

func NewInstrumentedRecorder(next conversation.BookingRecorder, m *ConversationMetrics) *InstrumentedRecorder {
	return &InstrumentedRecorder{next: next, metrics: m}
}

func (r *InstrumentedRecorder) RecordBooking(ctx context.Context, rec conversation.BookingRecord) error {
	r.metrics.ObserveBooking()
	if r.next == nil {
		return nil
	}
	if err := r.next.RecordBooking(ctx, rec); err != nil {
		if r.metrics != nil {
			r.metrics.recorderFailure.Inc()
		}
		return err
	}
	return nil
}
