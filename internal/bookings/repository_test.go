package bookings

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"

	"github.com/hradek/salon-booking-ai/internal/conversation"
)

func TestRecordBooking(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgx mock: %v", err)
	}
	defer mock.Close()

	repo := newRepositoryWithExec(mock)

	start := time.Date(2025, 10, 2, 8, 0, 0, 0, time.UTC)
	rec := conversation.BookingRecord{
		BookingID:   "bk-1",
		Identifier:  "whatsapp:+420777000001",
		VenueID:     "v1",
		ServiceID:   "s1",
		ServiceName: "Haircut",
		StartAt:     start,
		EndAt:       start.Add(30 * time.Minute),
		Name:        "John Doe",
		Email:       "john@example.com",
	}

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(pgxmock.AnyArg(), "bk-1", "whatsapp:+420777000001", "v1", "s1", "Haircut", start, start.Add(30*time.Minute), "John Doe", "john@example.com").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := repo.RecordBooking(context.Background(), rec); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCountSince(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgx mock: %v", err)
	}
	defer mock.Close()

	repo := newRepositoryWithExec(mock)

	since := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WithArgs(since).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	n, err := repo.CountSince(context.Background(), since)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Fatalf("count = %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
