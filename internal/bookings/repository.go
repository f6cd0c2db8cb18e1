package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hradek/salon-booking-ai/internal/conversation"
)

type rowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository keeps a local record of every booking committed through
// the chat, independent of the scheduling backend.
type Repository struct {
	pool rowQuerier
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	if pool == nil {
		panic("bookings: pgx pool required")
	}
	return &Repository{pool: pool}
}

func newRepositoryWithExec(exec rowQuerier) *Repository {
	if exec == nil {
		panic("bookings: exec required")
	}
	return &Repository{pool: exec}
}

// RecordBooking inserts one confirmed booking row.
func (r *Repository) RecordBooking(ctx context.Context, rec conversation.BookingRecord) error {
	query := `
		INSERT INTO bookings (id, booking_id, identifier, venue_id, service_id, service_name, start_at, end_at, client_name, client_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	`
	_, err := r.pool.Exec(ctx, query,
		uuid.New(),
		rec.BookingID,
		rec.Identifier,
		rec.VenueID,
		rec.ServiceID,
		rec.ServiceName,
		rec.StartAt.UTC(),
		rec.EndAt.UTC(),
		rec.Name,
		rec.Email,
	)
	if err != nil {
		return fmt.Errorf("bookings: record: %w", err)
	}
	return nil
}

// CountSince reports how many bookings were committed after the cutoff,
// used by the ops status endpoint.
func (r *Repository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE created_at >= $1`
	var n int64
	if err := r.pool.QueryRow(ctx, query, since.UTC()).Scan(&n); err != nil {
		return 0, fmt.Errorf("bookings: count since: %w", err)
	}
	return n, nil
}
