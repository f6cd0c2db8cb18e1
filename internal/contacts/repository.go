package contacts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hradek/salon-booking-ai/internal/conversation"
)

type rowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository persists the name and email a user confirmed a booking
// with, keyed by their messaging identifier.
type Repository struct {
	pool rowQuerier
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	if pool == nil {
		panic("contacts: pgx pool required")
	}
	return &Repository{pool: pool}
}

func newRepositoryWithExec(exec rowQuerier) *Repository {
	if exec == nil {
		panic("contacts: exec required")
	}
	return &Repository{pool: exec}
}

// SaveContact upserts the contact for an identifier. The latest booking
// wins.
func (r *Repository) SaveContact(ctx context.Context, identifier, name, email string) error {
	query := `
		INSERT INTO contacts (identifier, name, email, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (identifier)
		DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email, updated_at = NOW()
	`
	if _, err := r.pool.Exec(ctx, query, identifier, name, email); err != nil {
		return fmt.Errorf("contacts: save: %w", err)
	}
	return nil
}

// LookupContact returns the stored contact, or nil when the identifier
// has never completed a booking.
func (r *Repository) LookupContact(ctx context.Context, identifier string) (*conversation.SavedContact, error) {
	query := `SELECT name, email FROM contacts WHERE identifier = $1`
	var c conversation.SavedContact
	if err := r.pool.QueryRow(ctx, query, identifier).Scan(&c.Name, &c.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("contacts: lookup: %w", err)
	}
	return &c, nil
}
