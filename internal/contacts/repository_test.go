package contacts

import (
	"context"
	"testing"

	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
)

func TestSaveAndLookupContact(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgx mock: %v", err)
	}
	defer mock.Close()

	repo := newRepositoryWithExec(mock)

	mock.ExpectExec("INSERT INTO contacts").
		WithArgs("whatsapp:+420777000001", "John Doe", "john@example.com").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	if err := repo.SaveContact(context.Background(), "whatsapp:+420777000001", "John Doe", "john@example.com"); err != nil {
		t.Fatalf("save: %v", err)
	}

	mock.ExpectQuery("SELECT name, email FROM contacts").
		WithArgs("whatsapp:+420777000001").
		WillReturnRows(pgxmock.NewRows([]string{"name", "email"}).AddRow("John Doe", "john@example.com"))
	c, err := repo.LookupContact(context.Background(), "whatsapp:+420777000001")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if c == nil || c.Name != "John Doe" || c.Email != "john@example.com" {
		t.Fatalf("contact = %+v", c)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLookupContactMissing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgx mock: %v", err)
	}
	defer mock.Close()

	repo := newRepositoryWithExec(mock)

	mock.ExpectQuery("SELECT name, email FROM contacts").
		WithArgs("whatsapp:+420777000099").
		WillReturnError(pgx.ErrNoRows)
	c, err := repo.LookupContact(context.Background(), "whatsapp:+420777000099")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if c != nil {
		t.Fatalf("expected nil contact, got %+v", c)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
