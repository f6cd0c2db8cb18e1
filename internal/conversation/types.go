package conversation

import (
	"context"
	"time"
)

// Venue is one bookable business location.
type Venue struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Service is a bookable service offered by a venue.
type Service struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Duration time.Duration `json:"duration"`
}

// Slot is one bookable time window. Two slots are duplicates iff both
// Start and End are equal.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Equal reports whether two slots cover the same window.
func (s Slot) Equal(other Slot) bool {
	return s.Start.Equal(other.Start) && s.End.Equal(other.End)
}

// BusinessProfile is the public info of a venue, used for the
// business-info interrupt.
type BusinessProfile struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Website string
	Hours   string
}

// BookingRequest carries everything needed to commit a reservation.
type BookingRequest struct {
	VenueID     string
	ServiceID   string
	ServiceName string
	Slot        Slot
	Name        string
	Email       string
	Phone       string
}

// Gateway is the scheduling backend the state machine books against.
type Gateway interface {
	FetchServices(ctx context.Context, venueID string) ([]Service, error)
	FetchSlots(ctx context.Context, venueID, serviceID string, from, to time.Time) ([]Slot, error)
	CreateBooking(ctx context.Context, req BookingRequest) (bookingID string, err error)
	FetchBusinessProfile(ctx context.Context, venueID string) (*BusinessProfile, error)
}

// SavedContact is contact info remembered from a prior session.
type SavedContact struct {
	Name  string
	Email string
}

// ContactStore persists contact info per user identifier so returning
// users can reuse it.
type ContactStore interface {
	SaveContact(ctx context.Context, identifier, name, email string) error
	LookupContact(ctx context.Context, identifier string) (*SavedContact, error)
}

// BookingRecord is the row persisted after a successful booking.
type BookingRecord struct {
	BookingID   string
	Identifier  string
	VenueID     string
	ServiceID   string
	ServiceName string
	StartAt     time.Time
	EndAt       time.Time
	Name        string
	Email       string
}

// BookingRecorder persists successful bookings for reporting.
type BookingRecorder interface {
	RecordBooking(ctx context.Context, rec BookingRecord) error
}

// Notifier sends a booking confirmation out of band. Failures are
// logged and never surfaced to the chat.
type Notifier interface {
	BookingConfirmed(ctx context.Context, rec BookingRecord) error
}
