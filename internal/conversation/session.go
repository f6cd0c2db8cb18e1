package conversation

import (
	"context"
	"time"
)

// Step names a position in the booking funnel.
type Step string

const (
	StepChooseVenue       Step = "choose_venue"
	StepChooseService     Step = "choose_service"
	StepChooseDate        Step = "choose_date"
	StepChooseSlot        Step = "choose_slot"
	StepChooseNearbySlot  Step = "choose_nearby_slot"
	StepAskContact        Step = "ask_contact"
	StepConfirmSavedInfo  Step = "confirm_saved_info"
	StepConfirmTimeChange Step = "confirm_time_change"
	StepConfirmBooking    Step = "confirm_booking"
	StepDone              Step = "done"
)

// Session holds the per-user booking funnel state. It is stored as a
// JSON blob keyed by the user identifier and reset whenever the user
// sends a greeting keyword.
type Session struct {
	Step Step `json:"step"`

	VenueID   string  `json:"venueId,omitempty"`
	VenueName string  `json:"venueName,omitempty"`
	Venues    []Venue `json:"venues,omitempty"`

	Services      []Service `json:"services,omitempty"`
	ChosenService *Service  `json:"chosenService,omitempty"`

	Slots    []Slot `json:"slots,omitempty"`
	SlotPage int    `json:"slotPage,omitempty"`

	NearbySlots   []Slot `json:"nearbySlots,omitempty"`
	RequestedTime string `json:"requestedTime,omitempty"`

	// PendingPref carries a time preference mentioned before a date
	// was chosen, applied once slots are fetched.
	PendingPref TimePreference `json:"pendingPref,omitempty"`

	ChosenSlot *Slot `json:"chosenSlot,omitempty"`

	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	SavedName     string `json:"savedName,omitempty"`
	SavedEmail    string `json:"savedEmail,omitempty"`

	// RequestedTimeChange is the raw text of a time-change attempt,
	// replayed through slot resolution after the user confirms.
	RequestedTimeChange string `json:"requestedTimeChange,omitempty"`

	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// SessionStore persists sessions per user identifier. Get returns
// (nil, nil) when no session exists.
type SessionStore interface {
	Get(ctx context.Context, identifier string) (*Session, error)
	Save(ctx context.Context, identifier string, s *Session) error
	Delete(ctx context.Context, identifier string) error
}
