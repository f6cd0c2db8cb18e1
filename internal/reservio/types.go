package reservio

import "time"

// Business holds the public profile of a bookable venue.
type Business struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

// Service represents a bookable service.
type Service struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Duration time.Duration `json:"duration,omitempty"`
}

// Slot is one bookable time window.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CreateBookingRequest is input for creating a booking.
type CreateBookingRequest struct {
	BusinessID  string `json:"businessId"`
	ServiceID   string `json:"serviceId"`
	Slot        Slot   `json:"slot"`
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`
	Note        string `json:"note,omitempty"`
}

// Booking is the confirmed booking returned by the API.
type Booking struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}

// JSON:API envelope types. The API wraps every payload in a data object
// (or array) whose attributes carry the actual fields.

type document[T any] struct {
	Data T `json:"data"`
}

type resource[A any] struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes A      `json:"attributes"`
}

type businessAttributes struct {
	Name    string `json:"name"`
	Address struct {
		Street  string `json:"street"`
		City    string `json:"city"`
		Zip     string `json:"zip"`
		Country string `json:"country"`
	} `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

type serviceAttributes struct {
	Name string `json:"name"`
	// Duration is reported in seconds.
	Duration int `json:"duration"`
}

type slotAttributes struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
