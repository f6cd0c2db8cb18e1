package conversation

import (
	"context"
	"fmt"
	"time"

	"github.com/hradek/salon-booking-ai/internal/reservio"
)

// ReservioGateway adapts the Reservio API client to the Gateway port.
// Venue IDs map to Reservio business IDs.
type ReservioGateway struct {
	client *reservio.Client

	// Hours is shown in business-info replies; Reservio does not
	// expose opening hours, so it comes from configuration.
	Hours string
}

func NewReservioGateway(client *reservio.Client) *ReservioGateway {
	if client == nil {
		panic("conversation: reservio client is required")
	}
	return &ReservioGateway{client: client}
}

func (g *ReservioGateway) FetchServices(ctx context.Context, venueID string) ([]Service, error) {
	svcs, err := g.client.GetServices(ctx, venueID)
	if err != nil {
		return nil, err
	}
	out := make([]Service, 0, len(svcs))
	for _, s := range svcs {
		out = append(out, Service{ID: s.ID, Name: s.Name, Duration: s.Duration})
	}
	return out, nil
}

func (g *ReservioGateway) FetchSlots(ctx context.Context, venueID, serviceID string, from, to time.Time) ([]Slot, error) {
	slots, err := g.client.GetSlots(ctx, venueID, serviceID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, Slot{Start: s.Start, End: s.End})
	}
	return out, nil
}

func (g *ReservioGateway) CreateBooking(ctx context.Context, req BookingRequest) (string, error) {
	booking, err := g.client.CreateBooking(ctx, reservio.CreateBookingRequest{
		BusinessID:  req.VenueID,
		ServiceID:   req.ServiceID,
		Slot:        reservio.Slot{Start: req.Slot.Start, End: req.Slot.End},
		ClientName:  req.Name,
		ClientEmail: req.Email,
		ClientPhone: req.Phone,
		Note:        fmt.Sprintf("Booked via WhatsApp (%s)", req.Phone),
	})
	if err != nil {
		return "", err
	}
	return booking.ID, nil
}

func (g *ReservioGateway) FetchBusinessProfile(ctx context.Context, venueID string) (*BusinessProfile, error) {
	b, err := g.client.GetBusiness(ctx, venueID)
	if err != nil {
		return nil, err
	}
	return &BusinessProfile{
		Name:    b.Name,
		Address: b.Address,
		Phone:   b.Phone,
		Email:   b.Email,
		Website: b.Website,
		Hours:   g.Hours,
	}, nil
}
