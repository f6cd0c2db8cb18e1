package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/hradek/salon-booking-ai/internal/conversation"
	"github.com/hradek/salon-booking-ai/pkg/logging"
)

// BookingNotifier emails a confirmation to the customer and, when an
// operator address is configured, a heads-up to the salon.
type BookingNotifier struct {
	email         EmailSender
	salonName     string
	operatorEmail string
	loc           *time.Location
	logger        *logging.Logger
}

func NewBookingNotifier(email EmailSender, salonName, operatorEmail string, loc *time.Location, logger *logging.Logger) *BookingNotifier {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = logging.Default()
	}
	if salonName == "" {
		salonName = "Salon Booking"
	}
	return &BookingNotifier{
		email:         email,
		salonName:     salonName,
		operatorEmail: operatorEmail,
		loc:           loc,
		logger:        logger,
	}
}

// BookingConfirmed sends the confirmation emails. The customer email is
// the primary delivery; an operator send failure is only logged.
func (n *BookingNotifier) BookingConfirmed(ctx context.Context, rec conversation.BookingRecord) error {
	if n.email == nil {
		n.logger.Debug("notify: email sender not configured, skipping confirmation")
		return nil
	}

	when := rec.StartAt.In(n.loc).Format("Monday, January 2 at 3:04 PM")
	customerBody := fmt.Sprintf(
		"Hi %s,\n\nYour appointment is confirmed.\n\nService: %s\nTime: %s\nReference: %s\n\nSee you soon!\n%s",
		rec.Name, rec.ServiceName, when, rec.BookingID, n.salonName,
	)
	err := n.email.Send(ctx, EmailMessage{
		To:      rec.Email,
		ToName:  rec.Name,
		Subject: fmt.Sprintf("Your %s appointment on %s", rec.ServiceName, rec.StartAt.In(n.loc).Format("Jan 2")),
		Body:    customerBody,
	})
	if err != nil {
		return fmt.Errorf("notify: booking confirmation: %w", err)
	}

	if n.operatorEmail != "" {
		operatorBody := fmt.Sprintf(
			"New booking via WhatsApp.\n\nClient: %s (%s)\nService: %s\nTime: %s\nReference: %s",
			rec.Name, rec.Email, rec.ServiceName, when, rec.BookingID,
		)
		if err := n.email.Send(ctx, EmailMessage{
			To:      n.operatorEmail,
			Subject: fmt.Sprintf("New booking: %s, %s", rec.ServiceName, when),
			Body:    operatorBody,
		}); err != nil {
			n.logger.Error("operator notification failed", "error", err, "bookingId", rec.BookingID)
		}
	}
	return nil
}
