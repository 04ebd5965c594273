package notifier

import (
	"encoding/json"
	"log/slog"

	"github.com/nats-io/stan.go"

	"stagedoor/internal/models"
)

// BookingMailer is the slice of the mail client the notifier needs.
type BookingMailer interface {
	SendBookingConfirmation(to, name, seatCode, bookingDate string, price int) error
}

type Handlers struct {
	mailer BookingMailer
}

func NewHandlers(mailer BookingMailer) *Handlers {
	return &Handlers{mailer: mailer}
}

// HandleBookingCreated sends the confirmation email for a committed booking.
// The message is always acked: the booking itself succeeded, and redelivering
// a malformed or unsendable message would not change the outcome.
func (h *Handlers) HandleBookingCreated(m *stan.Msg) {
	defer func() {
		if err := m.Ack(); err != nil {
			slog.Error("Failed to ack message", "error", err, "subject", m.Subject)
		}
	}()

	h.processBookingCreated(m.Data)
}

func (h *Handlers) processBookingCreated(data []byte) {
	var event models.BookingCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		slog.Error("Failed to unmarshal booking event", "error", err)
		return
	}

	if err := h.mailer.SendBookingConfirmation(event.Email, event.Name, event.SeatCode, event.BookingDate, event.Price); err != nil {
		slog.Error("Failed to send booking confirmation",
			"error", err,
			"email", event.Email,
			"seat_code", event.SeatCode,
			"booking_date", event.BookingDate)
		return
	}

	slog.Info("Booking confirmation sent",
		"email", event.Email,
		"seat_code", event.SeatCode,
		"booking_date", event.BookingDate)
}
