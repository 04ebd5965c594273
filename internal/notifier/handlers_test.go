package notifier

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagedoor/internal/models"
)

type recordingMailer struct {
	sent  int
	to    string
	seat  string
	price int
}

func (m *recordingMailer) SendBookingConfirmation(to, name, seatCode, bookingDate string, price int) error {
	m.sent++
	m.to = to
	m.seat = seatCode
	m.price = price
	return nil
}

func TestProcessBookingCreated(t *testing.T) {
	mailer := &recordingMailer{}
	h := NewHandlers(mailer)

	data, err := json.Marshal(models.BookingCreatedEvent{
		SeatCode:    "A1",
		EventName:   "Winter Gala",
		BookingDate: "2099-01-01",
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "9876543210",
		Price:       300,
	})
	require.NoError(t, err)

	h.processBookingCreated(data)

	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, "jane@example.com", mailer.to)
	assert.Equal(t, "A1", mailer.seat)
	assert.Equal(t, 300, mailer.price)
}

func TestProcessBookingCreatedMalformed(t *testing.T) {
	mailer := &recordingMailer{}
	h := NewHandlers(mailer)

	h.processBookingCreated([]byte("{not json"))

	assert.Zero(t, mailer.sent)
}
