package models

import "time"

// NATS subjects published by the API and consumed by the notifier.
const (
	SubjectBookingCreated = "booking.created"
	SubjectEventCreated   = "event.created"
	SubjectEventDeleted   = "event.deleted"
)

// BookingCreatedEvent carries everything the notifier needs to send a
// confirmation email without a database round-trip.
type BookingCreatedEvent struct {
	SeatCode    string    `json:"seat_code"`
	EventID     string    `json:"event_id"`
	EventName   string    `json:"event_name"`
	BookingDate string    `json:"booking_date"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Price       int       `json:"price"`
	Timestamp   time.Time `json:"timestamp"`
}

// EventCreatedEvent announces a newly scheduled event.
type EventCreatedEvent struct {
	EventID    string    `json:"event_id"`
	Name       string    `json:"name"`
	Date       string    `json:"date"`
	TotalSeats int       `json:"total_seats"`
	Timestamp  time.Time `json:"timestamp"`
}

// EventDeletedEvent announces an event removal.
type EventDeletedEvent struct {
	EventID   string    `json:"event_id"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
}
