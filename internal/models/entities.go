package models

import (
	"time"
)

// Booking statuses. There is no cancellation path, so "booked" is terminal.
const (
	StatusBooked    = "booked"
	StatusAvailable = "available"
)

// Event represents a scheduled show with a fixed calendar date and seat
// capacity. At most one event exists per calendar date.
type Event struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Date          string    `json:"date" db:"event_date"`
	Time          string    `json:"time" db:"event_time"`
	Description   string    `json:"description" db:"description"`
	Venue         string    `json:"venue" db:"venue"`
	AdminPassword string    `json:"-" db:"admin_password"`
	TotalSeats    int       `json:"totalSeats" db:"total_seats"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// Seat is one bookable unit of an event's seat grid, identified by a
// row-letter/column-number code such as "A1".
type Seat struct {
	ID      string `json:"id" db:"id"`
	EventID string `json:"eventId" db:"event_id"`
	SeatID  string `json:"seatId" db:"seat_code"`
	Row     string `json:"row" db:"row_letter"`
	Column  int    `json:"column" db:"col_number"`
	Price   int    `json:"price" db:"price"`
}

// BookedBy holds the contact details submitted with a booking.
type BookedBy struct {
	Name  string `json:"name" db:"booked_name"`
	Email string `json:"email" db:"booked_email"`
	Phone string `json:"phone" db:"booked_phone"`
}

// Booking is a date-scoped reservation of one seat. A seat carries at most
// one booking per calendar date.
type Booking struct {
	ID        int64     `json:"id" db:"id"`
	SeatID    string    `json:"-" db:"seat_id"`
	Date      string    `json:"date" db:"booking_date"`
	BookedBy  BookedBy  `json:"bookedBy"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// User is the operator account used for the authenticated endpoints.
type User struct {
	ID           int64     `json:"-" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
}
