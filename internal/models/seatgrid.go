package models

import "fmt"

const (
	// MaxSeats is the capacity ceiling of the row-letter/column-number
	// scheme: 26 rows of 10 columns.
	MaxSeats = 260

	// DefaultSeatPrice is the flat price assigned to generated seats.
	DefaultSeatPrice = 300

	seatGridColumns = 10
)

// SeatGrid returns the deterministic row-major seat layout for a capacity:
// each row letter 'A'..'Z' is filled across columns 1..10 before the next
// letter starts, stopping once total seats have been emitted. Only the last
// row may be partially filled. Capacities above MaxSeats are truncated.
func SeatGrid(total int) []Seat {
	if total > MaxSeats {
		total = MaxSeats
	}
	seats := make([]Seat, 0, total)
	for row := 'A'; row <= 'Z' && len(seats) < total; row++ {
		for col := 1; col <= seatGridColumns && len(seats) < total; col++ {
			seats = append(seats, Seat{
				SeatID: fmt.Sprintf("%c%d", row, col),
				Row:    string(row),
				Column: col,
				Price:  DefaultSeatPrice,
			})
		}
	}
	return seats
}
