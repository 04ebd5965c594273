package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"stagedoor/internal/apperrors"
	"stagedoor/internal/database"
	"stagedoor/internal/models"
)

type SeatRepository struct {
	db *database.DB
}

func NewSeatRepository(db *database.DB) *SeatRepository {
	return &SeatRepository{db: db}
}

// insertSeats bulk-inserts a generated grid for one event inside the
// caller's transaction.
func insertSeats(ctx context.Context, tx *sql.Tx, eventID string, seats []models.Seat) error {
	query := `
		INSERT INTO seats (event_id, seat_code, row_letter, col_number, price)
		VALUES ($1, $2, $3, $4, $5)`

	for _, seat := range seats {
		if _, err := tx.ExecContext(ctx, query, eventID, seat.SeatID, seat.Row, seat.Column, seat.Price); err != nil {
			return fmt.Errorf("failed to insert seat %s: %w", seat.SeatID, err)
		}
	}
	return nil
}

// Initialize is idempotent: when the event already has at least total seats
// it does nothing; otherwise it clears the event's seats and regenerates the
// grid. The event row is locked first so concurrent initializations for the
// same event serialize.
func (r *SeatRepository) Initialize(ctx context.Context, eventID string, total int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var declared int
	err = tx.QueryRowContext(ctx, `SELECT total_seats FROM events WHERE id = $1 FOR UPDATE`, eventID).Scan(&declared)
	if err == sql.ErrNoRows {
		return apperrors.NotFound("Event not found")
	}
	if err != nil {
		return err
	}

	var existing int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM seats WHERE event_id = $1`, eventID).Scan(&existing); err != nil {
		return err
	}
	if existing >= total {
		return tx.Commit()
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM seats WHERE event_id = $1`, eventID); err != nil {
		return err
	}
	if err := insertSeats(ctx, tx, eventID, models.SeatGrid(total)); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *SeatRepository) GetByCode(ctx context.Context, eventID, code string) (*models.Seat, error) {
	seat := &models.Seat{}
	query := `
		SELECT id, event_id, seat_code, row_letter, col_number, price
		FROM seats
		WHERE event_id = $1 AND seat_code = $2`

	err := r.db.QueryRowContext(ctx, query, eventID, code).Scan(
		&seat.ID,
		&seat.EventID,
		&seat.SeatID,
		&seat.Row,
		&seat.Column,
		&seat.Price,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return seat, err
}

// ListWithStatus returns every seat of the event annotated with its derived
// availability for the requested date.
func (r *SeatRepository) ListWithStatus(ctx context.Context, eventID, date string) ([]models.SeatWithStatus, error) {
	query := seatStatusQuery + ` ORDER BY s.row_letter, s.col_number`
	return r.queryWithStatus(ctx, query, eventID, date)
}

// ListByCodesWithStatus is ListWithStatus restricted to an explicit set of
// seat codes. Codes with no matching seat are simply absent from the result.
func (r *SeatRepository) ListByCodesWithStatus(ctx context.Context, eventID, date string, codes []string) ([]models.SeatWithStatus, error) {
	query := seatStatusQuery + ` AND s.seat_code = ANY($3) ORDER BY s.row_letter, s.col_number`
	return r.queryWithStatus(ctx, query, eventID, date, pq.Array(codes))
}

const seatStatusQuery = `
	SELECT s.id, s.event_id, s.seat_code, s.row_letter, s.col_number, s.price,
	       b.booked_name, b.booked_email, b.booked_phone
	FROM seats s
	LEFT JOIN bookings b ON b.seat_id = s.id AND b.booking_date = $2
	WHERE s.event_id = $1`

func (r *SeatRepository) queryWithStatus(ctx context.Context, query string, eventID, date string, extra ...any) ([]models.SeatWithStatus, error) {
	args := append([]any{eventID, date}, extra...)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seats []models.SeatWithStatus
	for rows.Next() {
		var seat models.SeatWithStatus
		var name, email, phone sql.NullString
		err := rows.Scan(
			&seat.ID,
			&seat.EventID,
			&seat.SeatID,
			&seat.Row,
			&seat.Column,
			&seat.Price,
			&name,
			&email,
			&phone,
		)
		if err != nil {
			return nil, err
		}
		if name.Valid {
			seat.Status = models.StatusBooked
			seat.BookedBy = &models.BookedBy{Name: name.String, Email: email.String, Phone: phone.String}
		} else {
			seat.Status = models.StatusAvailable
		}
		seats = append(seats, seat)
	}

	return seats, rows.Err()
}

// Book appends a booking for one (seat, date) pair. The seat row is locked
// before the availability re-check so two racing requests cannot both pass
// it; the unique index on (seat_id, booking_date) backstops the invariant.
func (r *SeatRepository) Book(ctx context.Context, seatID string, booking *models.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var locked string
	err = tx.QueryRowContext(ctx, `SELECT id FROM seats WHERE id = $1 FOR UPDATE`, seatID).Scan(&locked)
	if err == sql.ErrNoRows {
		return apperrors.NotFound("Seat not found")
	}
	if err != nil {
		return err
	}

	var existing int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE seat_id = $1 AND booking_date = $2`,
		seatID, booking.Date,
	).Scan(&existing)
	if err != nil {
		return err
	}
	if existing > 0 {
		return apperrors.Validation("Seat is already booked for this date")
	}

	insert := `
		INSERT INTO bookings (seat_id, booking_date, booked_name, booked_email, booked_phone, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err = tx.QueryRowContext(ctx, insert,
		seatID,
		booking.Date,
		booking.BookedBy.Name,
		booking.BookedBy.Email,
		booking.BookedBy.Phone,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.Validation("Seat is already booked for this date")
		}
		return err
	}

	booking.SeatID = seatID
	return tx.Commit()
}
