package repository

import (
	"context"
	"database/sql"
	"fmt"

	"stagedoor/internal/apperrors"
	"stagedoor/internal/database"
	"stagedoor/internal/models"
)

type EventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) *EventRepository {
	return &EventRepository{db: db}
}

// CreateWithSeats inserts the event and generates its full seat grid in one
// transaction; a seat-generation failure rolls the event back. A concurrent
// insert for the same date surfaces as a Conflict via the unique index on
// event_date.
func (r *EventRepository) CreateWithSeats(ctx context.Context, event *models.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO events (name, event_date, event_time, description, venue, admin_password, total_seats)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err = tx.QueryRowContext(ctx, query,
		event.Name,
		event.Date,
		event.Time,
		event.Description,
		event.Venue,
		event.AdminPassword,
		event.TotalSeats,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "events_event_date_key") {
			return apperrors.Conflict("An event already exists for this date")
		}
		return err
	}

	if err := insertSeats(ctx, tx, event.ID, models.SeatGrid(event.TotalSeats)); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	return r.getOne(ctx, "id = $1", id)
}

func (r *EventRepository) GetByDate(ctx context.Context, date string) (*models.Event, error) {
	return r.getOne(ctx, "event_date = $1", date)
}

func (r *EventRepository) getOne(ctx context.Context, where string, arg any) (*models.Event, error) {
	event := &models.Event{}
	query := `
		SELECT id, name, event_date, event_time, description, venue, admin_password, total_seats, created_at
		FROM events
		WHERE ` + where

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&event.ID,
		&event.Name,
		&event.Date,
		&event.Time,
		&event.Description,
		&event.Venue,
		&event.AdminPassword,
		&event.TotalSeats,
		&event.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return event, err
}

// ListUpcoming returns events on or after today, soonest first.
func (r *EventRepository) ListUpcoming(ctx context.Context, today string) ([]models.Event, error) {
	query := `
		SELECT id, name, event_date, event_time, description, venue, admin_password, total_seats, created_at
		FROM events
		WHERE event_date >= $1
		ORDER BY event_date ASC`

	rows, err := r.db.QueryContext(ctx, query, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err := rows.Scan(
			&event.ID,
			&event.Name,
			&event.Date,
			&event.Time,
			&event.Description,
			&event.Venue,
			&event.AdminPassword,
			&event.TotalSeats,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// DeleteWithSeats removes the event and, via cascade, its seats. The event's
// seat rows are locked before the no-bookings check: a booking transaction
// holds its seat row FOR UPDATE, so the lock acquisition waits for in-flight
// bookings to commit and the count then sees them. Without the lock the count
// could read zero while a booking commits, and the cascade would destroy it.
func (r *EventRepository) DeleteWithSeats(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT id FROM seats WHERE event_id = $1 FOR UPDATE`, id); err != nil {
		return err
	}

	var bookings int
	countQuery := `
		SELECT COUNT(*)
		FROM bookings b
		JOIN seats s ON b.seat_id = s.id
		WHERE s.event_id = $1`
	if err := tx.QueryRowContext(ctx, countQuery, id).Scan(&bookings); err != nil {
		return err
	}
	if bookings > 0 {
		return apperrors.Conflict("Cannot delete event with existing bookings")
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return tx.Commit()
}
