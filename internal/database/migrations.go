package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createUsersTable,
		createEventsTable,
		createSeatsTable,
		createBookingsTable,
		createSeatsEventIndex,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    email VARCHAR(255) UNIQUE NOT NULL,
    password_hash VARCHAR(100) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);`

// Calendar dates are stored as ISO YYYY-MM-DD text; lexicographic comparison
// matches chronological order, and UNIQUE(event_date) enforces the
// one-event-per-date invariant at the storage layer.
const createEventsTable = `
CREATE EXTENSION IF NOT EXISTS "uuid-ossp";
CREATE TABLE IF NOT EXISTS events (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    name VARCHAR(255) NOT NULL,
    event_date VARCHAR(10) UNIQUE NOT NULL,
    event_time VARCHAR(5) NOT NULL,
    description TEXT NOT NULL,
    venue VARCHAR(255) NOT NULL,
    admin_password VARCHAR(255) NOT NULL,
    total_seats INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (total_seats >= 1 AND total_seats <= 260)
);`

const createSeatsTable = `
CREATE TABLE IF NOT EXISTS seats (
    id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
    seat_code VARCHAR(3) NOT NULL,
    row_letter CHAR(1) NOT NULL,
    col_number INTEGER NOT NULL,
    price INTEGER NOT NULL,

    UNIQUE(event_id, seat_code)
);`

// UNIQUE(seat_id, booking_date) is the storage-level backstop for the
// one-booking-per-seat-per-date invariant; the booking transaction re-checks
// under a row lock before inserting.
const createBookingsTable = `
CREATE TABLE IF NOT EXISTS bookings (
    id SERIAL PRIMARY KEY,
    seat_id UUID NOT NULL REFERENCES seats(id) ON DELETE CASCADE,
    booking_date VARCHAR(10) NOT NULL,
    booked_name VARCHAR(255) NOT NULL,
    booked_email VARCHAR(255) NOT NULL,
    booked_phone VARCHAR(20) NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'booked',
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),

    UNIQUE(seat_id, booking_date),
    CHECK (status IN ('booked'))
);`

const createSeatsEventIndex = `
CREATE INDEX IF NOT EXISTS seats_event_id_idx ON seats (event_id);`
