package repository

import (
	"errors"

	"github.com/lib/pq"

	"stagedoor/internal/database"
)

type Repositories struct {
	Events *EventRepository
	Seats  *SeatRepository
	Users  *UserRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Events: NewEventRepository(db),
		Seats:  NewSeatRepository(db),
		Users:  NewUserRepository(db),
	}
}

// isUniqueViolation reports whether err is a postgres unique-constraint
// violation, optionally restricted to one named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != "23505" {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
