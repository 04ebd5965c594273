package service

import (
	"context"
	"time"

	"stagedoor/internal/config"
	"stagedoor/internal/models"
	"stagedoor/internal/repository"
)

// Storage interfaces kept narrow so services can be unit-tested against
// fakes; the concrete repositories satisfy them.

type EventStore interface {
	CreateWithSeats(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id string) (*models.Event, error)
	GetByDate(ctx context.Context, date string) (*models.Event, error)
	ListUpcoming(ctx context.Context, today string) ([]models.Event, error)
	DeleteWithSeats(ctx context.Context, id string) error
}

type SeatStore interface {
	Initialize(ctx context.Context, eventID string, total int) error
	GetByCode(ctx context.Context, eventID, code string) (*models.Seat, error)
	ListWithStatus(ctx context.Context, eventID, date string) ([]models.SeatWithStatus, error)
	ListByCodesWithStatus(ctx context.Context, eventID, date string, codes []string) ([]models.SeatWithStatus, error)
	Book(ctx context.Context, seatID string, booking *models.Booking) error
}

type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

type OTPStore interface {
	StoreOTP(ctx context.Context, email, code string, ttl time.Duration) error
	GetOTP(ctx context.Context, email string) (string, error)
	DeleteOTP(ctx context.Context, email string) error
}

// Publisher is the fire-and-forget event bus; a publish failure is logged
// by the caller and never fails the triggering operation.
type Publisher interface {
	Publish(subject string, data any) error
}

// Mailer covers the synchronous email path (password-reset codes). Booking
// confirmations go through the Publisher to the notifier instead.
type Mailer interface {
	SendPasswordResetOTP(to, code string, ttl time.Duration) error
}

type Services struct {
	Events *EventService
	Seats  *SeatService
	Auth   *AuthService
}

func NewServices(cfg *config.Config, repos *repository.Repositories, otps OTPStore, publisher Publisher, mailer Mailer) *Services {
	return &Services{
		Events: NewEventService(cfg.AdminPassword, repos.Events, publisher),
		Seats:  NewSeatService(repos.Seats, repos.Events, publisher),
		Auth:   NewAuthService(cfg, repos.Users, otps, mailer),
	}
}
