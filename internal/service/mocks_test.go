package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"stagedoor/internal/models"
)

type mockEventStore struct {
	mock.Mock
}

func (m *mockEventStore) CreateWithSeats(ctx context.Context, event *models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockEventStore) GetByID(ctx context.Context, id string) (*models.Event, error) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*models.Event)
	return event, args.Error(1)
}

func (m *mockEventStore) GetByDate(ctx context.Context, date string) (*models.Event, error) {
	args := m.Called(ctx, date)
	event, _ := args.Get(0).(*models.Event)
	return event, args.Error(1)
}

func (m *mockEventStore) ListUpcoming(ctx context.Context, today string) ([]models.Event, error) {
	args := m.Called(ctx, today)
	events, _ := args.Get(0).([]models.Event)
	return events, args.Error(1)
}

func (m *mockEventStore) DeleteWithSeats(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockSeatStore struct {
	mock.Mock
}

func (m *mockSeatStore) Initialize(ctx context.Context, eventID string, total int) error {
	args := m.Called(ctx, eventID, total)
	return args.Error(0)
}

func (m *mockSeatStore) GetByCode(ctx context.Context, eventID, code string) (*models.Seat, error) {
	args := m.Called(ctx, eventID, code)
	seat, _ := args.Get(0).(*models.Seat)
	return seat, args.Error(1)
}

func (m *mockSeatStore) ListWithStatus(ctx context.Context, eventID, date string) ([]models.SeatWithStatus, error) {
	args := m.Called(ctx, eventID, date)
	seats, _ := args.Get(0).([]models.SeatWithStatus)
	return seats, args.Error(1)
}

func (m *mockSeatStore) ListByCodesWithStatus(ctx context.Context, eventID, date string, codes []string) ([]models.SeatWithStatus, error) {
	args := m.Called(ctx, eventID, date, codes)
	seats, _ := args.Get(0).([]models.SeatWithStatus)
	return seats, args.Error(1)
}

func (m *mockSeatStore) Book(ctx context.Context, seatID string, booking *models.Booking) error {
	args := m.Called(ctx, seatID, booking)
	return args.Error(0)
}

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserStore) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	args := m.Called(ctx, email, passwordHash)
	return args.Error(0)
}

type mockOTPStore struct {
	mock.Mock
}

func (m *mockOTPStore) StoreOTP(ctx context.Context, email, code string, ttl time.Duration) error {
	args := m.Called(ctx, email, code, ttl)
	return args.Error(0)
}

func (m *mockOTPStore) GetOTP(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *mockOTPStore) DeleteOTP(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(subject string, data any) error {
	args := m.Called(subject, data)
	return args.Error(0)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendPasswordResetOTP(to, code string, ttl time.Duration) error {
	args := m.Called(to, code, ttl)
	return args.Error(0)
}
