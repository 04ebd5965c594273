package handlers

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"stagedoor/internal/apperrors"
	"stagedoor/internal/models"
)

// memStore is a mutex-guarded in-memory stand-in for the Postgres
// repositories, enforcing the same uniqueness rules the schema does.
type memStore struct {
	mu            sync.Mutex
	events        map[string]*models.Event   // by event id
	seats         map[string]*models.Seat    // by seat id
	bookings      map[string]*models.Booking // by seat id + "|" + date
	nextBookingID int64
}

func newMemStore() *memStore {
	return &memStore{
		events:   make(map[string]*models.Event),
		seats:    make(map[string]*models.Seat),
		bookings: make(map[string]*models.Booking),
	}
}

func bookingKey(seatID, date string) string { return seatID + "|" + date }

func (s *memStore) insertSeatsLocked(eventID string, total int) {
	for _, seat := range models.SeatGrid(total) {
		seat.ID = uuid.New().String()
		seat.EventID = eventID
		stored := seat
		s.seats[stored.ID] = &stored
	}
}

// memEvents implements service.EventStore.
type memEvents struct{ *memStore }

func (s memEvents) CreateWithSeats(_ context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.events {
		if e.Date == event.Date {
			return apperrors.Conflict("An event already exists for this date")
		}
	}

	event.ID = uuid.New().String()
	event.CreatedAt = time.Now()
	stored := *event
	s.events[stored.ID] = &stored
	s.insertSeatsLocked(stored.ID, stored.TotalSeats)
	return nil
}

func (s memEvents) GetByID(_ context.Context, id string) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[id]
	if !ok {
		return nil, nil
	}
	copied := *event
	return &copied, nil
}

func (s memEvents) GetByDate(_ context.Context, date string) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, event := range s.events {
		if event.Date == date {
			copied := *event
			return &copied, nil
		}
	}
	return nil, nil
}

func (s memEvents) ListUpcoming(_ context.Context, today string) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []models.Event
	for _, event := range s.events {
		if event.Date >= today {
			list = append(list, *event)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date < list[j].Date })
	return list, nil
}

func (s memEvents) DeleteWithSeats(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for seatID, seat := range s.seats {
		if seat.EventID != id {
			continue
		}
		for _, booking := range s.bookings {
			if booking.SeatID == seatID {
				return apperrors.Conflict("Cannot delete event with existing bookings")
			}
		}
	}

	delete(s.events, id)
	for seatID, seat := range s.seats {
		if seat.EventID == id {
			delete(s.seats, seatID)
		}
	}
	return nil
}

// memSeats implements service.SeatStore.
type memSeats struct{ *memStore }

func (s memSeats) Initialize(_ context.Context, eventID string, total int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[eventID]; !ok {
		return apperrors.NotFound("Event not found")
	}

	existing := 0
	for _, seat := range s.seats {
		if seat.EventID == eventID {
			existing++
		}
	}
	if existing >= total {
		return nil
	}

	for seatID, seat := range s.seats {
		if seat.EventID == eventID {
			delete(s.seats, seatID)
		}
	}
	s.insertSeatsLocked(eventID, total)
	return nil
}

func (s memSeats) GetByCode(_ context.Context, eventID, code string) (*models.Seat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, seat := range s.seats {
		if seat.EventID == eventID && seat.SeatID == code {
			copied := *seat
			return &copied, nil
		}
	}
	return nil, nil
}

func (s memSeats) withStatusLocked(seat *models.Seat, date string) models.SeatWithStatus {
	sw := models.SeatWithStatus{Seat: *seat, Status: models.StatusAvailable}
	if booking, ok := s.bookings[bookingKey(seat.ID, date)]; ok {
		sw.Status = models.StatusBooked
		bookedBy := booking.BookedBy
		sw.BookedBy = &bookedBy
	}
	return sw
}

func (s memSeats) ListWithStatus(_ context.Context, eventID, date string) ([]models.SeatWithStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []models.SeatWithStatus
	for _, seat := range s.seats {
		if seat.EventID == eventID {
			list = append(list, s.withStatusLocked(seat, date))
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Row != list[j].Row {
			return list[i].Row < list[j].Row
		}
		return list[i].Column < list[j].Column
	})
	return list, nil
}

func (s memSeats) ListByCodesWithStatus(_ context.Context, eventID, date string, codes []string) ([]models.SeatWithStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[string]bool, len(codes))
	for _, code := range codes {
		wanted[code] = true
	}

	var list []models.SeatWithStatus
	for _, seat := range s.seats {
		if seat.EventID == eventID && wanted[seat.SeatID] {
			list = append(list, s.withStatusLocked(seat, date))
		}
	}
	return list, nil
}

func (s memSeats) Book(_ context.Context, seatID string, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seats[seatID]; !ok {
		return apperrors.NotFound("Seat not found")
	}

	key := bookingKey(seatID, booking.Date)
	if _, taken := s.bookings[key]; taken {
		return apperrors.Validation("Seat is already booked for this date")
	}

	s.nextBookingID++
	booking.ID = s.nextBookingID
	booking.CreatedAt = time.Now()
	stored := *booking
	s.bookings[key] = &stored
	return nil
}

// memUsers implements service.UserStore.
type memUsers struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[string]*models.User)}
}

func (s *memUsers) add(email, passwordHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[email] = &models.User{ID: int64(len(s.users) + 1), Email: email, PasswordHash: passwordHash}
}

func (s *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s *memUsers) UpdatePassword(_ context.Context, email, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.users[email]; ok {
		user.PasswordHash = passwordHash
	}
	return nil
}

// memOTP implements service.OTPStore. TTLs are ignored; expiry is not under
// test here.
type memOTP struct {
	mu    sync.Mutex
	codes map[string]string
}

func newMemOTP() *memOTP {
	return &memOTP{codes: make(map[string]string)}
}

func (s *memOTP) StoreOTP(_ context.Context, email, code string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[email] = code
	return nil
}

func (s *memOTP) GetOTP(_ context.Context, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codes[email], nil
}

func (s *memOTP) DeleteOTP(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, email)
	return nil
}

// fakePublisher records published messages.
type fakePublisher struct {
	mu        sync.Mutex
	published []string
}

func (p *fakePublisher) Publish(subject string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, subject)
	return nil
}

func (p *fakePublisher) count(subject string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, s := range p.published {
		if s == subject {
			n++
		}
	}
	return n
}

// fakeMailer captures the last password-reset code instead of sending it.
type fakeMailer struct {
	mu       sync.Mutex
	lastCode string
	lastTo   string
}

func (m *fakeMailer) SendPasswordResetOTP(to, code string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastTo = to
	m.lastCode = code
	return nil
}

func (m *fakeMailer) code() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastCode
}
