package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"stagedoor/internal/apperrors"
	"stagedoor/internal/logger"
	"stagedoor/internal/metrics"
	"stagedoor/internal/models"
	"stagedoor/internal/validation"
)

type SeatService struct {
	seats     SeatStore
	events    EventStore
	publisher Publisher
}

func NewSeatService(seats SeatStore, events EventStore, publisher Publisher) *SeatService {
	return &SeatService{
		seats:     seats,
		events:    events,
		publisher: publisher,
	}
}

// Initialize (re)generates the seat grid for an event. It is idempotent:
// nothing changes when the event already has at least totalSeats seats.
func (s *SeatService) Initialize(ctx context.Context, req *models.InitializeSeatsRequest) error {
	if req.EventID == "" {
		return apperrors.Validation("eventId is required")
	}
	if req.TotalSeats < 1 || req.TotalSeats > models.MaxSeats {
		return apperrors.Validation(fmt.Sprintf("totalSeats must be between 1 and %d", models.MaxSeats))
	}
	if _, err := uuid.Parse(req.EventID); err != nil {
		return apperrors.NotFound("Event not found")
	}

	if err := s.seats.Initialize(ctx, req.EventID, req.TotalSeats); err != nil {
		return fmt.Errorf("failed to initialize seats: %w", err)
	}
	return nil
}

// List returns every seat of the event scheduled on date, annotated with
// availability for that date. The read path never mutates: a partially
// generated grid is repaired through Initialize, which event creation runs
// transactionally and operators can invoke explicitly.
func (s *SeatService) List(ctx context.Context, date string) ([]models.SeatWithStatus, error) {
	d, err := s.bookableDate(date)
	if err != nil {
		return nil, err
	}

	event, err := s.eventForDate(ctx, d)
	if err != nil {
		return nil, err
	}

	seats, err := s.seats.ListWithStatus(ctx, event.ID, d.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list seats: %w", err)
	}
	return seats, nil
}

// ListByCodes resolves an explicit set of seat codes for the event on date.
// Every requested code must resolve, otherwise the whole lookup fails.
func (s *SeatService) ListByCodes(ctx context.Context, date string, codes []string) ([]models.SeatWithStatus, error) {
	if date == "" {
		return nil, apperrors.Validation("Date is required")
	}
	d, err := validation.ParseCalendarDate(date)
	if err != nil {
		return nil, apperrors.Validation("Invalid date format. Use YYYY-MM-DD")
	}
	if len(codes) == 0 {
		return nil, apperrors.Validation("seatIds are required")
	}

	unique := make([]string, 0, len(codes))
	seen := make(map[string]bool, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if !validation.ValidSeatCode(code) {
			return nil, apperrors.Validation(fmt.Sprintf("Invalid seat id: %s", code))
		}
		if !seen[code] {
			seen[code] = true
			unique = append(unique, code)
		}
	}

	event, err := s.eventForDate(ctx, d)
	if err != nil {
		return nil, err
	}

	seats, err := s.seats.ListByCodesWithStatus(ctx, event.ID, d.String(), unique)
	if err != nil {
		return nil, fmt.Errorf("failed to list seats: %w", err)
	}
	if len(seats) != len(unique) {
		return nil, apperrors.NotFound("One or more seats not found")
	}
	return seats, nil
}

// Book reserves one seat for one date. The availability re-check and the
// append run inside a storage transaction; this method only sequences the
// validations around it and the post-commit notification.
func (s *SeatService) Book(ctx context.Context, req *models.BookSeatRequest) (*models.SeatWithStatus, error) {
	if req.SeatID == "" || req.Name == "" || req.Email == "" || req.Phone == "" || req.BookingDate == "" {
		return nil, apperrors.Validation("seatId, name, email, phone, and bookingDate are required")
	}
	if !validation.ValidEmail(req.Email) {
		return nil, apperrors.Validation("Invalid email format")
	}
	if !validation.ValidPhone(req.Phone) {
		return nil, apperrors.Validation("Invalid phone number format. Use 10 digits or +[country code][10 digits]")
	}

	d, err := s.bookableDate(req.BookingDate)
	if err != nil {
		return nil, err
	}

	event, err := s.eventForDate(ctx, d)
	if err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(req.SeatID))
	seat, err := s.seats.GetByCode(ctx, event.ID, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get seat: %w", err)
	}
	if seat == nil {
		return nil, apperrors.NotFound("Seat not found")
	}

	booking := &models.Booking{
		SeatID: seat.ID,
		Date:   d.String(),
		BookedBy: models.BookedBy{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
		},
		Status: models.StatusBooked,
	}

	if err := s.seats.Book(ctx, seat.ID, booking); err != nil {
		metrics.BookingsTotal.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("failed to book seat: %w", err)
	}
	metrics.BookingsTotal.WithLabelValues("confirmed").Inc()

	// The booking is committed; notification is best effort from here on.
	if err := s.publisher.Publish(models.SubjectBookingCreated, models.BookingCreatedEvent{
		SeatCode:    seat.SeatID,
		EventID:     event.ID,
		EventName:   event.Name,
		BookingDate: booking.Date,
		Name:        booking.BookedBy.Name,
		Email:       booking.BookedBy.Email,
		Phone:       booking.BookedBy.Phone,
		Price:       seat.Price,
		Timestamp:   time.Now(),
	}); err != nil {
		logger.WithContext(ctx).Error("Failed to publish booking confirmation",
			"error", err,
			"seat_code", seat.SeatID,
			"booking_date", booking.Date)
	}

	return &models.SeatWithStatus{
		Seat:     *seat,
		Status:   models.StatusBooked,
		BookedBy: &booking.BookedBy,
	}, nil
}

// bookableDate parses date and rejects same-day use: today's seats can be
// neither listed for booking nor booked.
func (s *SeatService) bookableDate(date string) (validation.CalendarDate, error) {
	if date == "" {
		return "", apperrors.Validation("Date is required")
	}
	d, err := validation.ParseCalendarDate(date)
	if err != nil {
		return "", apperrors.Validation("Invalid date format. Use YYYY-MM-DD")
	}
	if d == validation.Today() {
		return "", apperrors.Validation("Same-day bookings are not available")
	}
	return d, nil
}

func (s *SeatService) eventForDate(ctx context.Context, d validation.CalendarDate) (*models.Event, error) {
	event, err := s.events.GetByDate(ctx, d.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return nil, apperrors.Validation("No event scheduled for this date")
	}
	return event, nil
}
