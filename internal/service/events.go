package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"stagedoor/internal/apperrors"
	"stagedoor/internal/logger"
	"stagedoor/internal/models"
	"stagedoor/internal/validation"
)

type EventService struct {
	adminPassword string
	events        EventStore
	publisher     Publisher
}

func NewEventService(adminPassword string, events EventStore, publisher Publisher) *EventService {
	return &EventService{
		adminPassword: adminPassword,
		events:        events,
		publisher:     publisher,
	}
}

// Create validates the request, then persists the event together with its
// generated seat grid in a single transaction.
func (s *EventService) Create(ctx context.Context, req *models.CreateEventRequest) (*models.Event, error) {
	if req.Name == "" || req.Date == "" || req.Time == "" || req.Description == "" || req.Venue == "" || req.Password == "" {
		return nil, apperrors.Validation("Name, date, time, description, venue, and password are required")
	}

	date, err := validation.ParseCalendarDate(req.Date)
	if err != nil {
		return nil, apperrors.Validation("Invalid date format. Use YYYY-MM-DD")
	}
	if _, err := validation.ParseClockTime(req.Time); err != nil {
		return nil, apperrors.Validation("Invalid time format. Use HH:MM")
	}
	if req.TotalSeats < 1 || req.TotalSeats > models.MaxSeats {
		return nil, apperrors.Validation(fmt.Sprintf("totalSeats must be between 1 and %d", models.MaxSeats))
	}
	if req.Password != s.adminPassword {
		return nil, apperrors.Unauthorized("Invalid password")
	}
	// Same-day events are rejected outright: bookings for today are never
	// accepted, so such an event could not be booked at all.
	if !date.After(validation.Today()) {
		return nil, apperrors.Validation("Event date must be in the future")
	}

	existing, err := s.events.GetByDate(ctx, date.String())
	if err != nil {
		return nil, fmt.Errorf("failed to check event date: %w", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("An event already exists for this date")
	}

	event := &models.Event{
		Name:          req.Name,
		Date:          date.String(),
		Time:          req.Time,
		Description:   req.Description,
		Venue:         req.Venue,
		AdminPassword: req.Password,
		TotalSeats:    req.TotalSeats,
	}

	if err := s.events.CreateWithSeats(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.publish(ctx, models.SubjectEventCreated, models.EventCreatedEvent{
		EventID:    event.ID,
		Name:       event.Name,
		Date:       event.Date,
		TotalSeats: event.TotalSeats,
		Timestamp:  time.Now(),
	})

	return event, nil
}

// ListUpcoming returns events from today onward, soonest first.
func (s *EventService) ListUpcoming(ctx context.Context) ([]models.Event, error) {
	events, err := s.events.ListUpcoming(ctx, validation.Today().String())
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// Get returns one event by id. Events happening today are not individually
// viewable: their bookings are closed.
func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.NotFound("Event not found")
	}

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return nil, apperrors.NotFound("Event not found")
	}
	if event.Date == validation.Today().String() {
		return nil, apperrors.Validation("Same-day events are not available")
	}

	return event, nil
}

// Delete removes an event and its seats once the caller proves knowledge of
// the event's admin password and no seat carries a booking.
func (s *EventService) Delete(ctx context.Context, id, password string) error {
	if password == "" {
		return apperrors.Validation("Password is required")
	}
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NotFound("Event not found")
	}

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return apperrors.NotFound("Event not found")
	}
	if password != event.AdminPassword {
		return apperrors.Unauthorized("Invalid password")
	}

	if err := s.events.DeleteWithSeats(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.publish(ctx, models.SubjectEventDeleted, models.EventDeletedEvent{
		EventID:   event.ID,
		Date:      event.Date,
		Timestamp: time.Now(),
	})

	return nil
}

func (s *EventService) publish(ctx context.Context, subject string, data any) {
	if err := s.publisher.Publish(subject, data); err != nil {
		logger.WithContext(ctx).Error("Failed to publish event",
			"error", err,
			"subject", subject)
	}
}
