package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"studentevents/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	notifyEmail    string
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewEventService creates the lifecycle service. emailService may be nil or
// notifyEmail empty, in which case no submission notices are sent.
func NewEventService(eventRepo domain.EventRepository,
	emailService domain.EmailService,
	notifyEmail string,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		emailService:   emailService,
		notifyEmail:    notifyEmail,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// validateEvent checks the required fields and the date/time formats before
// anything reaches the store, so a malformed payload surfaces as
// ErrInvalidInput rather than a column constraint violation.
func validateEvent(e *domain.Event) error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(e.Location) == "" {
		return fmt.Errorf("%w: location is required", domain.ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateLayout, e.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if _, err := time.Parse(domain.TimeLayout, e.Time); err != nil {
		return fmt.Errorf("%w: time must be HH:MM", domain.ErrInvalidInput)
	}
	return nil
}

// CreateEvent inserts a new submission. Whatever the caller supplied for
// status and created_at is ignored: every new event starts PENDING and
// created_at is the current date.
func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateEvent(event); err != nil {
		return err
	}
	event.Status = domain.StatusPending
	event.CreatedAt = time.Now().Format(domain.DateLayout)

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	s.sendSubmissionNotice(ctx, event)
	return nil
}

// sendSubmissionNotice tells the moderators about a new submission. Failures
// are logged and never surfaced to the submitter.
func (s *eventService) sendSubmissionNotice(ctx context.Context, event *domain.Event) {
	if s.emailService == nil || s.notifyEmail == "" {
		return
	}
	data := &domain.SubmissionNoticeEmailData{
		To:       s.notifyEmail,
		Title:    event.Title,
		Date:     event.Date,
		Time:     event.Time,
		Location: event.Location,
	}
	if err := s.emailService.SendSubmissionNotice(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "submission notice not sent", "event_id", event.ID, "err", err)
	}
}

func (s *eventService) GetEventByID(ctx context.Context, id int64) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// UpdateEvent overwrites all mutable fields with the payload's values. ID and
// created_at are untouched.
func (s *eventService) UpdateEvent(ctx context.Context, id int64, payload *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateEvent(payload); err != nil {
		return nil, err
	}
	if !payload.Status.Valid() {
		return nil, fmt.Errorf("%w: status must be PENDING, APPROVED, or REJECTED", domain.ErrInvalidInput)
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	event.Title = payload.Title
	event.Description = payload.Description
	event.Date = payload.Date
	event.Time = payload.Time
	event.Location = payload.Location
	event.Status = payload.Status

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) ApproveEvent(ctx context.Context, id int64) (*domain.Event, error) {
	return s.setStatus(ctx, id, domain.StatusApproved)
}

func (s *eventService) RejectEvent(ctx context.Context, id int64) (*domain.Event, error) {
	return s.setStatus(ctx, id, domain.StatusRejected)
}

// setStatus applies a moderation decision unconditionally. There is no
// transition graph beyond the three-valued domain: a rejected event may be
// approved later and vice versa, and repeating a decision is a no-op write.
func (s *eventService) setStatus(ctx context.Context, id int64, status domain.Status) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	event.Status = status
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("set event status: %w", err)
	}
	return event, nil
}

// DeleteEvent removes the event permanently. Deleting an absent id succeeds.
func (s *eventService) DeleteEvent(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
