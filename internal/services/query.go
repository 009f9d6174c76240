package services

import (
	"context"
	"fmt"
	"time"

	"studentevents/internal/domain"
)

type eventQueryService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewEventQueryService creates the read-side service. All queries are pure
// reads against the store with no caching.
func NewEventQueryService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventQueryService {
	return &eventQueryService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *eventQueryService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventQueryService) ListApprovedEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListByStatusOrdered(ctx, domain.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("list approved events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventQueryService) ListRecentEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListExcludingStatus(ctx, domain.StatusRejected)
	if err != nil {
		return nil, fmt.Errorf("list recent events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventQueryService) SearchEvents(ctx context.Context, keyword string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.Search(ctx, keyword, domain.StatusRejected)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

// CountEvents computes the per-status counts and the total fresh on every
// call; nothing is maintained incrementally.
func (s *eventQueryService) CountEvents(ctx context.Context) (*domain.EventCounts, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	counts := &domain.EventCounts{}
	var err error
	if counts.Approved, err = s.eventRepo.CountByStatus(ctx, domain.StatusApproved); err != nil {
		return nil, fmt.Errorf("count approved: %w", err)
	}
	if counts.Pending, err = s.eventRepo.CountByStatus(ctx, domain.StatusPending); err != nil {
		return nil, fmt.Errorf("count pending: %w", err)
	}
	if counts.Rejected, err = s.eventRepo.CountByStatus(ctx, domain.StatusRejected); err != nil {
		return nil, fmt.Errorf("count rejected: %w", err)
	}
	if counts.Total, err = s.eventRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count total: %w", err)
	}
	return counts, nil
}
