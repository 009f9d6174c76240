package domain

import (
	"context"
	"errors"
)

// Sentinel errors shared across services.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Status is the moderation status of an event.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Date and time-of-day layouts used throughout the service.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Event represents a submitted event going through moderation.
// Date and Time are ISO strings ("2006-01-02", "15:04"); the store persists
// them as DATE/TIME columns. CreatedAt is the submission date and is never
// changed by updates.
// swagger:model Event
type Event struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Status      Status `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the
// repository on create; Status and CreatedAt are set by the lifecycle service.
func NewEvent(title, description, date, timeOfDay, location string) *Event {
	return &Event{
		Title:       title,
		Description: description,
		Date:        date,
		Time:        timeOfDay,
		Location:    location,
	}
}

// EventCounts holds the per-status counts plus the total, computed fresh on
// every call.
// swagger:model EventCounts
type EventCounts struct {
	Approved int64 `json:"approved"`
	Pending  int64 `json:"pending"`
	Rejected int64 `json:"rejected"`
	Total    int64 `json:"total"`
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	// Delete is idempotent: deleting an absent id is not an error.
	Delete(ctx context.Context, id int64) error
	ListByStatus(ctx context.Context, status Status) ([]*Event, error)
	// ListByStatusOrdered returns events in the given status ordered by
	// (date, time) ascending.
	ListByStatusOrdered(ctx context.Context, status Status) ([]*Event, error)
	// ListExcludingStatus returns events not in the given status ordered by
	// (date, time) ascending.
	ListExcludingStatus(ctx context.Context, excluded Status) ([]*Event, error)
	// Search matches keyword case-insensitively against title or location,
	// skipping events in the excluded status. An empty keyword matches all.
	Search(ctx context.Context, keyword string, excluded Status) ([]*Event, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// EventService defines the lifecycle operations: creation, mutation, and the
// moderation transitions. Approve and reject are unconditional; any status may
// transition to any other so moderators can reverse decisions freely.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEventByID(ctx context.Context, id int64) (*Event, error)
	UpdateEvent(ctx context.Context, id int64, event *Event) (*Event, error)
	ApproveEvent(ctx context.Context, id int64) (*Event, error)
	RejectEvent(ctx context.Context, id int64) (*Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

// EventQueryService derives the presentation views from the store. Every call
// reflects the current store state; there is no caching layer.
type EventQueryService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	// ListApprovedEvents is the public feed: APPROVED only, (date, time) asc.
	ListApprovedEvents(ctx context.Context) ([]*Event, error)
	// ListRecentEvents is the internal upcoming view: everything but
	// REJECTED, (date, time) asc.
	ListRecentEvents(ctx context.Context) ([]*Event, error)
	SearchEvents(ctx context.Context, keyword string) ([]*Event, error)
	CountEvents(ctx context.Context) (*EventCounts, error)
}
