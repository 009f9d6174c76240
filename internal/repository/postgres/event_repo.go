package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"studentevents/internal/domain"
)

const eventColumns = "id, title, description, date, time, location, status, created_at"

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// scanEvent scans one row into a domain.Event, formatting the DATE/TIME
// columns into the ISO strings the domain uses.
func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	e := &domain.Event{}
	var descNull sql.NullString
	var date, timeOfDay, createdAt time.Time
	if err := scan(&e.ID, &e.Title, &descNull, &date, &timeOfDay, &e.Location, &e.Status, &createdAt); err != nil {
		return nil, err
	}
	if descNull.Valid {
		e.Description = descNull.String
	}
	e.Date = date.Format(domain.DateLayout)
	e.Time = timeOfDay.Format(domain.TimeLayout)
	e.CreatedAt = createdAt.Format(domain.DateLayout)
	return e, nil
}

func (r *eventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, date, time, location, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.Date, e.Time, e.Location, e.Status, e.CreatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
	`
	return r.queryEvents(ctx, query)
}

// Update replaces all mutable fields. ID and created_at are never touched.
func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, date = $3, time = $4, location = $5, status = $6
		WHERE id = $7
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.Title, e.Description, e.Date, e.Time, e.Location, e.Status, e.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the event. Deleting an absent id is not an error.
func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}

func (r *eventRepository) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE status = $1
	`
	return r.queryEvents(ctx, query, status)
}

func (r *eventRepository) ListByStatusOrdered(ctx context.Context, status domain.Status) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE status = $1
		ORDER BY date ASC, time ASC
	`
	return r.queryEvents(ctx, query, status)
}

func (r *eventRepository) ListExcludingStatus(ctx context.Context, excluded domain.Status) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE status <> $1
		ORDER BY date ASC, time ASC
	`
	return r.queryEvents(ctx, query, excluded)
}

func (r *eventRepository) Search(ctx context.Context, keyword string, excluded domain.Status) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE status <> $1
		  AND (title ILIKE '%' || $2 || '%' OR location ILIKE '%' || $2 || '%')
	`
	return r.queryEvents(ctx, query, excluded, keyword)
}

func (r *eventRepository) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	query := `SELECT COUNT(*) FROM events WHERE status = $1`
	var count int64
	err := r.DB.QueryRowContext(ctx, query, status).Scan(&count)
	return count, err
}

func (r *eventRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM events`
	var count int64
	err := r.DB.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}
