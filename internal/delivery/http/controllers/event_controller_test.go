package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studentevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeEventService struct {
	createErr  error
	getEvent   *domain.Event
	getErr     error
	updated    *domain.Event
	updateErr  error
	approved   *domain.Event
	approveErr error
	rejected   *domain.Event
	rejectErr  error
	deleteErr  error

	deletedID int64
}

func (f *fakeEventService) CreateEvent(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = 7
	e.Status = domain.StatusPending
	e.CreatedAt = "2024-04-20"
	return nil
}

func (f *fakeEventService) GetEventByID(ctx context.Context, id int64) (*domain.Event, error) {
	return f.getEvent, f.getErr
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, id int64, e *domain.Event) (*domain.Event, error) {
	return f.updated, f.updateErr
}

func (f *fakeEventService) ApproveEvent(ctx context.Context, id int64) (*domain.Event, error) {
	return f.approved, f.approveErr
}

func (f *fakeEventService) RejectEvent(ctx context.Context, id int64) (*domain.Event, error) {
	return f.rejected, f.rejectErr
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

type fakeQueryService struct {
	events []*domain.Event
	counts *domain.EventCounts
	err    error

	keyword string
}

func (f *fakeQueryService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return f.events, f.err
}

func (f *fakeQueryService) ListApprovedEvents(ctx context.Context) ([]*domain.Event, error) {
	return f.events, f.err
}

func (f *fakeQueryService) ListRecentEvents(ctx context.Context) ([]*domain.Event, error) {
	return f.events, f.err
}

func (f *fakeQueryService) SearchEvents(ctx context.Context, keyword string) ([]*domain.Event, error) {
	f.keyword = keyword
	return f.events, f.err
}

func (f *fakeQueryService) CountEvents(ctx context.Context) (*domain.EventCounts, error) {
	return f.counts, f.err
}

// envelope mirrors the response shape for decoding in assertions.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func sampleEvent() *domain.Event {
	return &domain.Event{
		ID:        7,
		Title:     "Hack Night",
		Date:      "2024-05-01",
		Time:      "18:00",
		Location:  "Lab 3",
		Status:    domain.StatusPending,
		CreatedAt: "2024-04-20",
	}
}

func TestEventController_CreateEvent(t *testing.T) {
	ctrl := NewEventController(testLogger, &fakeEventService{}, &fakeQueryService{})

	body := `{"title":"Hack Night","date":"2024-05-01","time":"18:00","location":"Lab 3"}`
	req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.CreateEvent(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	require.Nil(t, env.Error)

	var got domain.Event
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, domain.StatusPending, got.Status)
}

func TestEventController_CreateEvent_ValidationErrors(t *testing.T) {
	ctrl := NewEventController(testLogger, &fakeEventService{}, &fakeQueryService{})

	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"date":"2024-05-01","time":"18:00","location":"Lab 3"}`},
		{"bad date format", `{"title":"x","date":"01/05/2024","time":"18:00","location":"Lab 3"}`},
		{"bad time format", `{"title":"x","date":"2024-05-01","time":"6pm","location":"Lab 3"}`},
		{"unknown field", `{"title":"x","date":"2024-05-01","time":"18:00","location":"Lab 3","organizer":"me"}`},
		{"not json", `title=x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			ctrl.CreateEvent(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, "bad_request", env.Error.Code)
		})
	}
}

func TestEventController_GetEvent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := NewEventController(testLogger, &fakeEventService{getEvent: sampleEvent()}, &fakeQueryService{})

		req := httptest.NewRequest(http.MethodGet, "/api/events/7", nil)
		req.SetPathValue("id", "7")
		rec := httptest.NewRecorder()
		ctrl.GetEvent(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		require.Nil(t, env.Error)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := NewEventController(testLogger, &fakeEventService{getErr: domain.ErrNotFound}, &fakeQueryService{})

		req := httptest.NewRequest(http.MethodGet, "/api/events/99", nil)
		req.SetPathValue("id", "99")
		rec := httptest.NewRecorder()
		ctrl.GetEvent(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "not_found", env.Error.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		ctrl := NewEventController(testLogger, &fakeEventService{}, &fakeQueryService{})

		req := httptest.NewRequest(http.MethodGet, "/api/events/abc", nil)
		req.SetPathValue("id", "abc")
		rec := httptest.NewRecorder()
		ctrl.GetEvent(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEventController_UpdateEvent_NotFound(t *testing.T) {
	ctrl := NewEventController(testLogger, &fakeEventService{updateErr: domain.ErrNotFound}, &fakeQueryService{})

	body := `{"title":"x","date":"2024-05-01","time":"18:00","location":"y","status":"PENDING"}`
	req := httptest.NewRequest(http.MethodPut, "/api/events/99", strings.NewReader(body))
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()
	ctrl.UpdateEvent(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEventController_DeleteEvent(t *testing.T) {
	svc := &fakeEventService{}
	ctrl := NewEventController(testLogger, svc, &fakeQueryService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/events/7", nil)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()
	ctrl.DeleteEvent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.deletedID)

	env := decodeEnvelope(t, rec)
	var resp DeleteEventResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "Event deleted successfully", resp.Message)
}

func TestEventController_ApproveEvent(t *testing.T) {
	approved := sampleEvent()
	approved.Status = domain.StatusApproved
	ctrl := NewEventController(testLogger, &fakeEventService{approved: approved}, &fakeQueryService{})

	req := httptest.NewRequest(http.MethodPut, "/api/events/7/approve", nil)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()
	ctrl.ApproveEvent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var got domain.Event
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, domain.StatusApproved, got.Status)
}

func TestEventController_SearchEvents_PassesKeyword(t *testing.T) {
	queries := &fakeQueryService{events: []*domain.Event{sampleEvent()}}
	ctrl := NewEventController(testLogger, &fakeEventService{}, queries)

	req := httptest.NewRequest(http.MethodGet, "/api/events/search?keyword=hack", nil)
	rec := httptest.NewRecorder()
	ctrl.SearchEvents(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hack", queries.keyword)
}

func TestEventController_CountEvents(t *testing.T) {
	queries := &fakeQueryService{counts: &domain.EventCounts{Approved: 3, Pending: 1, Rejected: 1, Total: 5}}
	ctrl := NewEventController(testLogger, &fakeEventService{}, queries)

	req := httptest.NewRequest(http.MethodGet, "/api/events/count", nil)
	rec := httptest.NewRecorder()
	ctrl.CountEvents(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	var counts domain.EventCounts
	require.NoError(t, json.Unmarshal(env.Data, &counts))
	assert.Equal(t, int64(5), counts.Total)
}

func TestEventController_ListEvents_InternalError(t *testing.T) {
	ctrl := NewEventController(testLogger, &fakeEventService{}, &fakeQueryService{err: errors.New("db down")})

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	ctrl.ListEvents(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "internal_error", env.Error.Code)
}
