package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"studentevents/internal/delivery/http/helpers"
	"studentevents/internal/domain"
)

// EventRequest is the request body for POST /api/events and PUT
// /api/events/{id}. On create, status is ignored: every submission starts
// PENDING. On update, status is required and must be one of the three known
// values.
type EventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Status      string `json:"status"`
}

// Validate implements Validator. Returns error messages for required fields
// and date/time format rules.
func (e EventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(e.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(e.Location) == "" {
		errs = append(errs, "location is required")
	}
	if e.Date == "" {
		errs = append(errs, "date is required")
	} else if _, err := time.Parse(domain.DateLayout, e.Date); err != nil {
		errs = append(errs, "date must be YYYY-MM-DD")
	}
	if e.Time == "" {
		errs = append(errs, "time is required")
	} else if _, err := time.Parse(domain.TimeLayout, e.Time); err != nil {
		errs = append(errs, "time must be HH:MM")
	}
	return errs
}

func (e EventRequest) toDomain() *domain.Event {
	event := domain.NewEvent(e.Title, e.Description, e.Date, e.Time, e.Location)
	event.Status = domain.Status(e.Status)
	return event
}

// DeleteEventResponse is the acknowledgement body for DELETE /api/events/{id}.
type DeleteEventResponse struct {
	Message string `json:"message"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
	Queries domain.EventQueryService
}

func NewEventController(logger *slog.Logger, svc domain.EventService, queries domain.EventQueryService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		Queries: queries,
	}
}

// eventID parses the {id} path value. On failure it writes a 400 and returns
// false.
func eventID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid event id")
		return 0, false
	}
	return id, true
}

// writeServiceError maps service errors onto the response envelope.
func (c *EventController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

// ListEvents godoc
// @Summary List all events
// @Description Returns every event in store order, regardless of status.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the event list"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Queries.ListEvents(r.Context())
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// ListApprovedEvents godoc
// @Summary List approved events
// @Description Public feed: APPROVED events ordered by date then time, ascending.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the approved feed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/approved [get]
func (c *EventController) ListApprovedEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Queries.ListApprovedEvents(r.Context())
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// ListRecentEvents godoc
// @Summary List recent events
// @Description Upcoming view for moderators: everything except REJECTED, ordered by date then time, ascending.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the recent feed"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/recent [get]
func (c *EventController) ListRecentEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Queries.ListRecentEvents(r.Context())
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}
	event, err := c.Service.GetEventByID(r.Context(), id)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Submit a new event
// @Description Creates an event with status forced to PENDING and created_at set to the current date, whatever the caller supplied for those fields.
// @Tags events
// @Accept json
// @Produce json
// @Param event body EventRequest true "Event fields"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := req.toDomain()
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Full replace of title, description, date, time, location, and status. ID and created_at are untouched.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param event body EventRequest true "Event fields"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), id, req.toDomain())
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Permanent removal. Deleting an absent id still succeeds.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the acknowledgement message"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), id); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteEventResponse{Message: "Event deleted successfully"})
}

// ApproveEvent godoc
// @Summary Approve an event
// @Description Sets status APPROVED unconditionally; any current status, including REJECTED, may be approved.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the approved event"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{id}/approve [put]
func (c *EventController) ApproveEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}
	event, err := c.Service.ApproveEvent(r.Context(), id)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// RejectEvent godoc
// @Summary Reject an event
// @Description Sets status REJECTED unconditionally.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the rejected event"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{id}/reject [put]
func (c *EventController) RejectEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}
	event, err := c.Service.RejectEvent(r.Context(), id)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// SearchEvents godoc
// @Summary Search events
// @Description Case-insensitive substring match against title or location, over non-rejected events. An empty keyword matches all of them.
// @Tags events
// @Produce json
// @Param keyword query string false "Search keyword"
// @Success 200 {object} helpers.APIResponse "data contains the matching events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/search [get]
func (c *EventController) SearchEvents(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	events, err := c.Queries.SearchEvents(r.Context(), keyword)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// CountEvents godoc
// @Summary Event counts by status
// @Description Returns {approved, pending, rejected, total}, computed fresh.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the counts"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/count [get]
func (c *EventController) CountEvents(w http.ResponseWriter, r *http.Request) {
	counts, err := c.Queries.CountEvents(r.Context())
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, counts)
}
