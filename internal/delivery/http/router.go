package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"studentevents/internal/delivery/http/controllers"
	"studentevents/internal/delivery/http/middleware"
	"studentevents/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Submission and the read feeds are public; moderation decisions and admin
// lookup require a Bearer token issued at login.
func NewRouter(eventController *controllers.EventController,
	adminController *controllers.AdminController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Events
	mux.HandleFunc("GET /api/events", eventController.ListEvents)
	mux.HandleFunc("GET /api/events/approved", eventController.ListApprovedEvents)
	mux.HandleFunc("GET /api/events/recent", eventController.ListRecentEvents)
	mux.HandleFunc("GET /api/events/search", eventController.SearchEvents)
	mux.HandleFunc("GET /api/events/count", eventController.CountEvents)
	mux.HandleFunc("GET /api/events/{id}", eventController.GetEvent)
	mux.HandleFunc("POST /api/events", eventController.CreateEvent)
	mux.HandleFunc("PUT /api/events/{id}", auth(eventController.UpdateEvent))
	mux.HandleFunc("DELETE /api/events/{id}", auth(eventController.DeleteEvent))
	mux.HandleFunc("PUT /api/events/{id}/approve", auth(eventController.ApproveEvent))
	mux.HandleFunc("PUT /api/events/{id}/reject", auth(eventController.RejectEvent))

	// Admin
	mux.HandleFunc("POST /api/admin/login", adminController.Login)
	mux.HandleFunc("POST /api/admin/register", adminController.Register)
	mux.HandleFunc("GET /api/admin/{id}", auth(adminController.GetAdmin))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
