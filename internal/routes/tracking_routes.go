// internal/routes/tracking_routes.go
package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"promomusic/internal/handlers"
	"promomusic/internal/repository"
)

// Tracking endpoints are unauthenticated: they are hit by the public ad
// display path.
func RegisterTrackingRoutes(router chi.Router, db *sql.DB) {
	trackingHandler := handlers.NewTrackingHandler(repository.NewBannerRepository(db))

	router.Route("/track/banners/{id}", func(r chi.Router) {
		r.Post("/view", trackingHandler.RecordView)
		r.Post("/click", trackingHandler.RecordClick)
	})
}
