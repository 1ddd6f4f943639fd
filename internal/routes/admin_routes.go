// internal/routes/admin_routes.go
package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	"promomusic/internal/config"
	"promomusic/internal/handlers"
	"promomusic/internal/middleware"
	"promomusic/internal/repository"
	"promomusic/internal/services"
)

func RegisterAdminRoutes(router chi.Router, db *sql.DB, cfg *config.Config, notifier services.Notifier) {
	bannerRepo := repository.NewBannerRepository(db)
	adminHandler := handlers.NewAdminBannerHandler(bannerRepo, notifier)

	router.Route("/admin/banners", func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Use(middleware.RequireAdmin)

		r.Get("/", adminHandler.ListAllBanners)
		r.Post("/sweep-completed", adminHandler.SweepCompleted)
		r.Put("/{id}/approve", adminHandler.ApproveBanner)
		r.Put("/{id}/reject", adminHandler.RejectBanner)
	})
}
