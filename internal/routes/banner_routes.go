// internal/routes/banner_routes.go
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

func RegisterBannerRoutes(router chi.Router, db *sql.DB, cfg *config.Config, notifier services.Notifier) {
	bannerRepo := repository.NewBannerRepository(db)
	bannerHandler := handlers.NewBannerHandler(bannerRepo, notifier)

	router.Route("/banners", func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))

		r.Post("/", bannerHandler.SubmitBanner)
		r.Get("/", bannerHandler.ListMyBanners)
		r.Get("/stats", bannerHandler.MyBannerStats)
		r.Get("/{id}", bannerHandler.GetBanner)
	})
}
