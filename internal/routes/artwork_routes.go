// internal/routes/artwork_routes.go
package routes

import (
	"github.com/go-chi/chi/v5"
	"promomusic/internal/config"
	"promomusic/internal/handlers"
	"promomusic/internal/middleware"
)

func RegisterArtworkRoutes(router chi.Router, cfg *config.Config, s3Config *config.S3Config) {
	artworkHandler := handlers.NewArtworkHandler(s3Config)

	router.Route("/artwork", func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))

		r.Post("/upload", artworkHandler.UploadArtwork)
	})
}
