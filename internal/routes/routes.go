// internal/routes/routes.go
package routes

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"promomusic/internal/config"
	"promomusic/internal/services"
)

func SetupRoutes(db *sql.DB, cfg *config.Config, s3Config *config.S3Config) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "PROMO.MUSIC ads API",
			"docs":    "/swagger",
		})
	})

	r.Get("/health", healthHandler(db))

	RegisterSwaggerRoutes(r)

	notifier := services.NewBannerNotifier(services.NewSMTPSender(cfg), cfg.AdminEmail, cfg.NotifyTimeout)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		RegisterAuthRoutes(r, db, cfg)
		RegisterBannerRoutes(r, db, cfg, notifier)
		RegisterAdminRoutes(r, db, cfg, notifier)
		RegisterTrackingRoutes(r, db)
		RegisterArtworkRoutes(r, cfg, s3Config)
	})

	return r
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	type dbStatus struct {
		Status string `json:"status"`
		Error  string `json:"error,omitempty"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		dbs := dbStatus{Status: "ok"}
		if err := db.PingContext(ctx); err != nil {
			status = http.StatusServiceUnavailable
			dbs = dbStatus{Status: "down", Error: err.Error()}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": dbs.Status,
			"db":     dbs,
		})
	}
}
