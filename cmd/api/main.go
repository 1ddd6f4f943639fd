// cmd/api/main.go
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"promomusic/internal/config"
	"promomusic/internal/db"
	"promomusic/internal/db/migrations"
	"promomusic/internal/models"
	"promomusic/internal/repository"
	"promomusic/internal/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Create database if it doesn't exist
	if err := db.CreateDatabaseIfNotExists(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to ensure database exists: %v", err)
	}

	// Initialize database
	database, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run database migrations
	if err := migrations.RunMigrations(database.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seedAdminUser(database.DB, cfg); err != nil {
		log.Printf("Failed to seed admin user: %v", err)
	}

	s3Config, err := config.NewS3Config()
	if err != nil {
		log.Fatalf("Failed to configure S3: %v", err)
	}

	// Create router and setup routes
	router := routes.SetupRoutes(database.DB, cfg, s3Config)

	// Create server
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give server 5 seconds to finish current requests
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

// seedAdminUser creates the moderation account from ADMIN_EMAIL and
// ADMIN_PASSWORD when it does not exist yet.
func seedAdminUser(database *sql.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	users := repository.NewUserRepository(database)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := users.GetByEmail(ctx, cfg.AdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		ID:           uuid.NewString(),
		Email:        cfg.AdminEmail,
		Name:         "Moderation",
		Role:         models.RoleAdmin,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("Seeded admin user %s", cfg.AdminEmail)
	return nil
}
