// internal/db/initdb.go
package db

import (
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"strings"

	_ "github.com/lib/pq"
)

// CreateDatabaseIfNotExists connects to the maintenance database and
// creates the target database when it is missing. Connection strings are
// expected in URL form (postgres://...), which is what config.Load emits.
func CreateDatabaseIfNotExists(connString string) error {
	u, err := url.Parse(connString)
	if err != nil {
		return fmt.Errorf("failed to parse connection string: %w", err)
	}
	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return fmt.Errorf("connection string has no database name")
	}

	rootURL := *u
	rootURL.Path = "/postgres"

	db, err := sql.Open("postgres", rootURL.String())
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT 1 FROM pg_database WHERE datname = $1", dbName).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if !exists {
		log.Printf("Creating database: %s", dbName)
		if _, err = db.Exec("CREATE DATABASE " + dbName); err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
	}

	return nil
}
