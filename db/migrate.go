// db/migrate.go
package db

import (
	"fmt"

	"github.com/Rachana0206/dream-frame-studio/logger"

	"github.com/jmoiron/sqlx"
)

const createBookingsTableSQL = `
CREATE TABLE IF NOT EXISTS bookings (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL,
    service_type TEXT NOT NULL,
    event_date TEXT NOT NULL DEFAULT '',
    event_time TEXT NOT NULL DEFAULT '',
    message TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'pending',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

// RunMigrations executes all necessary database structure changes.
func RunMigrations(conn *sqlx.DB) error {
	if conn == nil {
		return fmt.Errorf("database connection is nil, call InitDB first")
	}

	if _, err := conn.Exec(createBookingsTableSQL); err != nil {
		return fmt.Errorf("error running bookings table migration: %w", err)
	}

	logger.Log.Info("[db] Migrations completed successfully.")
	return nil
}
