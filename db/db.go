package db

import (
	"fmt"

	"github.com/Rachana0206/dream-frame-studio/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// InitDB opens the database connection, verifies it, and hands the single
// process-wide handle back to the caller. The caller owns closing it.
func InitDB(dsn string) (*sqlx.DB, error) {
	logger.Log.Info("[db] Attempting to open database connection...")

	conn, err := sqlx.Open("postgres", dsn)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[db] Error opening database: %v", err))
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Connection pool tuning
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)

	logger.Log.Info("[db] Pinging database to verify connection...")
	if err = conn.Ping(); err != nil {
		conn.Close()
		logger.Log.Error(fmt.Sprintf("[db] Failed to ping database: %v", err))
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	logger.Log.Info("[db] Successfully connected to PostgreSQL!")
	return conn, nil
}
