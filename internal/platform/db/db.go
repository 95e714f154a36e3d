package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open opens a *sql.DB through driverName ("pgx" or "sqlite"), tunes the
// pool, and verifies connectivity with a ping before returning.
func Open(driverName, dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("openDB: open %s database: %w", driverName, err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify %s connection: %w", driverName, err)
	}

	return db, nil
}
