package database

import (
	"errors"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the cgo-free "sqlite" driver with database/sql
	_ "modernc.org/sqlite"
)

// ErrNotConfigured is returned by every write operation when the service was
// started without a DATABASE_URL. Reads degrade to empty results instead.
var ErrNotConfigured = errors.New("database is not configured")

// Handle wraps the gorm connection so that "no database" is a valid state
// rather than a startup failure. The public site renders from seeded fallback
// content in that state; only mutations are rejected.
type Handle struct {
	db *gorm.DB
}

// Open connects to PostgreSQL or SQLite depending on the DSN. An empty DSN
// yields an unconfigured handle, not an error.
func Open(dsn string) (*Handle, error) {
	if dsn == "" {
		log.Println("DATABASE_URL is empty, running unconfigured")
		return &Handle{}, nil
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		return &Handle{db: db}, nil
	}

	log.Println("Using SQLite:", dsn)
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
	if err != nil {
		return nil, err
	}

	// An in-memory SQLite database lives and dies with its connection, so the
	// pool must hold exactly one.
	if strings.Contains(dsn, ":memory:") {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	return &Handle{db: db}, nil
}

// FromDB wraps an existing connection. Used by tests and the seed command.
func FromDB(db *gorm.DB) *Handle {
	return &Handle{db: db}
}

func (h *Handle) Configured() bool {
	return h != nil && h.db != nil
}

// DB returns the underlying connection. Callers must check Configured first.
func (h *Handle) DB() *gorm.DB {
	return h.db
}
