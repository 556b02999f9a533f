package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// tableNames lists the tables the schema owns, used by HasSchema/HasData.
var tableNames = []string{"callsigns", "qsos"}

// Store provides durable storage for the logbook.
// Uses SQLite with WAL mode; a single connection serves the single-writer
// CLI process.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path and applies
// required pragmas. It does NOT create the schema; call CreateSchema for
// that. Opening an existing database never alters its contents.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify connection works
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// CreateSchema creates both tables if absent. Idempotent: re-running
// against an existing schema is a no-op and never drops or alters it.
//
// Callers creating schema on a target that already holds data are
// expected to confirm intent first (see HasData); that gate lives in the
// CLI, not here, because the operation itself is non-destructive.
func (s *Store) CreateSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// HasSchema reports whether both logbook tables exist.
func (s *Store) HasSchema(ctx context.Context) (bool, error) {
	for _, table := range tableNames {
		var name string
		err := s.db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?",
			table,
		).Scan(&name)
		if err == sql.ErrNoRows {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("check schema: %w", err)
		}
	}
	return true, nil
}

// HasData reports whether the schema exists and either table holds rows.
// Backs the CLI's confirmation gate before re-running schema creation on
// a non-empty target.
func (s *Store) HasData(ctx context.Context) (bool, error) {
	ok, err := s.HasSchema(ctx)
	if err != nil || !ok {
		return false, err
	}
	for _, table := range tableNames {
		var count int
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			return false, fmt.Errorf("count %s: %w", table, err)
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
