package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump when the schema
// changes; old journals are informational and safe to delete.
const schemaVersion = 1

// ErrSchemaMismatch indicates the journal was written by an incompatible
// version.
var ErrSchemaMismatch = errors.New("history schema version mismatch")

// Operation names recorded in the journal.
const (
	OpInstall   = "install"
	OpUninstall = "uninstall"
)

// Entry is one recorded install or uninstall.
type Entry struct {
	ID         int64
	Operation  string
	Preset     string
	DeviceID   string
	Generation string
	CreatedAt  time.Time
}

// Store is the sqlite-backed journal of install operations. It is an audit
// trail only: installation state itself is always recomputed from the
// filesystem, never read from here.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the journal database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// RecordInstall appends an install entry.
func (s *Store) RecordInstall(ctx context.Context, preset, deviceID, generation string) error {
	return s.record(ctx, OpInstall, preset, deviceID, generation)
}

// RecordUninstall appends an uninstall entry.
func (s *Store) RecordUninstall(ctx context.Context) error {
	return s.record(ctx, OpUninstall, "", "", "")
}

func (s *Store) record(ctx context.Context, op, preset, deviceID, generation string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO operations (operation, preset, device_id, generation, created_at)
         VALUES (?, ?, ?, ?, ?)`,
		op,
		nullableString(preset),
		nullableString(deviceID),
		nullableString(generation),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record %s: %w", op, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, operation, preset, device_id, generation, created_at
         FROM operations ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			preset     sql.NullString
			deviceID   sql.NullString
			generation sql.NullString
			createdAt  string
		)
		if err := rows.Scan(&e.ID, &e.Operation, &preset, &deviceID, &generation, &createdAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.Preset = preset.String
		e.DeviceID = deviceID.String
		e.Generation = generation.String
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			e.CreatedAt = ts
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := s.db.ExecContext(ctx,
			"INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("write schema version: %w", err)
		}
		return nil
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to reset)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
