// Package store keeps named layouts and their last rendering in SQLite
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/glebarez/sqlite"
)

// ErrNotFound is returned when no layout has the requested name
var ErrNotFound = errors.New("layout not found")

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
}

// Layout is a stored layout: its source text and the rows it rendered to
type Layout struct {
	Name      string
	Source    string
	Rendered  []string
	UpdatedAt time.Time
}

// Open opens the SQLite database, creating it and its tables if needed
func Open(dbPath string) (*DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode so `render --watch` and other commands can share the file
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	db := &DB{DB: sqlDB}

	if err := db.createTables(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// createTables creates the necessary database tables
func (db *DB) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS layouts (
		name TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		rendered TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_updated_at ON layouts(updated_at DESC);
	`

	_, err := db.Exec(query)
	return err
}

// SaveLayout saves or replaces a layout. A zero UpdatedAt is set to now.
func (db *DB) SaveLayout(l Layout) error {
	if l.Name == "" {
		return errors.New("layout name is required")
	}
	if l.UpdatedAt.IsZero() {
		l.UpdatedAt = time.Now()
	}

	query := `
	INSERT INTO layouts (name, source, rendered, updated_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(name) DO UPDATE SET
		source = excluded.source,
		rendered = excluded.rendered,
		updated_at = excluded.updated_at
	`

	_, err := db.Exec(query, l.Name, l.Source, strings.Join(l.Rendered, "\n"), l.UpdatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save layout %q: %w", l.Name, err)
	}
	return nil
}

// GetLayout retrieves a layout by name
func (db *DB) GetLayout(name string) (*Layout, error) {
	query := `
	SELECT name, source, rendered, updated_at
	FROM layouts
	WHERE name = ?
	`

	l, err := scanLayout(db.QueryRow(query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get layout %q: %w", name, err)
	}
	return l, nil
}

// ListLayouts returns up to limit layouts, most recently updated first. A
// limit of zero or less lists every layout.
func (db *DB) ListLayouts(limit int) ([]Layout, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `
	SELECT name, source, rendered, updated_at
	FROM layouts
	ORDER BY updated_at DESC, name ASC
	LIMIT ?
	`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}
	defer rows.Close()

	var layouts []Layout
	for rows.Next() {
		l, err := scanLayout(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read layout: %w", err)
		}
		layouts = append(layouts, *l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}

	return layouts, nil
}

// DeleteLayout deletes a layout by name
func (db *DB) DeleteLayout(name string) error {
	res, err := db.Exec("DELETE FROM layouts WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete layout %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLayout(s scanner) (*Layout, error) {
	var l Layout
	var rendered string
	var ts int64
	if err := s.Scan(&l.Name, &l.Source, &rendered, &ts); err != nil {
		return nil, err
	}
	if rendered != "" {
		l.Rendered = strings.Split(rendered, "\n")
	}
	l.UpdatedAt = time.Unix(ts, 0)
	return &l, nil
}
