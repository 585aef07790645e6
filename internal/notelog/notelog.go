// Package notelog keeps a local SQLite history of the notes fmnotes has
// written. It never stores API responses.
package notelog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Log manages the note history database
type Log struct {
	db *sql.DB
}

// Entry represents one created note
type Entry struct {
	ID        int64
	Path      string    // Path of the note file
	Operation string    // recent, top or weekly
	Kind      string    // tracks, artists or albums
	Span      string    // Period token or chart range label
	Items     int       // Number of rendered records
	CreatedAt time.Time // When the note was written
}

// Open creates a note history backed by SQLite
func Open(dbPath string) (*Log, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps in-memory databases consistent
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL,
			operation TEXT NOT NULL,
			kind TEXT NOT NULL DEFAULT '',
			span TEXT NOT NULL DEFAULT '',
			items INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_notes_created ON notes(created_at);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Log{db: db}, nil
}

// Close closes the database connection
func (l *Log) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Add records a created note and returns its id
func (l *Log) Add(ctx context.Context, e Entry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO notes (path, operation, kind, span, items, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := l.db.ExecContext(ctx, query,
		e.Path,
		e.Operation,
		e.Kind,
		e.Span,
		e.Items,
		e.CreatedAt.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get insert id: %w", err)
	}

	return id, nil
}

// List returns the most recently created notes first.
// A non-positive limit returns every entry.
func (l *Log) List(ctx context.Context, limit int) ([]Entry, error) {
	query := `
		SELECT id, path, operation, kind, span, items, created_at
		FROM notes
		ORDER BY created_at DESC, id DESC
	`

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := l.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdUnix int64

		err := rows.Scan(
			&e.ID,
			&e.Path,
			&e.Operation,
			&e.Kind,
			&e.Span,
			&e.Items,
			&createdUnix,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}

		e.CreatedAt = time.Unix(createdUnix, 0)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}

	return entries, nil
}

// Count returns the number of recorded notes
func (l *Log) Count(ctx context.Context) (int, error) {
	var count int
	err := l.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM notes").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}

	return count, nil
}

// Cleanup removes entries older than maxAge and returns how many were deleted
func (l *Log) Cleanup(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge).Unix()

	result, err := l.db.ExecContext(ctx, "DELETE FROM notes WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup notes: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}
