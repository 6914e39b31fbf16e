// Package history keeps a durable record of applied filter strings so users
// can see and recover what they enabled and when. Recording is best-effort:
// a missing or locked database never interferes with applying a filter.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// Entry is one applied filter.
type Entry struct {
	Filter    string
	Source    string
	AppliedAt time.Time
}

// Known sources for entries.
const (
	SourceCLI    = "cli"
	SourceEnv    = "env"
	SourceHotkey = "hotkey"
	SourceWatch  = "watch"
)

type History struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at dbPath.
func Open(dbPath string) (*History, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("applying pragma %q: %w", pragma, err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS filters (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			filter TEXT NOT NULL,
			source TEXT NOT NULL,
			applied_at TIMESTAMP NOT NULL
		)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db}, nil
}

func (h *History) Close() error {
	return h.db.Close()
}

// Record stores one applied filter. The empty filter is recorded too; it
// documents a disable.
func (h *History) Record(filter, source string) error {
	_, err := h.db.Exec(
		"INSERT INTO filters (filter, source, applied_at) VALUES (?, ?, ?)",
		filter, source, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("recording filter: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (h *History) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := h.db.Query(
		"SELECT filter, source, applied_at FROM filters ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var applied string
		if err := rows.Scan(&e.Filter, &e.Source, &applied); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, applied); err == nil {
			e.AppliedAt = ts
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history rows: %w", err)
	}
	return entries, nil
}
