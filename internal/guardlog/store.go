package guardlog

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Store is a SQLite-backed guard ledger.
type Store struct {
	db *sql.DB
}

// Open creates or opens the ledger database at path. WAL mode keeps reads
// concurrent with the single writer; the pool is capped at one connection
// to avoid SQLITE_BUSY on writes.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("guardlog: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("guardlog: connect: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("guardlog: apply %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("guardlog: apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends one guard event to the ledger.
func (s *Store) Record(ev Event) error {
	_, err := s.db.Exec(
		`INSERT INTO guards (id, expr, kind, value, file, line, at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ev.ID.String(), ev.Expr, ev.Kind, ev.Value, ev.File, ev.Line, ev.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("guardlog: record event: %w", err)
	}
	return nil
}

// Events returns all recorded events, oldest first.
func (s *Store) Events(ctx context.Context) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, expr, kind, value, file, line, at FROM guards ORDER BY at, id`)
	if err != nil {
		return nil, fmt.Errorf("guardlog: query events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var ev Event
		var id, at string
		if err := rows.Scan(&id, &ev.Expr, &ev.Kind, &ev.Value, &ev.File, &ev.Line, &at); err != nil {
			return nil, fmt.Errorf("guardlog: scan event: %w", err)
		}
		ev.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("guardlog: parse event id %q: %w", id, err)
		}
		ev.At, err = time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("guardlog: parse event time %q: %w", at, err)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
