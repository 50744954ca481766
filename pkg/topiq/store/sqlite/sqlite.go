// Package sqlite is the SQLite-backed store.Store, for keeping extraction
// run snapshots across process restarts.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/trendlens/topiq/pkg/topiq/freq"
	"github.com/trendlens/topiq/pkg/topiq/store"
)

// sqliteStore implements store.Store using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite run store with WAL mode enabled.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL for concurrent readers during analysis runs.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	documents INTEGER NOT NULL,
	topics TEXT NOT NULL,
	keywords TEXT NOT NULL,
	fallback INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun inserts or replaces a run, keyed by ID.
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return nil
	}

	topics, err := json.Marshal(r.Topics)
	if err != nil {
		return fmt.Errorf("encode topics: %w", err)
	}
	keywords, err := json.Marshal(r.Keywords)
	if err != nil {
		return fmt.Errorf("encode keywords: %w", err)
	}

	fallback := 0
	if r.Fallback {
		fallback = 1
	}
	created := r.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO runs (id, source, documents, topics, keywords, fallback, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	source = excluded.source,
	documents = excluded.documents,
	topics = excluded.topics,
	keywords = excluded.keywords,
	fallback = excluded.fallback,
	created_at = excluded.created_at`,
		r.ID, r.Source, r.Documents, string(topics), string(keywords),
		fallback, created.UTC().Format(time.RFC3339Nano))
	return err
}

// GetRun returns a run by ID.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, source, documents, topics, keywords, fallback, created_at
FROM runs WHERE id = ?`, id)

	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return store.Run{}, false, nil
	}
	if err != nil {
		return store.Run{}, false, err
	}
	return r, true, nil
}

// ListRuns returns up to limit runs, newest first.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, source, documents, topics, keywords, fallback, created_at
FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []store.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (store.Run, error) {
	var (
		r         store.Run
		topics    string
		keywords  string
		fallback  int
		createdAt string
	)
	if err := s.Scan(&r.ID, &r.Source, &r.Documents, &topics, &keywords, &fallback, &createdAt); err != nil {
		return store.Run{}, err
	}
	if err := json.Unmarshal([]byte(topics), &r.Topics); err != nil {
		return store.Run{}, fmt.Errorf("decode topics: %w", err)
	}
	if err := json.Unmarshal([]byte(keywords), &r.Keywords); err != nil {
		return store.Run{}, fmt.Errorf("decode keywords: %w", err)
	}
	r.Fallback = fallback != 0
	if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		r.CreatedAt = t
	}
	// Keep nil-vs-empty stable for callers comparing runs.
	if r.Keywords == nil {
		r.Keywords = []freq.Keyword{}
	}
	return r, nil
}
