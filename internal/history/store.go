// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records apply runs in a local SQLite database so a
// translator can see which ranges of a dump have already been grafted.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/locgraft/pkg/types"
)

const defaultLimit = 20

// Run is one recorded apply invocation.
type Run struct {
	ID         int64     `json:"id" yaml:"id"`
	Source     string    `json:"source" yaml:"source"`
	Target     string    `json:"target" yaml:"target"`
	Start      int       `json:"start" yaml:"start"`
	End        int       `json:"end" yaml:"end"`
	Considered int       `json:"considered" yaml:"considered"`
	Converted  int       `json:"converted" yaml:"converted"`
	DryRun     bool      `json:"dry_run" yaml:"dry_run"`
	AppliedAt  time.Time `json:"applied_at" yaml:"applied_at"`
}

// Store manages the history database.
type Store struct {
	db    *sql.DB
	limit int
}

// Open opens or creates the history database at cfg.DBPath and creates the
// schema if it does not exist.
func Open(cfg types.HistoryConfig) (*Store, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("history database path not configured")
	}
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	limit := cfg.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	s := &Store{db: db, limit: limit}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			target TEXT NOT NULL,
			start_line INTEGER NOT NULL,
			end_line INTEGER NOT NULL,
			considered INTEGER NOT NULL,
			converted INTEGER NOT NULL,
			dry_run INTEGER NOT NULL,
			applied_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_target ON runs(target)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores r and returns its assigned ID. A zero AppliedAt is set to
// the current time.
func (s *Store) Record(ctx context.Context, r Run) (int64, error) {
	if r.AppliedAt.IsZero() {
		r.AppliedAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (source, target, start_line, end_line, considered, converted, dry_run, applied_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Source, r.Target, r.Start, r.End, r.Considered, r.Converted, r.DryRun,
		r.AppliedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	return res.LastInsertId()
}

// List returns up to limit runs, newest first. A limit of zero or less
// uses the configured default.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.limit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, target, start_line, end_line, considered, converted, dry_run, applied_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r  Run
			ts string
		)
		if err := rows.Scan(&r.ID, &r.Source, &r.Target, &r.Start, &r.End,
			&r.Considered, &r.Converted, &r.DryRun, &ts); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.AppliedAt, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing applied_at %q: %w", ts, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
