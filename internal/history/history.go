// Package history keeps an optional SQLite record of pipeline runs and
// the assets each run wrote.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Mavwarf/assetgen/internal/paths"
	"github.com/Mavwarf/assetgen/internal/raster"

	_ "modernc.org/sqlite"
)

// Run statuses.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run is one pipeline invocation.
type Run struct {
	ID       string
	Pipeline string
	Started  time.Time
	Status   string
	Error    string
	Assets   int
}

// Store abstracts run history storage.
type Store interface {
	Record(run Run, assets []raster.Asset) (string, error)
	Runs(limit int) ([]Run, error)
	Assets(runID string) ([]raster.Asset, error)
	Clean(days int) (int, error)
	Clear() error
	Path() string
	Close() error
}

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the database at path and creates the schema.
func Open(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// PRAGMAs are per connection; one connection keeps foreign keys on.
	db.SetMaxOpenConns(1)

	// Set PRAGMAs before any DDL.
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	}

	ddl := `
CREATE TABLE IF NOT EXISTS runs (
    id        TEXT PRIMARY KEY,
    pipeline  TEXT NOT NULL,
    started   TEXT NOT NULL,
    status    TEXT NOT NULL,
    error     TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS assets (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id  TEXT    NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    seq     INTEGER NOT NULL,
    name    TEXT    NOT NULL,
    path    TEXT    NOT NULL,
    width   INTEGER NOT NULL,
    height  INTEGER NOT NULL,
    bytes   INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started DESC);
CREATE INDEX IF NOT EXISTS idx_assets_run   ON assets(run_id, seq);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Record stores run and its assets in one transaction. A missing run ID
// or start time is filled in; the stored ID is returned.
func (s *SQLiteStore) Record(run Run, assets []raster.Asset) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.Started.IsZero() {
		run.Started = time.Now()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO runs (id, pipeline, started, status, error) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Pipeline, run.Started.UTC().Format(timeLayout), run.Status, run.Error,
	); err != nil {
		return "", err
	}

	for i, a := range assets {
		if _, err := tx.Exec(
			`INSERT INTO assets (run_id, seq, name, path, width, height, bytes)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			run.ID, i+1, a.Name, a.Path, a.Width, a.Height, a.Bytes,
		); err != nil {
			return "", err
		}
	}

	return run.ID, tx.Commit()
}

// Runs returns the most recent runs first. limit <= 0 returns all.
func (s *SQLiteStore) Runs(limit int) ([]Run, error) {
	query := `SELECT r.id, r.pipeline, r.started, r.status, r.error,
		(SELECT COUNT(*) FROM assets a WHERE a.run_id = r.id)
		FROM runs r ORDER BY r.started DESC, r.rowid DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &r.Pipeline, &started, &r.Status, &r.Error, &r.Assets); err != nil {
			return nil, err
		}
		ts, err := time.Parse(timeLayout, started)
		if err != nil {
			return nil, fmt.Errorf("run %s: start time: %w", r.ID, err)
		}
		r.Started = ts
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Assets returns the assets of one run in write order.
func (s *SQLiteStore) Assets(runID string) ([]raster.Asset, error) {
	rows, err := s.db.Query(
		`SELECT name, path, width, height, bytes FROM assets WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []raster.Asset
	for rows.Next() {
		var a raster.Asset
		if err := rows.Scan(&a.Name, &a.Path, &a.Width, &a.Height, &a.Bytes); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// Clean removes runs older than days days and returns how many went.
func (s *SQLiteStore) Clean(days int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -days).UTC().Format(timeLayout)
	res, err := s.db.Exec(`DELETE FROM runs WHERE started < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// Clear deletes all history.
func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM runs`)
	return err
}

func (s *SQLiteStore) Path() string {
	return s.path
}
