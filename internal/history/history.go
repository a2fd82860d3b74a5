// Package history provides SQLite-based storage of past check runs so
// reviewers can see how a submission evolved between attempts.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/codegauntlet/gauntlet/internal/rules"
	"github.com/codegauntlet/gauntlet/pkg/check"
)

// Run is one recorded check run.
type Run struct {
	ID          string
	Repo        string
	Reference   string
	Token       string
	Halted      bool
	HaltedGroup string
	Outcomes    []check.Outcome
	CreatedAt   time.Time
}

// Store wraps an SQLite database holding run history.
type Store struct {
	conn *sql.DB
	path string
	mu   sync.RWMutex
}

// Open opens the history database at the given path, creating parent
// directories if needed. WAL mode is enabled for concurrent reads.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	s := &Store{
		conn: conn,
		path: path,
	}

	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.Close()
}

// Path returns the path to the database file.
func (s *Store) Path() string {
	return s.path
}

// migrate applies all pending schema migrations.
func (s *Store) migrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_version table: %w", err)
	}

	var currentVersion int
	row := s.conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("get schema version: %w", err)
	}

	migrations := []struct {
		version int
		sql     string
	}{
		{1, migrationV1Runs},
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}

		tx, err := s.conn.Begin()
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			tx.Rollback()
			return fmt.Errorf("apply migration v%d: %w", m.version, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", m.version); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration v%d: %w", m.version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration v%d: %w", m.version, err)
		}
	}

	return nil
}

const migrationV1Runs = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	repo TEXT NOT NULL,
	reference TEXT NOT NULL DEFAULT '',
	token TEXT NOT NULL DEFAULT '',
	halted INTEGER NOT NULL DEFAULT 0,
	halted_group TEXT NOT NULL DEFAULT '',
	outcomes TEXT NOT NULL DEFAULT '[]',
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_repo ON runs(repo);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`

// Record stores the result of a check run and returns the stored row.
func (s *Store) Record(repo, reference, token string, res *rules.Result) (*Run, error) {
	outcomes, err := json.Marshal(res.Outcomes)
	if err != nil {
		return nil, fmt.Errorf("marshal outcomes: %w", err)
	}

	run := &Run{
		ID:          uuid.NewString(),
		Repo:        repo,
		Reference:   reference,
		Token:       token,
		Halted:      res.Halted,
		HaltedGroup: res.HaltedGroup,
		Outcomes:    res.Outcomes,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.conn.Exec(`
		INSERT INTO runs (id, repo, reference, token, halted, halted_group, outcomes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Repo, run.Reference, run.Token, boolToInt(run.Halted), run.HaltedGroup, string(outcomes), formatTime(run.CreatedAt))
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	return run, nil
}

// Recent returns up to n runs, newest first.
func (s *Store) Recent(n int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.conn.Query(`
		SELECT id, repo, reference, token, halted, halted_group, outcomes, created_at
		FROM runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run      Run
			halted   int
			outcomes string
			created  string
		)
		if err := rows.Scan(&run.ID, &run.Repo, &run.Reference, &run.Token, &halted, &run.HaltedGroup, &outcomes, &created); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Halted = halted != 0
		if err := json.Unmarshal([]byte(outcomes), &run.Outcomes); err != nil {
			return nil, fmt.Errorf("unmarshal outcomes: %w", err)
		}
		run.CreatedAt, err = parseTime(created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// PurgeOlderThan deletes runs older than the given duration. Returns the
// number of runs deleted.
func (s *Store) PurgeOlderThan(olderThan time.Duration) (int64, error) {
	cutoff := formatTime(time.Now().UTC().Add(-olderThan))

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.conn.Exec(`DELETE FROM runs WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge old runs: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}

	return count, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// formatTime formats a time.Time for SQLite storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime parses a time string from SQLite.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
