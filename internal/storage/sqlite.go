// Package storage provides SQLite-based persistence for simulation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord represents one finished simulation run.
type RunRecord struct {
	ID         int64
	ScenarioID string
	Turns      int
	Clock      float64
	Spawned    int
	Slain      int
	Survivors  int
	Winner     string // Empty when no faction survived
	Duration   int    // Wall-clock duration in seconds
	CreatedAt  time.Time
}

// RunStats aggregates the stored runs of one scenario.
type RunStats struct {
	ScenarioID string
	Runs       int
	AvgTurns   float64
	AvgClock   float64
	TotalSlain int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario_id TEXT NOT NULL,
			turns INTEGER NOT NULL,
			clock REAL NOT NULL,
			spawned INTEGER NOT NULL DEFAULT 0,
			slain INTEGER NOT NULL DEFAULT 0,
			survivors INTEGER NOT NULL DEFAULT 0,
			winner TEXT,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scenario_id ON runs(scenario_id);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(scenario_id, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (scenario_id, turns, clock, spawned, slain, survivors, winner, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ScenarioID,
		run.Turns,
		run.Clock,
		run.Spawned,
		run.Slain,
		run.Survivors,
		run.Winner,
		run.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs for the given scenario.
// An empty scenario ID matches all scenarios.
func (s *Store) RecentRuns(scenarioID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, scenario_id, turns, clock, spawned, slain, survivors, winner, duration_secs, created_at
	          FROM runs`
	args := []any{}
	if scenarioID != "" {
		query += " WHERE scenario_id = ?"
		args = append(args, scenarioID)
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var run RunRecord
		var createdAt any
		var winner sql.NullString

		if err := rows.Scan(
			&run.ID,
			&run.ScenarioID,
			&run.Turns,
			&run.Clock,
			&run.Spawned,
			&run.Slain,
			&run.Survivors,
			&winner,
			&run.Duration,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		if winner.Valid {
			run.Winner = winner.String
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			run.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				run.CreatedAt = parsed
			}
		}

		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ScenarioStats aggregates the stored runs of the given scenario.
// Returns zeroed stats if no runs exist.
func (s *Store) ScenarioStats(scenarioID string) (RunStats, error) {
	stats := RunStats{ScenarioID: scenarioID}

	var avgTurns, avgClock sql.NullFloat64
	var totalSlain sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), AVG(turns), AVG(clock), SUM(slain)
		 FROM runs
		 WHERE scenario_id = ?`,
		scenarioID,
	).Scan(&stats.Runs, &avgTurns, &avgClock, &totalSlain)
	if err != nil {
		return RunStats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	if avgTurns.Valid {
		stats.AvgTurns = avgTurns.Float64
	}
	if avgClock.Valid {
		stats.AvgClock = avgClock.Float64
	}
	if totalSlain.Valid {
		stats.TotalSlain = int(totalSlain.Int64)
	}

	return stats, nil
}

// ClearRuns deletes all runs for the given scenario.
func (s *Store) ClearRuns(scenarioID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE scenario_id = ?", scenarioID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
