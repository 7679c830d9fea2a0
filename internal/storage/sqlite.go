// Package storage provides SQLite-based persistence for run history and
// named save files. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunRecord represents one finished (or abandoned) simulation run.
type RunRecord struct {
	ID          int64
	Width       int
	Height      int
	Layout      string
	Adjacency   int
	SpawnPolicy string
	Seed        int64
	Target      int
	Placed      int
	Generations int
	Timeouts    int
	WalkSteps   int64
	DurationMs  int64
	Completed   bool
	CreatedAt   time.Time
}

// SnapshotInfo describes a named saved run without its payload.
type SnapshotInfo struct {
	ID        int64
	Name      string
	Size      int
	CreatedAt time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
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
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			layout TEXT NOT NULL,
			adjacency INTEGER NOT NULL,
			spawn_policy TEXT NOT NULL,
			seed INTEGER NOT NULL,
			target INTEGER NOT NULL,
			placed INTEGER NOT NULL,
			generations INTEGER NOT NULL,
			timeouts INTEGER NOT NULL DEFAULT 0,
			walk_steps INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_placed ON runs(placed DESC);

		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			data BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (width, height, layout, adjacency, spawn_policy, seed, target, placed,
		  generations, timeouts, walk_steps, duration_ms, completed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Width, r.Height, r.Layout, r.Adjacency, r.SpawnPolicy, r.Seed,
		r.Target, r.Placed, r.Generations, r.Timeouts, r.WalkSteps,
		r.DurationMs, r.Completed,
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

const runColumns = `id, width, height, layout, adjacency, spawn_policy, seed,
	target, placed, generations, timeouts, walk_steps, duration_ms,
	completed, created_at`

func scanRun(rows *sql.Rows) (RunRecord, error) {
	var r RunRecord
	var createdAt any
	if err := rows.Scan(
		&r.ID, &r.Width, &r.Height, &r.Layout, &r.Adjacency, &r.SpawnPolicy,
		&r.Seed, &r.Target, &r.Placed, &r.Generations, &r.Timeouts,
		&r.WalkSteps, &r.DurationMs, &r.Completed, &createdAt,
	); err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.CreatedAt = parseDBTime(createdAt)
	return r, nil
}

// parseDBTime handles both time.Time and string datetimes coming back
// from the driver.
func parseDBTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// LargestRuns retrieves the runs that placed the most particles.
func (s *Store) LargestRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+` FROM runs ORDER BY placed DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ClearRuns deletes the whole run history.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// RunStats contains aggregated statistics over the run history.
type RunStats struct {
	RunCount       int
	CompletedCount int
	TotalParticles int64
	TotalWalkSteps int64
	LastRun        time.Time
}

// GetRunStats retrieves aggregated statistics over all recorded runs.
func (s *Store) GetRunStats() (*RunStats, error) {
	stats := &RunStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(completed), 0),
		        COALESCE(SUM(placed), 0),
		        COALESCE(SUM(walk_steps), 0)
		 FROM runs`,
	).Scan(&stats.RunCount, &stats.CompletedCount, &stats.TotalParticles, &stats.TotalWalkSteps)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastRun)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		stats.LastRun = parseDBTime(lastRun)
	}

	return stats, nil
}

// SaveSnapshot stores a named save payload, replacing any previous snapshot
// with the same name.
func (s *Store) SaveSnapshot(name string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO snapshots (name, data) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data,
		                                 created_at = CURRENT_TIMESTAMP`,
		name, data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save snapshot %q: %w", name, err)
	}
	return nil
}

// LoadSnapshot retrieves a named save payload.
// Returns nil data when no snapshot with that name exists.
func (s *Store) LoadSnapshot(name string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(
		"SELECT data FROM snapshots WHERE name = ?", name,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load snapshot %q: %w", name, err)
	}
	return data, nil
}

// ListSnapshots lists stored snapshots, newest first, without payloads.
func (s *Store) ListSnapshots() ([]SnapshotInfo, error) {
	rows, err := s.db.Query(
		`SELECT id, name, LENGTH(data), created_at
		 FROM snapshots
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list snapshots: %w", err)
	}
	defer rows.Close()

	var infos []SnapshotInfo
	for rows.Next() {
		var info SnapshotInfo
		var createdAt any
		if err := rows.Scan(&info.ID, &info.Name, &info.Size, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.CreatedAt = parseDBTime(createdAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// DeleteSnapshot removes a named snapshot. Deleting a missing name is not
// an error.
func (s *Store) DeleteSnapshot(name string) error {
	_, err := s.db.Exec("DELETE FROM snapshots WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete snapshot %q: %w", name, err)
	}
	return nil
}
