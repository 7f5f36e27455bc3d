// Package dataset persists completed runs to a self-describing SQLite
// file: the grid as per-timestep cell blobs, the metrics as per-timestep
// rows, and the aggregates, parameters, and free-form scenario metadata
// as queryable attributes.
package dataset

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-physics/rule30/pkg/rule30"
	"github.com/mesh-physics/rule30/pkg/types"
)

// DatasetFileName is the SQLite file created inside the output directory.
const DatasetFileName = "rule30.db"

// Store errors.
var (
	ErrStoreDetached = errors.New("dataset store is not attached")
	ErrRunNotFound   = errors.New("run not found")
	ErrNilResult     = errors.New("result must not be nil")
)

// Store writes and reads run datasets. A Store is not attached until
// Attach is called with a target directory.
type Store struct {
	mu       sync.Mutex
	attached bool
	db       *sql.DB
}

// RunSummary describes one stored run for listings.
type RunSummary struct {
	RunID     string
	Scenario  string
	CreatedAt time.Time
	Width     int
	Steps     int
}

// NewStore creates an unattached Store.
func NewStore() *Store {
	return &Store{}
}

// Attach opens (creating if needed) the dataset file inside dir and
// ensures the schema exists. Runs accumulate across attachments.
func (s *Store) Attach(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, DatasetFileName))
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("initialize schema: %w", err)
		}
	}

	s.db = db
	s.attached = true
	return nil
}

// Detach closes the dataset file. Idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return err
	}
	s.db = nil
	s.attached = false
	return nil
}

// SaveRun stores a completed result under a fresh run ID, together with
// the scenario name and free-form metadata attributes. The whole run is
// written in one transaction; a failed save leaves no partial run behind.
func (s *Store) SaveRun(res *types.Result, scenario string, metadata map[string]string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return "", ErrStoreDetached
	}
	if res == nil || res.Grid == nil {
		return "", ErrNilResult
	}

	runID := newRunID()

	tx, err := s.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (run_id, scenario, created_at, software, version,
			width, steps, center_position, initial_condition,
			mean_entropy, std_entropy, mean_complexity, std_complexity, final_density)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, scenario, time.Now().UTC().Format(time.RFC3339), rule30.Software, rule30.Version,
		res.Params.Width, res.Params.Steps, res.Params.CenterPosition, types.InitialSingle,
		res.Aggregates.MeanEntropy, res.Aggregates.StdEntropy,
		res.Aggregates.MeanComplexity, res.Aggregates.StdComplexity,
		res.Aggregates.FinalDensity,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	cellStmt, err := tx.Prepare(`INSERT INTO cells (run_id, time, row) VALUES (?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer cellStmt.Close()

	metricStmt, err := tx.Prepare(`INSERT INTO metrics (run_id, time, entropy, complexity) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer metricStmt.Close()

	for t := 0; t < res.Grid.Rows(); t++ {
		if _, err := cellStmt.Exec(runID, t, res.Grid.Row(t)); err != nil {
			return "", fmt.Errorf("insert cells for step %d: %w", t, err)
		}
		if _, err := metricStmt.Exec(runID, t, res.Series.Entropy[t], res.Series.Complexity[t]); err != nil {
			return "", fmt.Errorf("insert metrics for step %d: %w", t, err)
		}
	}

	for name, value := range metadata {
		if _, err := tx.Exec(
			`INSERT INTO attributes (run_id, name, value) VALUES (?, ?, ?)`,
			runID, name, value,
		); err != nil {
			return "", fmt.Errorf("insert attribute %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// LoadRun reads a stored run back into a Result plus its metadata
// attributes. Returns ErrRunNotFound for an unknown ID.
func (s *Store) LoadRun(runID string) (*types.Result, map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil, nil, ErrStoreDetached
	}

	var res types.Result
	err := s.db.QueryRow(
		`SELECT width, steps, center_position,
			mean_entropy, std_entropy, mean_complexity, std_complexity, final_density
		 FROM runs WHERE run_id = ?`, runID,
	).Scan(
		&res.Params.Width, &res.Params.Steps, &res.Params.CenterPosition,
		&res.Aggregates.MeanEntropy, &res.Aggregates.StdEntropy,
		&res.Aggregates.MeanComplexity, &res.Aggregates.StdComplexity,
		&res.Aggregates.FinalDensity,
	)
	if err == sql.ErrNoRows {
		return nil, nil, ErrRunNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load run %s: %w", runID, err)
	}

	rows := res.Params.Steps + 1
	res.Grid = types.NewGrid(res.Params.Width, rows)
	res.Series = types.Series{
		Entropy:    make([]float64, rows),
		Complexity: make([]float64, rows),
	}

	if err := s.loadCells(runID, &res); err != nil {
		return nil, nil, err
	}
	if err := s.loadMetrics(runID, &res); err != nil {
		return nil, nil, err
	}

	metadata, err := s.loadAttributes(runID)
	if err != nil {
		return nil, nil, err
	}
	return &res, metadata, nil
}

// ListRuns returns summaries of all stored runs, newest first.
func (s *Store) ListRuns() ([]RunSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil, ErrStoreDetached
	}

	rows, err := s.db.Query(
		`SELECT run_id, scenario, created_at, width, steps FROM runs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var sum RunSummary
		var created string
		if err := rows.Scan(&sum.RunID, &sum.Scenario, &created, &sum.Width, &sum.Steps); err != nil {
			return nil, err
		}
		sum.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *Store) loadCells(runID string, res *types.Result) error {
	rows, err := s.db.Query(`SELECT time, row FROM cells WHERE run_id = ? ORDER BY time`, runID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var t int
		var blob []byte
		if err := rows.Scan(&t, &blob); err != nil {
			return err
		}
		if t < 0 || t >= res.Grid.Rows() || len(blob) != res.Grid.Width() {
			return fmt.Errorf("run %s: malformed cell row at time %d", runID, t)
		}
		copy(res.Grid.Row(t), blob)
	}
	return rows.Err()
}

func (s *Store) loadMetrics(runID string, res *types.Result) error {
	rows, err := s.db.Query(`SELECT time, entropy, complexity FROM metrics WHERE run_id = ? ORDER BY time`, runID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var t int
		var e, c float64
		if err := rows.Scan(&t, &e, &c); err != nil {
			return err
		}
		if t < 0 || t >= res.Series.Len() {
			return fmt.Errorf("run %s: metrics row out of range at time %d", runID, t)
		}
		res.Series.Entropy[t] = e
		res.Series.Complexity[t] = c
	}
	return rows.Err()
}

func (s *Store) loadAttributes(runID string) (map[string]string, error) {
	rows, err := s.db.Query(`SELECT name, value FROM attributes WHERE run_id = ?`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metadata := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		metadata[name] = value
	}
	return metadata, rows.Err()
}

// newRunID generates a UUID v7 so run IDs sort by creation time.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
