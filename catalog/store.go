// Package catalog persists a run history to SQLite: one row per solver
// run with its parameters, one row per time step with the decay
// diagnostics. The `runs` CLI command reads it back.
package catalog

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// RunParams records the configuration a run was launched with.
type RunParams struct {
	Title      string
	Nx, Ny     int
	NumSteps   int
	FinalTime  float64
	Alpha      float64
	Kappa      float64
	Solver     string
	Partitions int
}

// Run is one catalog row.
type Run struct {
	ID                int64
	Params            RunParams
	Started, Finished string
	StepCount         int
	FinalUMax         float64
}

// Step is one time step's diagnostics.
type Step struct {
	Step       int
	Time       float64
	UMax, Mass float64
}

// Store manages the run catalog SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog at path and ensures the schema.
func Open(path string) (s *Store, err error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	s = &Store{db: db}
	if err = s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			started TEXT NOT NULL,
			finished TEXT,
			nx INTEGER, ny INTEGER,
			num_steps INTEGER,
			final_time REAL,
			alpha REAL,
			kappa REAL,
			solver TEXT,
			partitions INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS steps (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			step INTEGER NOT NULL,
			time REAL NOT NULL,
			umax REAL NOT NULL,
			mass REAL NOT NULL,
			PRIMARY KEY (run_id, step)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_steps_run_id ON steps(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// BeginRun registers a new run and returns its id.
func (s *Store) BeginRun(p RunParams) (runID int64, err error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (title, started, nx, ny, num_steps, final_time,
			alpha, kappa, solver, partitions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, time.Now().UTC().Format(time.RFC3339),
		p.Nx, p.Ny, p.NumSteps, p.FinalTime,
		p.Alpha, p.Kappa, p.Solver, p.Partitions)
	if err != nil {
		return 0, fmt.Errorf("registering run: %w", err)
	}
	return res.LastInsertId()
}

// RecordStep appends one step's diagnostics.
func (s *Store) RecordStep(runID int64, step int, t, umax, mass float64) (err error) {
	if _, err = s.db.Exec(
		`INSERT INTO steps (run_id, step, time, umax, mass) VALUES (?, ?, ?, ?, ?)`,
		runID, step, t, umax, mass); err != nil {
		return fmt.Errorf("recording step %d: %w", step, err)
	}
	return
}

// FinishRun stamps the run's completion time.
func (s *Store) FinishRun(runID int64) (err error) {
	if _, err = s.db.Exec(
		`UPDATE runs SET finished = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), runID); err != nil {
		return fmt.Errorf("finishing run %d: %w", runID, err)
	}
	return
}

// ListRuns returns every run, newest first, with its step count and
// final peak value.
func (s *Store) ListRuns() (runs []Run, err error) {
	rows, err := s.db.Query(
		`SELECT r.id, r.title, r.started, COALESCE(r.finished, ''),
			r.nx, r.ny, r.num_steps, r.final_time, r.alpha, r.kappa,
			r.solver, r.partitions,
			(SELECT COUNT(*) FROM steps s WHERE s.run_id = r.id),
			COALESCE((SELECT umax FROM steps s WHERE s.run_id = r.id
				ORDER BY s.step DESC LIMIT 1), 0)
		FROM runs r ORDER BY r.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r Run
		if err = rows.Scan(&r.ID, &r.Params.Title, &r.Started, &r.Finished,
			&r.Params.Nx, &r.Params.Ny, &r.Params.NumSteps,
			&r.Params.FinalTime, &r.Params.Alpha, &r.Params.Kappa,
			&r.Params.Solver, &r.Params.Partitions,
			&r.StepCount, &r.FinalUMax); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Steps returns a run's step diagnostics in step order.
func (s *Store) Steps(runID int64) (steps []Step, err error) {
	rows, err := s.db.Query(
		`SELECT step, time, umax, mass FROM steps WHERE run_id = ? ORDER BY step`,
		runID)
	if err != nil {
		return nil, fmt.Errorf("reading steps for run %d: %w", runID, err)
	}
	defer rows.Close()
	for rows.Next() {
		var st Step
		if err = rows.Scan(&st.Step, &st.Time, &st.UMax, &st.Mass); err != nil {
			return nil, fmt.Errorf("scanning step: %w", err)
		}
		steps = append(steps, st)
	}
	return steps, rows.Err()
}
