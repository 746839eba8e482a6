package report

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure-Go driver, registered as "sqlite"
)

// Recorder is the per-interval metrics log of one run, backed by a
// SQLite file so a crashed or cancelled run keeps its history. One
// Recorder serves one run; the driver calls Record from a single
// goroutine.
type Recorder struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS metrics (
	step   INTEGER PRIMARY KEY,
	mass   REAL NOT NULL,
	px     REAL NOT NULL,
	py     REAL NOT NULL,
	pz     REAL NOT NULL,
	energy REAL NOT NULL,
	mlups  REAL NOT NULL
);`

// OpenRecorder opens (creating if absent) the metrics database at path
// and ensures the schema exists.
func OpenRecorder(path string) (*Recorder, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("report: open recorder: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("report: recorder schema: %w", err)
	}

	return &Recorder{db: db}, nil
}

// Record inserts one metrics row. Re-recording a step replaces the
// earlier row, so a restarted run overwrites instead of duplicating.
func (r *Recorder) Record(step int, mass, px, py, pz, energy, mlups float64) error {
	_, err := r.db.Exec(
		`INSERT OR REPLACE INTO metrics (step, mass, px, py, pz, energy, mlups)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		step, mass, px, py, pz, energy, mlups,
	)
	if err != nil {
		return fmt.Errorf("report: record step %d: %w", step, err)
	}

	return nil
}

// Row is one recorded interval.
type Row struct {
	Step       int
	Mass       float64
	PX, PY, PZ float64
	Energy     float64
	MLUPS      float64
}

// Series returns all recorded rows in step order.
func (r *Recorder) Series() ([]Row, error) {
	rows, err := r.db.Query(
		`SELECT step, mass, px, py, pz, energy, mlups FROM metrics ORDER BY step`)
	if err != nil {
		return nil, fmt.Errorf("report: series: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.Step, &row.Mass, &row.PX, &row.PY, &row.PZ, &row.Energy, &row.MLUPS); err != nil {
			return nil, fmt.Errorf("report: series scan: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report: series: %w", err)
	}

	return out, nil
}

// Close releases the underlying database handle.
func (r *Recorder) Close() error {
	return r.db.Close()
}
