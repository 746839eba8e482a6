package population

import "errors"

// Sentinel errors for population construction and snapshot I/O.
// All are matched via errors.Is; wrapped with context where useful.
var (
	// ErrBadExtent indicates a non-positive grid dimension.
	ErrBadExtent = errors.New("population: grid extents must be positive")
	// ErrRelaxationTime indicates τ ≤ ½, outside the stability region of
	// the relaxation operator. Checked at construction, never mid-run.
	ErrRelaxationTime = errors.New("population: relaxation time must exceed 1/2")
	// ErrBadLambda indicates a non-positive TRT magic parameter.
	ErrBadLambda = errors.New("population: magic parameter must be positive")
	// ErrSnapshotHeader indicates a snapshot whose magic number or
	// extents do not match the receiving field.
	ErrSnapshotHeader = errors.New("population: snapshot header mismatch")
)
