// Package continuum holds the macroscopic projection of the solver
// state: density and the three velocity components per grid cell.
//
// The field is not independent state — the collision sweep recomputes
// it from the local populations every step — but it is what every
// consumer downstream of the core wants: VTK visualisation dumps,
// binary restart snapshots, PNG slice heatmaps and the integral
// diagnostics (mass, momentum, kinetic energy) fed to the run recorder.
//
// Storage is planar (structure-of-arrays): four contiguous, aligned
// float64 planes of NX·NY·NZ cells each. Planar layout keeps exports
// and the gonum-based integral reductions a straight pass over memory.
//
// ZeroWhere masks boundary cells before export so that walls and
// inlets are not rendered as flow. I/O failures here are reported and
// skipped, never fatal: export is not safety-critical to the
// correctness of subsequent steps.
package continuum
