// Package report is the run's paper trail: the machine-readable
// parameter manifest, the per-interval metrics log and the human-facing
// progress output.
//
// Three artifacts come out of a recorded run:
//
//   - parameters.json — the full configuration plus derived transport
//     coefficients and a unique run identifier, for reproducing or
//     comparing runs;
//   - metrics.db — a SQLite log with one row per export interval
//     (mass, momentum, kinetic energy, MLUPS), written live so an
//     aborted run still leaves its history behind;
//   - convergence.html — an interactive chart of kinetic energy and
//     mass over time, rendered from the metrics log at run end.
//
// Everything here sits outside the hot loop; a failed insert or render
// is reported and skipped, never fatal.
package report
