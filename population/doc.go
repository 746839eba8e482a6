// Package population owns the microscopic state of the solver: one
// contiguous, cache-aligned buffer holding all D3Q27 populations of
// every grid cell, together with the AA-pattern addressing that lets a
// fused collision-streaming sweep run in place over a single buffer.
//
// 🚀 The AA pattern in one paragraph
//
//	Classic LBM keeps two copies of the population field and streams by
//	copying between them. The AA pattern keeps one copy and alternates
//	between two addressing modes instead. On even steps a cell reads its
//	own slots and writes its post-collision values back into the slots
//	of the *opposite* speeds; on odd steps it reads the opposite slots
//	of its upstream neighbours and writes the regular slots of its
//	downstream neighbours. Streaming becomes index arithmetic: zero
//	extra memory traffic, zero extra footprint.
//
// The four addressing rules, with A(x,n,d) the plain linear slot,
// c the speed's direction vector and (1-n,d) the opposing slot:
//
//	even read   (x,n,d) → A(x,       n,   d)
//	even write  (x,n,d) → A(x,       1-n, d)
//	odd  read   (x,n,d) → A(x-c,     1-n, d)
//	odd  write  (x,n,d) → A(x+c,     n,   d)
//
// Coordinates wrap periodically at the domain faces. Cells whose
// neighbours lie outside the physical domain are boundary cells; the
// boundary operators overwrite their read positions before any sweep
// dereferences a wrapped value, so the wrap never leaks into physics.
//
// Correctness of the rules — an even-parity write followed by an
// odd-parity read at the geometrically streamed-to neighbour must match
// a naive double-buffered streaming pass — is property-tested
// exhaustively on small grids in indexing_test.go.
//
// A Field also carries the relaxation parameters derived from the run's
// Reynolds number (ν, τ, ω, ω⁻), because τ is a property of the stored
// state's physics and must be validated once, at construction:
// τ ≤ ½ is rejected with ErrRelaxationTime, never discovered mid-run.
package population
