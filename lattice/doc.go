// Package lattice defines the D3Q27 velocity-set descriptor used by the
// solver: the number of discrete speeds, the split into a positive and a
// negative half for AA-pattern symmetry, the padded per-cell memory
// footprint, the direction vectors and the Gauss–Hermite weights.
//
// The descriptor is pure data plus two pure functions derived from it:
// Moments (ρ, u from a population array) and Equilibrium (the
// second-order Maxwell–Boltzmann expansion). Every other package builds
// its addressing arithmetic and its physics on what is declared here.
//
// Memory layout of one cell (ND = 32 slots):
//
//	slot  0        rest speed (0,0,0), weight 8/27
//	slots 1..13    positive half: faces, edges, corners
//	slots 14..15   padding (zero vector, zero weight)
//	slot  16       duplicated rest slot (zero weight, always 0)
//	slots 17..29   negative half, mirror of 1..13
//	slots 30..31   padding
//
// The opposite of slot (n,d) is (1-n,d): opposing speeds sit exactly
// Off apart, which is what lets the AA addressing stream by swapping the
// half index instead of moving data. The rest pair (0,0)/(1,0) is
// self-consistent because its velocity is zero.
//
// Invariants (covered by lattice_test.go):
//   - Σ W = 1 over the 27 physical slots
//   - Σ W·c = 0 per axis (first moment vanishes)
//   - Σ W·cᵢ·cⱼ = CS²·δᵢⱼ (lattice isotropy)
package lattice
