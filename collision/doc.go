// Package collision implements the fused collision-streaming step: per
// cell, gather the populations through the AA addressing, take their
// moments, relax towards the discrete equilibrium and scatter the
// result back — the scatter IS the streaming, courtesy of the parity
// addressing in package population.
//
// Three relaxation strategies are provided behind one Operator
// interface:
//
//   - BGK: single relaxation rate ω = 1/τ applied uniformly.
//   - TRT: symmetric and antisymmetric halves of each opposing-speed
//     pair relax at independent rates ω and ω⁻, the latter tuned by the
//     magic parameter Λ (stability/accuracy trade-off).
//   - Smagorinsky: BGK with a local eddy-viscosity correction — τ is
//     raised per cell from the strain-rate estimate carried by the
//     non-equilibrium momentum flux (subgrid turbulence model).
//
// The variants are mutually exclusive strategies, not composable
// layers: a driver picks exactly one per run.
//
// Numerical contract, covered by collision_test.go: every operator
// conserves mass and momentum exactly (to float rounding) at cells
// away from boundaries, and equilibrium is a fixed point of the sweep.
// Operators require τ > ½ and reject anything else at construction —
// a mid-run check would be both too late and too expensive.
package collision
