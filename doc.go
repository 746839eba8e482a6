// Package lbt is a 3D lattice-Boltzmann (D3Q27) incompressible flow
// solver built around the in-place AA memory pattern.
//
// 🚀 What is LB-t?
//
//	A cache-conscious CFD engine that advances a discrete particle
//	distribution over a structured grid and derives macroscopic flow
//	fields from it:
//		• AA-pattern storage: collision + streaming fused into one
//		  in-place sweep — no shadow buffer, no copy pass
//		• Collision operators: BGK, TRT and Smagorinsky-corrected BGK
//		• Boundary handling: Guo non-equilibrium extrapolation for
//		  velocity inlets / pressure outlets, halfway bounce-back walls
//		• Tiled fork-join parallelism over 32³ blocks
//		• VTK, raw-binary, PNG-heatmap and SQLite/HTML reporting outputs
//
// ✨ Why choose LB-t?
//
//   - Deterministic – addressing is a pure function of (cell, speed, parity)
//   - Conservative – mass and momentum preserved to float precision
//   - Pure Go – the whole stack, SQLite driver included, builds without cgo
//   - Honest failure modes – bad τ, bad extents and bad geometry are
//     rejected before the first time step, never mid-run
//
// Under the hood, everything is organized into small subpackages:
//
//	lattice/    — D3Q27 velocity-set descriptor (pure constants)
//	population/ — aligned population buffer + AA-pattern addressing
//	continuum/  — macroscopic fields (ρ, u) + VTK/binary/heatmap export
//	collision/  — BGK, TRT, Smagorinsky collide-stream operators
//	boundary/   — boundary elements, Guo and bounce-back operators
//	geometry/   — cylinder voxelizer producing boundary element lists
//	sim/        — run configuration, block pool, even/odd time driver
//	report/     — parameter JSON, metric recorder, convergence chart
//	cmd/lbt/    — the benchmark binary (flow around a cylinder)
//
// Quick sketch of one even/odd step pair:
//
//	Guo(inlet) → Guo(outlet) → collide-stream(even) → bounce-back(wall)
//	Guo(inlet) → Guo(outlet) → collide-stream(odd)  → bounce-back(wall)
//
// Dive into the package docs for the addressing rules, the operator
// contracts and worked examples.
//
//	go get github.com/Gweiqi/LB-t
package lbt
