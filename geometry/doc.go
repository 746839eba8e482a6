// Package geometry voxelizes the benchmark obstacle and the domain
// faces into the three boundary-element lists the driver consumes:
// no-slip walls, a prescribed-velocity inlet sheet at x=0 and a
// prescribed-density outlet sheet at x=NX-1 (flow is along +x).
//
// Overlap precedence is resolved here, not in the core: a cell claimed
// by the obstacle or by a side wall is never also emitted as inlet or
// outlet. Wall wins — a corner cell that bounces back but also pumped
// prescribed populations would leak mass, and the operators downstream
// deliberately carry no overlap checks of their own.
//
// Lists are generated once before the time loop and are immutable for
// the run.
package geometry
