package collision

import (
	"github.com/Gweiqi/LB-t/continuum"
	"github.com/Gweiqi/LB-t/lattice"
	"github.com/Gweiqi/LB-t/population"
)

// CollideStreamBlock runs the fused collision-streaming sweep of
// parity p over the half-open block [x0,x1)×[y0,y1)×[z0,z1). Blocks of
// one parity are independent: each cell's AA reads and writes resolve
// to offsets no other cell of the same phase touches, so the driver
// may process blocks concurrently without locks.
//
// When writeMacro is set, the cell's moments are published to mac as a
// side effect (mac may be nil otherwise). Complexity: O(cells·ND).
func CollideStreamBlock(op Operator, pop *population.Field, mac *continuum.Field,
	p population.Parity, writeMacro bool, x0, x1, y0, y1, z0, z1 int) {
	var f, feq [lattice.ND]float64
	for z := z0; z < z1; z++ {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				pop.Load(x, y, z, p, &f)
				rho, ux, uy, uz := lattice.Moments(&f)
				if writeMacro {
					mac.Set(x, y, z, rho, ux, uy, uz)
				}
				lattice.Equilibrium(rho, ux, uy, uz, &feq)
				op.Relax(rho, &f, &feq)
				pop.Store(x, y, z, p, &f)
			}
		}
	}
}

// CollideStream sweeps the whole grid serially. Reference path for
// tests and single-worker runs; the driver tiles the same kernel over
// blocks.
func CollideStream(op Operator, pop *population.Field, mac *continuum.Field,
	p population.Parity, writeMacro bool) {
	CollideStreamBlock(op, pop, mac, p, writeMacro, 0, pop.NX, 0, pop.NY, 0, pop.NZ)
}

// Project recomputes the continuum field from the current populations
// without colliding or streaming — the pure macroscopic projection.
// Projection is idempotent: the populations are not touched, so two
// consecutive calls publish identical fields.
// Complexity: O(cells·ND).
func Project(pop *population.Field, mac *continuum.Field, p population.Parity) {
	var f [lattice.ND]float64
	for z := 0; z < pop.NZ; z++ {
		for y := 0; y < pop.NY; y++ {
			for x := 0; x < pop.NX; x++ {
				pop.Load(x, y, z, p, &f)
				rho, ux, uy, uz := lattice.Moments(&f)
				mac.Set(x, y, z, rho, ux, uy, uz)
			}
		}
	}
}

// InitEquilibrium seeds the population buffer with the discrete
// equilibrium of the continuum field — the state every run starts
// from, written in plain even-read layout before the first step.
// Complexity: O(cells·ND).
func InitEquilibrium(pop *population.Field, mac *continuum.Field) {
	var feq [lattice.ND]float64
	for z := 0; z < pop.NZ; z++ {
		for y := 0; y < pop.NY; y++ {
			for x := 0; x < pop.NX; x++ {
				lattice.Equilibrium(
					mac.At(x, y, z, continuum.Rho),
					mac.At(x, y, z, continuum.UX),
					mac.At(x, y, z, continuum.UY),
					mac.At(x, y, z, continuum.UZ),
					&feq,
				)
				pop.Init(x, y, z, &feq)
			}
		}
	}
}
