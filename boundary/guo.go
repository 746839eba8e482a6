package boundary

import (
	"github.com/Gweiqi/LB-t/lattice"
	"github.com/Gweiqi/LB-t/population"
)

// Guo applies the non-equilibrium extrapolation scheme to one element
// list before the bulk collision sweep of parity p: the missing
// populations of each boundary cell are reconstructed as
//
//	f_b = feq(target) + [ f_n − feq(ρ_n, u_n) ]
//
// where n is the fluid neighbour along the element's normal. The
// target splits by kind — a Velocity element prescribes u and borrows
// ρ from the neighbour, a Pressure element prescribes ρ and borrows u.
// The reconstruction is written into the positions the parity-p sweep
// will read, so ordering before the sweep is mandatory.
//
// Wall is not a valid kind here (walls carry no macroscopic target);
// passing it is a programmer error and panics.
// Complexity: O(len(elems)·ND).
func Guo(kind Kind, elems []Element, pop *population.Field, p population.Parity) {
	if kind == Wall {
		panic("boundary: Guo called with Wall kind")
	}

	var fn, feqN, feqT, fb [lattice.ND]float64
	for i := range elems {
		e := &elems[i]
		a, b, c := e.Normal.Normal()
		nx, ny, nz := e.X+a, e.Y+b, e.Z+c

		// Moments of the adjacent fluid cell, as the sweep would see them.
		pop.Load(nx, ny, nz, p, &fn)
		rhoN, uxN, uyN, uzN := lattice.Moments(&fn)
		lattice.Equilibrium(rhoN, uxN, uyN, uzN, &feqN)

		// Prescribed target, completed from the neighbour.
		if kind == Velocity {
			lattice.Equilibrium(rhoN, e.U, e.V, e.W, &feqT)
		} else {
			lattice.Equilibrium(e.Rho, uxN, uyN, uzN, &feqT)
		}

		for j := 0; j < lattice.ND; j++ {
			fb[j] = feqT[j] + (fn[j] - feqN[j])
		}
		pop.StorePre(e.X, e.Y, e.Z, p, &fb)
	}
}
