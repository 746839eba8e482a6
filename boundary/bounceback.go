package boundary

import (
	"github.com/Gweiqi/LB-t/lattice"
	"github.com/Gweiqi/LB-t/population"
)

// BounceBackHalfway applies the no-slip wall condition after the bulk
// sweep of parity p. For every link from a wall cell s to a neighbour
// cell n, the population that the sweep just emitted from n towards s
// is placed where the opposite-parity read of the reversed speed at n
// will find it: the particle reflects at the half-link position. Exact
// for stationary walls.
//
// Links into non-fluid neighbours are handled uniformly; they only
// shuffle slots no sweep consumes, which keeps the operator free of a
// per-link fluid test. The geometry provider guarantees that every
// solid cell with at least one fluid neighbour is in the wall list.
// Complexity: O(len(wall)·ND).
func BounceBackHalfway(wall []Element, pop *population.Field, p population.Parity) {
	for i := range wall {
		e := &wall[i]
		for n := 0; n <= 1; n++ {
			for d := 1; d < lattice.HSpeed; d++ {
				s := lattice.Slot(n, d)
				nx := wrap(e.X+lattice.DX[s], pop.NX)
				ny := wrap(e.Y+lattice.DY[s], pop.NY)
				nz := wrap(e.Z+lattice.DZ[s], pop.NZ)

				// Outgoing value of the reversed speed at the neighbour,
				// re-routed into the neighbour's next read of speed (n,d).
				v := pop.ReadPost(nx, ny, nz, 1-n, d, p)
				pop.WritePre(nx, ny, nz, n, d, p.Other(), v)
			}
		}
	}
}

// wrap folds a coordinate displaced by one link back into [0,n).
func wrap(v, n int) int {
	if v < 0 {
		return v + n
	}
	if v >= n {
		return v - n
	}

	return v
}
