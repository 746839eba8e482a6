package population

import "github.com/Gweiqi/LB-t/lattice"

// This file is the single home of the AA-pattern addressing arithmetic.
// Nothing outside this file computes buffer offsets; callers go through
// the typed accessors so that the layout can change (or grow a
// vectorized fast path) without touching any physics code.

// Index maps (x,y,z) and the velocity slot (n,d) to the linear buffer
// offset, row-major in z,y,x with ND slots per cell. Pure function.
// Complexity: O(1).
func (f *Field) Index(x, y, z, n, d int) int {
	return ((z*f.NY+y)*f.NX+x)*lattice.ND + n*lattice.Off + d
}

// wrap folds a coordinate displaced by one lattice link back into
// [0,n). Displacements are at most ±1, so a single correction suffices.
func wrap(v, n int) int {
	if v < 0 {
		return v + n
	}
	if v >= n {
		return v - n
	}

	return v
}

// ReadIndex returns the offset a parity-p step must read to obtain the
// pre-collision population of speed (n,d) at cell (x,y,z).
//
// Even steps find it in the cell's own slot: the previous odd step
// already pushed it there. Odd steps pull it from the upstream
// neighbour's opposing slot, where the previous even step parked it.
// Complexity: O(1).
func (f *Field) ReadIndex(x, y, z, n, d int, p Parity) int {
	if p == Even {
		return f.Index(x, y, z, n, d)
	}
	i := lattice.Slot(n, d)
	xm := wrap(x-lattice.DX[i], f.NX)
	ym := wrap(y-lattice.DY[i], f.NY)
	zm := wrap(z-lattice.DZ[i], f.NZ)

	return f.Index(xm, ym, zm, 1-n, d)
}

// WriteIndex returns the offset a parity-p step must write with the
// post-collision population of speed (n,d) at cell (x,y,z).
//
// Even steps write the cell's opposing slot; odd steps push into the
// downstream neighbour's regular slot. Either way the matching
// ReadIndex of the following parity resolves to the same offset at the
// streamed-to cell, which is what makes the addressing itself perform
// the streaming.
// Complexity: O(1).
func (f *Field) WriteIndex(x, y, z, n, d int, p Parity) int {
	if p == Even {
		return f.Index(x, y, z, 1-n, d)
	}
	i := lattice.Slot(n, d)
	xp := wrap(x+lattice.DX[i], f.NX)
	yp := wrap(y+lattice.DY[i], f.NY)
	zp := wrap(z+lattice.DZ[i], f.NZ)

	return f.Index(xp, yp, zp, n, d)
}

// Read returns the pre-collision population of speed (n,d) at (x,y,z)
// under parity p.
func (f *Field) Read(x, y, z, n, d int, p Parity) float64 {
	return f.data[f.ReadIndex(x, y, z, n, d, p)]
}

// Write stores the post-collision population of speed (n,d) at (x,y,z)
// under parity p.
func (f *Field) Write(x, y, z, n, d int, p Parity, v float64) {
	f.data[f.WriteIndex(x, y, z, n, d, p)] = v
}

// ReadPost returns the value previously stored through Write for speed
// (n,d) at (x,y,z) under parity p. The wall bounce-back operator uses
// it to pick up outgoing populations after the collision phase.
func (f *Field) ReadPost(x, y, z, n, d int, p Parity) float64 {
	return f.data[f.WriteIndex(x, y, z, n, d, p)]
}

// WritePre overwrites the value the parity-p read of speed (n,d) at
// (x,y,z) will consume. Boundary operators use it to substitute
// reconstructed populations before the bulk sweep touches the cell.
func (f *Field) WritePre(x, y, z, n, d int, p Parity, v float64) {
	f.data[f.ReadIndex(x, y, z, n, d, p)] = v
}

// Load gathers all populations of cell (x,y,z) under parity p into the
// scratch array fc, ordered by slot. The duplicated rest slot is forced
// to zero so that moment loops over the full scratch stay uniform.
// Scalar path; a vectorized implementation must honour the same
// contract. Complexity: O(ND).
func (f *Field) Load(x, y, z int, p Parity, fc *[lattice.ND]float64) {
	for n := 0; n <= 1; n++ {
		for d := 0; d < lattice.HSpeed; d++ {
			fc[lattice.Slot(n, d)] = f.data[f.ReadIndex(x, y, z, n, d, p)]
		}
	}
	fc[lattice.Off] = 0.0
}

// Store scatters the post-collision scratch array fc of cell (x,y,z)
// back into the buffer under parity p. Complexity: O(ND).
func (f *Field) Store(x, y, z int, p Parity, fc *[lattice.ND]float64) {
	for n := 0; n <= 1; n++ {
		for d := 0; d < lattice.HSpeed; d++ {
			f.data[f.WriteIndex(x, y, z, n, d, p)] = fc[lattice.Slot(n, d)]
		}
	}
}

// StorePre scatters fc into the positions the parity-p read of cell
// (x,y,z) will consume. This is the bulk variant of WritePre used by
// the Guo boundary reconstruction. Complexity: O(ND).
func (f *Field) StorePre(x, y, z int, p Parity, fc *[lattice.ND]float64) {
	for n := 0; n <= 1; n++ {
		for d := 0; d < lattice.HSpeed; d++ {
			f.data[f.ReadIndex(x, y, z, n, d, p)] = fc[lattice.Slot(n, d)]
		}
	}
}

// Init writes fc as the plain (even-read) state of cell (x,y,z).
// Used once, before the first step, to seed the equilibrium field.
func (f *Field) Init(x, y, z int, fc *[lattice.ND]float64) {
	for n := 0; n <= 1; n++ {
		for d := 0; d < lattice.HSpeed; d++ {
			f.data[f.Index(x, y, z, n, d)] = fc[lattice.Slot(n, d)]
		}
	}
}
