package population_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gweiqi/LB-t/lattice"
	"github.com/Gweiqi/LB-t/population"
)

// newTestField returns a small field whose extents exercise wrapping in
// all three axes (no dimension larger than 4, none equal).
func newTestField(t testing.TB) *population.Field {
	t.Helper()
	f, err := population.New(4, 3, 2, 100.0, 0.05, 4)
	require.NoError(t, err)

	return f
}

// cellValue produces a value unique per (cell, slot) so that any
// misrouted read or write shows up as a mismatch, not a coincidence.
func cellValue(x, y, z, slot int) float64 {
	return float64(((z*100+y)*100+x)*100 + slot)
}

// physicalSlots enumerates the slots that carry state: both halves up
// to HSpeed, minus the duplicated rest slot.
func physicalSlots() []int {
	slots := make([]int, 0, lattice.Speeds)
	for n := 0; n <= 1; n++ {
		for d := 0; d < lattice.HSpeed; d++ {
			if n == 1 && d == 0 {
				continue
			}
			slots = append(slots, lattice.Slot(n, d))
		}
	}

	return slots
}

//----------------------------------------------------------------------------//
// Pure index properties
//----------------------------------------------------------------------------//

// TestIndex_Bijective verifies that Index enumerates each buffer offset
// at most once over all (cell, slot) pairs.
func TestIndex_Bijective(t *testing.T) {
	f := newTestField(t)
	seen := make(map[int]bool, f.Len())
	for z := 0; z < f.NZ; z++ {
		for y := 0; y < f.NY; y++ {
			for x := 0; x < f.NX; x++ {
				for n := 0; n <= 1; n++ {
					for d := 0; d < lattice.Off; d++ {
						i := f.Index(x, y, z, n, d)
						if i < 0 || i >= f.Len() {
							t.Fatalf("Index(%d,%d,%d,%d,%d) = %d out of [0,%d)", x, y, z, n, d, i, f.Len())
						}
						if seen[i] {
							t.Fatalf("Index(%d,%d,%d,%d,%d) = %d already assigned", x, y, z, n, d, i)
						}
						seen[i] = true
					}
				}
			}
		}
	}
	if len(seen) != f.Len() {
		t.Errorf("Index covers %d offsets; want %d", len(seen), f.Len())
	}
}

// TestWriteReadIndex_Linked verifies the load-bearing AA identity: what
// a parity-p write stores for speed (n,d) at cell x is found by the
// opposite-parity read of the same speed at the streamed-to neighbour
// x+c. This holds for every cell, speed and parity, wrapping included.
func TestWriteReadIndex_Linked(t *testing.T) {
	f := newTestField(t)
	for _, p := range []population.Parity{population.Even, population.Odd} {
		for z := 0; z < f.NZ; z++ {
			for y := 0; y < f.NY; y++ {
				for x := 0; x < f.NX; x++ {
					for n := 0; n <= 1; n++ {
						for d := 0; d < lattice.HSpeed; d++ {
							i := lattice.Slot(n, d)
							nx := (x + lattice.DX[i] + f.NX) % f.NX
							ny := (y + lattice.DY[i] + f.NY) % f.NY
							nz := (z + lattice.DZ[i] + f.NZ) % f.NZ
							w := f.WriteIndex(x, y, z, n, d, p)
							r := f.ReadIndex(nx, ny, nz, n, d, p.Other())
							if w != r {
								t.Fatalf("parity %v speed (%d,%d): WriteIndex@(%d,%d,%d)=%d, ReadIndex@(%d,%d,%d)=%d",
									p, n, d, x, y, z, w, nx, ny, nz, r)
							}
						}
					}
				}
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Streaming round-trip vs naive reference
//----------------------------------------------------------------------------//

// naiveStream applies one explicit double-buffered streaming pass to a
// dense reference state: next[x+c][i] = cur[x][i], periodic.
func naiveStream(f *population.Field, cur map[[4]int]float64) map[[4]int]float64 {
	next := make(map[[4]int]float64, len(cur))
	for z := 0; z < f.NZ; z++ {
		for y := 0; y < f.NY; y++ {
			for x := 0; x < f.NX; x++ {
				for _, i := range physicalSlots() {
					nx := (x + lattice.DX[i] + f.NX) % f.NX
					ny := (y + lattice.DY[i] + f.NY) % f.NY
					nz := (z + lattice.DZ[i] + f.NZ) % f.NZ
					next[[4]int{nx, ny, nz, i}] = cur[[4]int{x, y, z, i}]
				}
			}
		}
	}

	return next
}

// TestAARoundTrip_AgainstReference runs two identity "collisions"
// (even, then odd) through the AA accessors and checks after each phase
// that every cell observes exactly what a naive double-buffered
// streaming implementation would deliver.
func TestAARoundTrip_AgainstReference(t *testing.T) {
	f := newTestField(t)

	// Seed: unique value per (cell, physical slot), written as the
	// plain even-read state; mirrored into the dense reference.
	ref := make(map[[4]int]float64)
	for z := 0; z < f.NZ; z++ {
		for y := 0; y < f.NY; y++ {
			for x := 0; x < f.NX; x++ {
				var fc [lattice.ND]float64
				for _, i := range physicalSlots() {
					fc[i] = cellValue(x, y, z, i)
					ref[[4]int{x, y, z, i}] = fc[i]
				}
				f.Init(x, y, z, &fc)
			}
		}
	}

	for step, p := range []population.Parity{population.Even, population.Odd} {
		// Phase: identity collision through Load/Store. Every cell's
		// Load must observe the current reference state.
		for z := 0; z < f.NZ; z++ {
			for y := 0; y < f.NY; y++ {
				for x := 0; x < f.NX; x++ {
					var fc [lattice.ND]float64
					f.Load(x, y, z, p, &fc)
					for _, i := range physicalSlots() {
						want := ref[[4]int{x, y, z, i}]
						if fc[i] != want {
							t.Fatalf("step %d parity %v cell (%d,%d,%d) slot %d: Load = %v; want %v",
								step, p, x, y, z, i, fc[i], want)
						}
					}
					f.Store(x, y, z, p, &fc)
				}
			}
		}
		// The reference streams once per phase.
		ref = naiveStream(f, ref)
	}

	// After the even/odd pair, a final even-parity Load must observe
	// the twice-streamed reference.
	for z := 0; z < f.NZ; z++ {
		for y := 0; y < f.NY; y++ {
			for x := 0; x < f.NX; x++ {
				var fc [lattice.ND]float64
				f.Load(x, y, z, population.Even, &fc)
				for _, i := range physicalSlots() {
					want := ref[[4]int{x, y, z, i}]
					if fc[i] != want {
						t.Fatalf("post-pair cell (%d,%d,%d) slot %d: Load = %v; want %v",
							x, y, z, i, fc[i], want)
					}
				}
			}
		}
	}
}

// TestWritePre_FeedsRead verifies the boundary-substitution contract:
// a WritePre under parity p is exactly what the parity-p Read of the
// same (cell, speed) returns, for both parities.
func TestWritePre_FeedsRead(t *testing.T) {
	f := newTestField(t)
	for _, p := range []population.Parity{population.Even, population.Odd} {
		for n := 0; n <= 1; n++ {
			for d := 0; d < lattice.HSpeed; d++ {
				want := cellValue(2, 1, 1, lattice.Slot(n, d)) + float64(p)
				f.WritePre(2, 1, 1, n, d, p, want)
				if got := f.Read(2, 1, 1, n, d, p); got != want {
					t.Errorf("parity %v (n=%d,d=%d): Read = %v; want %v", p, n, d, got, want)
				}
			}
		}
	}
}

// TestReadPost_SeesWrite verifies that ReadPost aliases Write, the pair
// the wall bounce-back operator is built on.
func TestReadPost_SeesWrite(t *testing.T) {
	f := newTestField(t)
	for _, p := range []population.Parity{population.Even, population.Odd} {
		f.Write(1, 2, 0, 1, 5, p, 42.5)
		if got := f.ReadPost(1, 2, 0, 1, 5, p); got != 42.5 {
			t.Errorf("parity %v: ReadPost = %v; want 42.5", p, got)
		}
	}
}
