package lattice

// Discretisation parameters of the D3Q27 velocity set.
const (
	// Dim is the number of spatial dimensions.
	Dim = 3
	// Speeds is the number of discrete velocities (27 = 1 rest + 26 moving).
	Speeds = 27
	// HSpeed is the size of one half of the velocity set including the
	// rest speed: rest + 13 positive directions.
	HSpeed = (Speeds + 1) / 2
	// Pad extends each half to a SIMD/cache friendly stride.
	Pad = 2
	// Off is the padded stride of one half; the negative half of a cell
	// starts Off slots after the positive half.
	Off = HSpeed + Pad
	// ND is the padded number of slots stored per cell.
	ND = 2 * Off
)

// CS is the lattice speed of sound, 1/√3 in lattice units.
// CSSq (= CS²) is the value that actually appears in the physics:
// pressure p = CS²·ρ and ν = CS²·(τ−½).
const (
	CS   = 0.577350269189625764509148780502
	CSSq = 1.0 / 3.0
)

// DX, DY and DZ are the integer components of the discrete velocities,
// indexed by slot (n*Off + d). Padding slots carry the zero vector so
// that uniform loops over a half stay branch-free.
var (
	DX = [ND]int{
		0, 1, 0, 0, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 0, 0,
		0, -1, 0, 0, -1, -1, -1, -1, 0, 0, -1, -1, -1, -1, 0, 0,
	}
	DY = [ND]int{
		0, 0, 1, 0, 1, -1, 0, 0, 1, 1, 1, 1, -1, -1, 0, 0,
		0, 0, -1, 0, -1, 1, 0, 0, -1, -1, -1, -1, 1, 1, 0, 0,
	}
	DZ = [ND]int{
		0, 0, 0, 1, 0, 0, 1, -1, 1, -1, 1, -1, 1, -1, 0, 0,
		0, 0, 0, -1, 0, 0, -1, 1, -1, 1, -1, 1, -1, 1, 0, 0,
	}
)

// W holds the Gauss–Hermite quadrature weights per slot: 8/27 for the
// rest speed, 2/27 for faces, 1/54 for edges, 1/216 for corners. The
// duplicated rest slot and the padding slots carry weight 0 so they drop
// out of every moment sum.
var W = [ND]float64{
	8.0 / 27.0,
	2.0 / 27.0, 2.0 / 27.0, 2.0 / 27.0,
	1.0 / 54.0, 1.0 / 54.0, 1.0 / 54.0, 1.0 / 54.0, 1.0 / 54.0, 1.0 / 54.0,
	1.0 / 216.0, 1.0 / 216.0, 1.0 / 216.0, 1.0 / 216.0,
	0, 0,
	0,
	2.0 / 27.0, 2.0 / 27.0, 2.0 / 27.0,
	1.0 / 54.0, 1.0 / 54.0, 1.0 / 54.0, 1.0 / 54.0, 1.0 / 54.0, 1.0 / 54.0,
	1.0 / 216.0, 1.0 / 216.0, 1.0 / 216.0, 1.0 / 216.0,
	0, 0,
}

// Slot maps a half index n (0 = positive, 1 = negative) and an in-half
// direction d to the linear slot n*Off + d.
// Complexity: O(1).
func Slot(n, d int) int { return n*Off + d }

// Opposite returns the slot of the velocity opposing slot i. Opposing
// speeds live in the other half at the same in-half offset; the rest
// speed maps onto its duplicated (always zero-weight) twin, which is
// consistent because its velocity vector is zero.
// Complexity: O(1).
func Opposite(i int) int {
	if i < Off {
		return i + Off
	}

	return i - Off
}
