package continuum

import (
	"errors"
	"fmt"
	"unsafe"

	"gonum.org/v1/gonum/floats"

	"github.com/Gweiqi/LB-t/boundary"
)

// NM is the number of macroscopic values per cell: ρ, ux, uy, uz.
const NM = 4

// CacheLine is the alignment contract of the field planes in bytes.
const CacheLine = 64

// Macroscopic plane selectors for At.
const (
	Rho = iota
	UX
	UY
	UZ
)

// ErrBadExtent indicates a non-positive grid dimension.
var ErrBadExtent = errors.New("continuum: grid extents must be positive")

// Field stores the four macroscopic planes of a fixed (NX,NY,NZ) grid.
// Allocated once, mutated in place by the collision sweep, never
// resized.
type Field struct {
	NX, NY, NZ int

	rho, ux, uy, uz []float64
}

// New allocates a zeroed continuum field.
// Complexity: O(NX·NY·NZ) memory.
func New(nx, ny, nz int) (*Field, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, fmt.Errorf("%w: got (%d,%d,%d)", ErrBadExtent, nx, ny, nz)
	}
	n := nx * ny * nz

	return &Field{
		NX:  nx,
		NY:  ny,
		NZ:  nz,
		rho: alignedFloats(n, CacheLine),
		ux:  alignedFloats(n, CacheLine),
		uy:  alignedFloats(n, CacheLine),
		uz:  alignedFloats(n, CacheLine),
	}, nil
}

// Cells returns the number of grid cells.
func (f *Field) Cells() int { return f.NX * f.NY * f.NZ }

// index maps (x,y,z) to the row-major plane offset. Pure function.
func (f *Field) index(x, y, z int) int {
	return (z*f.NY+y)*f.NX + x
}

// Set writes all four macroscopic values of cell (x,y,z) at once — the
// shape the collision sweep produces them in.
func (f *Field) Set(x, y, z int, rho, ux, uy, uz float64) {
	i := f.index(x, y, z)
	f.rho[i] = rho
	f.ux[i] = ux
	f.uy[i] = uy
	f.uz[i] = uz
}

// At reads one macroscopic value (plane selector Rho, UX, UY or UZ) of
// cell (x,y,z).
func (f *Field) At(x, y, z, m int) float64 {
	i := f.index(x, y, z)
	switch m {
	case Rho:
		return f.rho[i]
	case UX:
		return f.ux[i]
	case UY:
		return f.uy[i]
	default:
		return f.uz[i]
	}
}

// Init fills the whole field with a uniform state — the initial
// condition of every run.
// Complexity: O(NX·NY·NZ).
func (f *Field) Init(rho0, u0, v0, w0 float64) {
	fill(f.rho, rho0)
	fill(f.ux, u0)
	fill(f.uy, v0)
	fill(f.uz, w0)
}

// ZeroWhere clears all four values at the cells of the given boundary
// elements, so that walls and inlet/outlet sheets are not plotted as
// flow. Elements are trusted to be in range: they passed
// boundary.Validate at setup.
// Complexity: O(len(elems)).
func (f *Field) ZeroWhere(elems []boundary.Element) {
	for _, e := range elems {
		f.Set(e.X, e.Y, e.Z, 0, 0, 0, 0)
	}
}

//----------------------------------------------------------------------------//
// Integral diagnostics
//----------------------------------------------------------------------------//

// Mass returns the total mass Σρ over the grid.
func (f *Field) Mass() float64 {
	return floats.Sum(f.rho)
}

// Momentum returns the total momentum (Σρ·ux, Σρ·uy, Σρ·uz).
func (f *Field) Momentum() (px, py, pz float64) {
	return floats.Dot(f.rho, f.ux), floats.Dot(f.rho, f.uy), floats.Dot(f.rho, f.uz)
}

// KineticEnergy returns ½·Σρ·|u|² over the grid.
func (f *Field) KineticEnergy() float64 {
	var e float64
	for i, r := range f.rho {
		e += r * (f.ux[i]*f.ux[i] + f.uy[i]*f.uy[i] + f.uz[i]*f.uz[i])
	}

	return 0.5 * e
}

func fill(s []float64, v float64) {
	for i := range s {
		s[i] = v
	}
}

// alignedFloats allocates a float64 slice whose backing array starts on
// an align-byte boundary: over-allocate by one alignment unit and
// re-slice to the first aligned element.
func alignedFloats(n, align int) []float64 {
	if n <= 0 {
		return nil
	}
	pad := align / 8
	raw := make([]float64, n+pad)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	shift := 0
	if rem := addr % uintptr(align); rem != 0 {
		shift = (align - int(rem)) / 8
	}

	return raw[shift : shift+n : shift+n]
}
