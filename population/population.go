package population

import (
	"fmt"

	"github.com/Gweiqi/LB-t/lattice"
)

// CacheLine is the alignment contract of the population buffer in bytes.
const CacheLine = 64

// DefaultLambda is the default TRT magic parameter Λ. Λ = ¼ places the
// bounce-back wall exactly halfway along the link for straight walls.
const DefaultLambda = 0.25

// Parity selects the addressing mode of the AA pattern. The driver
// alternates Even and Odd steps; every read/write below is relative to
// the parity of the step being computed.
type Parity uint8

const (
	// Even steps read own-cell slots and write opposing own-cell slots.
	Even Parity = iota
	// Odd steps read upstream neighbours and write downstream neighbours.
	Odd
)

// Other returns the opposite parity.
func (p Parity) Other() Parity { return p ^ 1 }

func (p Parity) String() string {
	if p == Even {
		return "even"
	}

	return "odd"
}

// Option customizes Field construction. Option constructors validate
// nothing themselves; New reports invalid combinations as errors.
type Option func(*Field)

// WithLambda overrides the TRT magic parameter Λ.
func WithLambda(lambda float64) Option {
	return func(f *Field) { f.Lambda = lambda }
}

// Field owns the population buffer of a fixed (NX,NY,NZ) grid plus the
// relaxation parameters derived from the run's physics. The buffer is
// allocated once, aligned to CacheLine, and never resized.
type Field struct {
	NX, NY, NZ int

	// Relaxation parameters, fixed for the run.
	Nu         float64 // kinematic viscosity in lattice units
	Tau        float64 // laminar relaxation time, τ > ½
	Omega      float64 // collision frequency 1/τ (symmetric/plus rate)
	Lambda     float64 // TRT magic parameter Λ
	OmegaMinus float64 // TRT antisymmetric/minus rate

	data []float64 // NX·NY·NZ·ND slots, zero-initialised
}

// New allocates a population field for an NX×NY×NZ grid and derives the
// relaxation parameters from the Reynolds number Re, the characteristic
// velocity u and the characteristic length l (all in lattice units):
//
//	ν = u·l/Re, τ = ν/CS² + ½, ω = 1/τ, ω⁻ = (τ-½)/(Λ+½(τ-½))
//
// Returns ErrBadExtent for non-positive extents, ErrRelaxationTime for
// τ ≤ ½ (i.e. ν ≤ 0) and ErrBadLambda for Λ ≤ 0. The buffer starts
// zeroed; callers initialise it to equilibrium before the first step.
// Complexity: O(NX·NY·NZ) memory, O(1) beyond allocation.
func New(nx, ny, nz int, re, u float64, l int, opts ...Option) (*Field, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, fmt.Errorf("%w: got (%d,%d,%d)", ErrBadExtent, nx, ny, nz)
	}

	f := &Field{
		NX:     nx,
		NY:     ny,
		NZ:     nz,
		Lambda: DefaultLambda,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.Nu = u * float64(l) / re
	f.Tau = f.Nu/lattice.CSSq + 0.5
	if !(f.Tau > 0.5) { // catches NaN as well
		return nil, fmt.Errorf("%w: τ = %v (ν = %v)", ErrRelaxationTime, f.Tau, f.Nu)
	}
	if !(f.Lambda > 0) {
		return nil, fmt.Errorf("%w: Λ = %v", ErrBadLambda, f.Lambda)
	}
	f.Omega = 1.0 / f.Tau
	f.OmegaMinus = (f.Tau - 0.5) / (f.Lambda + 0.5*(f.Tau-0.5))

	f.data = alignedFloats(nx*ny*nz*lattice.ND, CacheLine)

	return f, nil
}

// Cells returns the number of grid cells NX·NY·NZ.
func (f *Field) Cells() int { return f.NX * f.NY * f.NZ }

// Len returns the number of float64 slots in the buffer.
func (f *Field) Len() int { return len(f.data) }

// Clone returns a deep copy of the field (buffer included). Used by
// tests and by the snapshot tooling; never called from the hot loop.
func (f *Field) Clone() *Field {
	c := *f
	c.data = alignedFloats(len(f.data), CacheLine)
	copy(c.data, f.data)

	return &c
}

// Equal reports whether two fields share extents and buffer contents
// bit for bit. Diagnostic helper for round-trip tests.
func (f *Field) Equal(g *Field) bool {
	if f.NX != g.NX || f.NY != g.NY || f.NZ != g.NZ {
		return false
	}
	for i := range f.data {
		if f.data[i] != g.data[i] {
			return false
		}
	}

	return true
}
