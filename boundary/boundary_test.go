package boundary_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gweiqi/LB-t/boundary"
	"github.com/Gweiqi/LB-t/lattice"
	"github.com/Gweiqi/LB-t/population"
)

// newField returns a 6×5×4 population field seeded to equilibrium at
// (ρ=1, u=0) — a neutral, physically valid background.
func newField(t *testing.T) *population.Field {
	t.Helper()
	f, err := population.New(6, 5, 4, 100.0, 0.05, 5)
	require.NoError(t, err)

	var feq [lattice.ND]float64
	lattice.Equilibrium(1.0, 0, 0, 0, &feq)
	for z := 0; z < f.NZ; z++ {
		for y := 0; y < f.NY; y++ {
			for x := 0; x < f.NX; x++ {
				f.Init(x, y, z, &feq)
			}
		}
	}

	return f
}

//----------------------------------------------------------------------------//
// Validate
//----------------------------------------------------------------------------//

// TestValidate covers the fatal-at-setup geometry checks: cell bounds
// and the existence of the fluid neighbour along the normal.
func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		elems []boundary.Element
		err   error
	}{
		{"Empty", nil, nil},
		{"InRange", []boundary.Element{
			{X: 0, Y: 2, Z: 2, Normal: boundary.Left},
			{X: 5, Y: 2, Z: 2, Normal: boundary.Right},
		}, nil},
		{"NegativeCoordinate", []boundary.Element{
			{X: -1, Y: 0, Z: 0, Normal: boundary.Left},
		}, boundary.ErrElementOutOfRange},
		{"BeyondExtent", []boundary.Element{
			{X: 6, Y: 0, Z: 0, Normal: boundary.Left},
		}, boundary.ErrElementOutOfRange},
		{"NeighbourOutside", []boundary.Element{
			// Sits on the x=NX-1 face but claims its fluid is further right.
			{X: 5, Y: 2, Z: 2, Normal: boundary.Left},
		}, boundary.ErrElementOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := boundary.Validate(tc.elems, 6, 5, 4)
			if !errors.Is(err, tc.err) {
				t.Errorf("Validate = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestOrientation_Normals pins the orientation → normal mapping; the
// Guo neighbour lookup depends on these exact vectors.
func TestOrientation_Normals(t *testing.T) {
	want := map[boundary.Orientation][3]int{
		boundary.Left:   {1, 0, 0},
		boundary.Right:  {-1, 0, 0},
		boundary.Front:  {0, 1, 0},
		boundary.Back:   {0, -1, 0},
		boundary.Bottom: {0, 0, 1},
		boundary.Top:    {0, 0, -1},
	}
	for o, n := range want {
		a, b, c := o.Normal()
		if [3]int{a, b, c} != n {
			t.Errorf("%s.Normal() = (%d,%d,%d); want %v", o, a, b, c, n)
		}
	}
}

//----------------------------------------------------------------------------//
// Guo non-equilibrium extrapolation
//----------------------------------------------------------------------------//

// TestGuo_VelocityInlet verifies the inlet scenario: a cell tagged with
// prescribed velocity (U,0,0) on a neutral field converges, after the
// operator runs, to populations whose moments are (ρ_neighbour, U,0,0).
func TestGuo_VelocityInlet(t *testing.T) {
	const u0 = 0.05
	for _, p := range []population.Parity{population.Even, population.Odd} {
		pop := newField(t)
		inlet := []boundary.Element{
			{X: 0, Y: 2, Z: 2, Normal: boundary.Left, Rho: 1.0, U: u0},
		}
		boundary.Guo(boundary.Velocity, inlet, pop, p)

		var fb [lattice.ND]float64
		pop.Load(0, 2, 2, p, &fb)
		rho, ux, uy, uz := lattice.Moments(&fb)
		require.InDelta(t, 1.0, rho, 1e-13, "parity %v", p)
		require.InDelta(t, u0, ux, 1e-13, "parity %v", p)
		require.InDelta(t, 0.0, uy, 1e-13, "parity %v", p)
		require.InDelta(t, 0.0, uz, 1e-13, "parity %v", p)
	}
}

// TestGuo_PressureOutlet verifies the outlet scenario: prescribed
// density binds, velocity is borrowed from the fluid neighbour.
func TestGuo_PressureOutlet(t *testing.T) {
	const rhoOut = 1.1
	pop := newField(t)
	outlet := []boundary.Element{
		{X: 5, Y: 2, Z: 2, Normal: boundary.Right, Rho: rhoOut},
	}
	boundary.Guo(boundary.Pressure, outlet, pop, population.Even)

	var fb [lattice.ND]float64
	pop.Load(5, 2, 2, population.Even, &fb)
	rho, ux, uy, uz := lattice.Moments(&fb)
	require.InDelta(t, rhoOut, rho, 1e-13)
	require.InDelta(t, 0.0, ux, 1e-13)
	require.InDelta(t, 0.0, uy, 1e-13)
	require.InDelta(t, 0.0, uz, 1e-13)
}

// TestGuo_WallKindPanics: walls carry no macroscopic target; feeding
// them to Guo is a programmer error.
func TestGuo_WallKindPanics(t *testing.T) {
	pop := newField(t)
	require.Panics(t, func() {
		boundary.Guo(boundary.Wall, nil, pop, population.Even)
	})
}

//----------------------------------------------------------------------------//
// Halfway bounce-back
//----------------------------------------------------------------------------//

// TestBounceBack_Reflection verifies, component-wise and for both
// parities, that the population emitted from a fluid cell towards the
// wall reappears at the same cell travelling the exact reverse
// direction on the following step.
func TestBounceBack_Reflection(t *testing.T) {
	for _, p := range []population.Parity{population.Even, population.Odd} {
		pop := newField(t)
		wall := []boundary.Element{{X: 2, Y: 2, Z: 2, Normal: boundary.Left}}

		// Emit a unique value from every fluid neighbour towards the wall.
		emit := func(n, d int) float64 { return 1.0 + float64(lattice.Slot(n, d))/100.0 }
		for n := 0; n <= 1; n++ {
			for d := 1; d < lattice.HSpeed; d++ {
				s := lattice.Slot(n, d)
				nbx, nby, nbz := 2+lattice.DX[s], 2+lattice.DY[s], 2+lattice.DZ[s]
				// The neighbour's outgoing value towards the wall travels the
				// reversed speed (1-n,d).
				pop.Write(nbx, nby, nbz, 1-n, d, p, emit(n, d))
			}
		}

		boundary.BounceBackHalfway(wall, pop, p)

		for n := 0; n <= 1; n++ {
			for d := 1; d < lattice.HSpeed; d++ {
				s := lattice.Slot(n, d)
				nbx, nby, nbz := 2+lattice.DX[s], 2+lattice.DY[s], 2+lattice.DZ[s]
				got := pop.Read(nbx, nby, nbz, n, d, p.Other())
				if got != emit(n, d) {
					t.Errorf("parity %v link (%d,%d): reflected = %v; want %v",
						p, n, d, got, emit(n, d))
				}
			}
		}
	}
}
