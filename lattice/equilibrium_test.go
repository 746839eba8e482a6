package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gweiqi/LB-t/lattice"
)

// TestEquilibrium_ReproducesMoments verifies the quadrature closure:
// the zeroth and first moments of the discrete equilibrium reproduce
// the density and velocity it was built from, to rounding error.
func TestEquilibrium_ReproducesMoments(t *testing.T) {
	cases := []struct {
		name            string
		rho, ux, uy, uz float64
	}{
		{"Rest", 1.0, 0, 0, 0},
		{"AxialFlow", 1.0, 0.05, 0, 0},
		{"Dense", 1.2, 0.02, -0.01, 0.03},
		{"Rarefied", 0.8, -0.1, 0.1, -0.05},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var feq [lattice.ND]float64
			lattice.Equilibrium(tc.rho, tc.ux, tc.uy, tc.uz, &feq)

			rho, ux, uy, uz := lattice.Moments(&feq)
			require.InDelta(t, tc.rho, rho, 1e-14)
			require.InDelta(t, tc.ux, ux, 1e-14)
			require.InDelta(t, tc.uy, uy, 1e-14)
			require.InDelta(t, tc.uz, uz, 1e-14)
		})
	}
}

// TestEquilibrium_ZeroWeightSlots verifies that padding and the
// duplicated rest slot stay exactly zero, whatever the macroscopic
// state — the Store path relies on it.
func TestEquilibrium_ZeroWeightSlots(t *testing.T) {
	var feq [lattice.ND]float64
	lattice.Equilibrium(1.3, 0.07, -0.04, 0.09, &feq)
	for _, i := range []int{14, 15, 16, 30, 31} {
		require.Zero(t, feq[i], "slot %d", i)
	}
}

// TestEquilibrium_RestSymmetry: at zero velocity the equilibrium is the
// weight vector scaled by ρ.
func TestEquilibrium_RestSymmetry(t *testing.T) {
	const rho = 0.9
	var feq [lattice.ND]float64
	lattice.Equilibrium(rho, 0, 0, 0, &feq)
	for i := 0; i < lattice.ND; i++ {
		require.InDelta(t, rho*lattice.W[i], feq[i], 1e-15, "slot %d", i)
	}
}
