package lattice_test

import (
	"fmt"

	"github.com/Gweiqi/LB-t/lattice"
)

// The equilibrium distribution and the moment computation are exact
// inverses of each other: moments of feq(ρ,u) give back (ρ,u).
func ExampleMoments() {
	var feq [lattice.ND]float64
	lattice.Equilibrium(1.0, 0.05, 0, 0, &feq)

	rho, ux, uy, uz := lattice.Moments(&feq)
	fmt.Printf("rho=%.2f u=(%.2f,%.2f,%.2f)\n", rho, ux, uy, uz)
	// Output: rho=1.00 u=(0.05,0.00,0.00)
}

// Opposite pairs slots across the two buffer halves; applying it twice
// is the identity.
func ExampleOpposite() {
	i := lattice.Slot(0, 3)
	j := lattice.Opposite(i)

	fmt.Println(j, lattice.Opposite(j))
	// Output: 19 3
}
