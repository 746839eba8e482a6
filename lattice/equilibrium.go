package lattice

// Moments accumulates the zeroth and first raw moments of a cell's
// population array: density ρ = Σf and velocity u = Σc·f / ρ. Padding
// slots hold zeros by construction and drop out of the sums.
// Complexity: O(ND).
func Moments(f *[ND]float64) (rho, ux, uy, uz float64) {
	for i := 0; i < ND; i++ {
		v := f[i]
		rho += v
		ux += v * float64(DX[i])
		uy += v * float64(DY[i])
		uz += v * float64(DZ[i])
	}
	inv := 1.0 / rho
	ux *= inv
	uy *= inv
	uz *= inv

	return rho, ux, uy, uz
}

// Equilibrium fills feq with the second-order Maxwell–Boltzmann
// expansion for density ρ and velocity u:
//
//	feqᵢ = Wᵢ·ρ·(1 + 3c·u + 9/2(c·u)² − 3/2u²)
//
// Slots with zero weight (padding, duplicated rest) come out exactly 0.
// Complexity: O(ND).
func Equilibrium(rho, ux, uy, uz float64, feq *[ND]float64) {
	uu := 1.5 * (ux*ux + uy*uy + uz*uz)
	for i := 0; i < ND; i++ {
		cu := 3.0 * (float64(DX[i])*ux + float64(DY[i])*uy + float64(DZ[i])*uz)
		feq[i] = W[i] * rho * (1.0 + cu + 0.5*cu*cu - uu)
	}
}
