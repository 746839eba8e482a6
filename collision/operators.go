package collision

import (
	"fmt"
	"math"

	"github.com/Gweiqi/LB-t/lattice"
	"github.com/Gweiqi/LB-t/population"
)

// Smago is the Smagorinsky constant C_S of the eddy-viscosity model.
const Smago = 0.17

// Operator relaxes one cell's populations towards equilibrium. Relax
// mutates f in place; feq holds the precomputed equilibrium and rho the
// cell density (used only by strain-rate-aware variants). Operators are
// stateless per cell and safe for concurrent use across cells.
type Operator interface {
	// Relax produces post-collision populations from pre-collision
	// populations and local moments.
	Relax(rho float64, f, feq *[lattice.ND]float64)
	// Tau returns the laminar relaxation time the operator was built with.
	Tau() float64
	// Name returns the strategy name for reports and logs.
	Name() string
}

// validateTau guards the common stability precondition τ > ½.
func validateTau(tau float64) error {
	if !(tau > 0.5) { // rejects NaN too
		return fmt.Errorf("%w: τ = %v", population.ErrRelaxationTime, tau)
	}

	return nil
}

//----------------------------------------------------------------------------//
// BGK
//----------------------------------------------------------------------------//

// BGK is the single-relaxation-time operator: one global rate ω = 1/τ.
type BGK struct {
	tau, omega float64
}

// NewBGK constructs a BGK operator; τ ≤ ½ is rejected with
// population.ErrRelaxationTime.
func NewBGK(tau float64) (*BGK, error) {
	if err := validateTau(tau); err != nil {
		return nil, err
	}

	return &BGK{tau: tau, omega: 1.0 / tau}, nil
}

func (o *BGK) Tau() float64 { return o.tau }
func (o *BGK) Name() string { return "bgk" }

// Relax applies fᵢ ← fᵢ + ω(feqᵢ − fᵢ). Zero-weight slots carry zeros
// on both sides and stay zero.
func (o *BGK) Relax(_ float64, f, feq *[lattice.ND]float64) {
	for i := 0; i < lattice.ND; i++ {
		f[i] += o.omega * (feq[i] - f[i])
	}
}

//----------------------------------------------------------------------------//
// TRT
//----------------------------------------------------------------------------//

// TRT is the two-relaxation-time operator. The symmetric (even) part of
// each opposing pair relaxes at ω, the antisymmetric (odd) part at
// ω⁻ = (τ−½)/(Λ+½(τ−½)).
type TRT struct {
	tau, lambda       float64
	omega, omegaMinus float64
}

// NewTRT constructs a TRT operator with magic parameter Λ. Λ ≤ 0 is
// rejected with population.ErrBadLambda.
func NewTRT(tau, lambda float64) (*TRT, error) {
	if err := validateTau(tau); err != nil {
		return nil, err
	}
	if !(lambda > 0) {
		return nil, fmt.Errorf("%w: Λ = %v", population.ErrBadLambda, lambda)
	}

	return &TRT{
		tau:        tau,
		lambda:     lambda,
		omega:      1.0 / tau,
		omegaMinus: (tau - 0.5) / (lambda + 0.5*(tau-0.5)),
	}, nil
}

func (o *TRT) Tau() float64 { return o.tau }
func (o *TRT) Name() string { return "trt" }

// Relax decomposes each opposing pair into symmetric/antisymmetric
// halves and relaxes them at their own rates. The rest speed has no
// antisymmetric part and falls back to the symmetric rate.
func (o *TRT) Relax(_ float64, f, feq *[lattice.ND]float64) {
	f[0] += o.omega * (feq[0] - f[0])
	for d := 1; d < lattice.HSpeed; d++ {
		i, j := d, lattice.Off+d
		fp := 0.5 * (f[i] + f[j])
		fm := 0.5 * (f[i] - f[j])
		ep := 0.5 * (feq[i] + feq[j])
		em := 0.5 * (feq[i] - feq[j])
		sym := o.omega * (fp - ep)
		asym := o.omegaMinus * (fm - em)
		f[i] -= sym + asym
		f[j] -= sym - asym
	}
}

//----------------------------------------------------------------------------//
// BGK + Smagorinsky eddy viscosity
//----------------------------------------------------------------------------//

// Smagorinsky is BGK with a per-cell eddy-viscosity correction: the
// relaxation time is raised by τ_t derived from the norm of the
// non-equilibrium momentum flux Π, which estimates the local strain
// rate without finite differences.
type Smagorinsky struct {
	tau float64
	cs2 float64 // C_S², precomputed
}

// NewSmagorinsky constructs the eddy-viscosity-corrected operator with
// the default Smagorinsky constant.
func NewSmagorinsky(tau float64) (*Smagorinsky, error) {
	if err := validateTau(tau); err != nil {
		return nil, err
	}

	return &Smagorinsky{tau: tau, cs2: Smago * Smago}, nil
}

func (o *Smagorinsky) Tau() float64 { return o.tau }
func (o *Smagorinsky) Name() string { return "smagorinsky" }

// Relax computes Π = Σ (fᵢ−feqᵢ)·cc, raises the relaxation time by
//
//	τ_t = ½(√(τ² + 18√2·C_S²·‖Π‖/ρ) − τ)
//
// and applies BGK at the effective rate 1/(τ+τ_t). At equilibrium
// Π = 0, τ_t = 0 and the operator degenerates to plain BGK.
func (o *Smagorinsky) Relax(rho float64, f, feq *[lattice.ND]float64) {
	var pxx, pyy, pzz, pxy, pxz, pyz float64
	for i := 0; i < lattice.ND; i++ {
		neq := f[i] - feq[i]
		cx, cy, cz := float64(lattice.DX[i]), float64(lattice.DY[i]), float64(lattice.DZ[i])
		pxx += neq * cx * cx
		pyy += neq * cy * cy
		pzz += neq * cz * cz
		pxy += neq * cx * cy
		pxz += neq * cx * cz
		pyz += neq * cy * cz
	}
	norm := math.Sqrt(pxx*pxx + pyy*pyy + pzz*pzz + 2.0*(pxy*pxy+pxz*pxz+pyz*pyz))

	tauT := 0.5 * (math.Sqrt(o.tau*o.tau+18.0*math.Sqrt2*o.cs2*norm/rho) - o.tau)
	omega := 1.0 / (o.tau + tauT)
	for i := 0; i < lattice.ND; i++ {
		f[i] += omega * (feq[i] - f[i])
	}
}
