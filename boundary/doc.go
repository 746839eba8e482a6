// Package boundary models the immersed and domain-edge conditions of
// the solver and the two operators that enforce them on the population
// buffer: Guo non-equilibrium extrapolation for prescribed-velocity
// inlets and prescribed-pressure outlets, and halfway bounce-back for
// no-slip walls.
//
// A boundary Element is a lightweight descriptor: grid coordinates, an
// orientation whose unit normal points into the fluid, and the
// prescribed macroscopic values. Element lists are generated once by
// the geometry provider, validated once (out-of-range coordinates are
// fatal at setup — later detection would corrupt results silently) and
// are read-only for the rest of the run. Elements reference cells by
// coordinate; they never own population data.
//
// Ordering contract (fixed in the sim driver, load-bearing):
//
//	Guo(inlet) → Guo(outlet) → collide-stream → BounceBackHalfway(wall)
//
// Guo runs before the bulk sweep so that the sweep's reads at boundary
// cells consume reconstructed populations instead of wrapped-around
// garbage; bounce-back runs after it so that it reflects this step's
// outgoing populations, not last step's. Swapping either silently
// breaks conservation at boundary cells.
package boundary
