package boundary

import (
	"errors"
	"fmt"
)

// Sentinel errors for boundary setup.
var (
	// ErrElementOutOfRange indicates an element whose cell (or whose
	// fluid neighbour along the normal) lies outside the grid.
	ErrElementOutOfRange = errors.New("boundary: element coordinates out of range")
)

// Orientation tags the face an element sits on. Its unit normal points
// from the element into the fluid interior.
type Orientation uint8

const (
	// Left is the x=0 face; normal +x.
	Left Orientation = iota
	// Right is the x=NX-1 face; normal -x.
	Right
	// Front is the y=0 face; normal +y.
	Front
	// Back is the y=NY-1 face; normal -y.
	Back
	// Bottom is the z=0 face; normal +z.
	Bottom
	// Top is the z=NZ-1 face; normal -z.
	Top
)

// Normal returns the integer unit normal of the orientation, pointing
// into the fluid.
func (o Orientation) Normal() (nx, ny, nz int) {
	switch o {
	case Left:
		return 1, 0, 0
	case Right:
		return -1, 0, 0
	case Front:
		return 0, 1, 0
	case Back:
		return 0, -1, 0
	case Bottom:
		return 0, 0, 1
	default: // Top
		return 0, 0, -1
	}
}

func (o Orientation) String() string {
	switch o {
	case Left:
		return "left"
	case Right:
		return "right"
	case Front:
		return "front"
	case Back:
		return "back"
	case Bottom:
		return "bottom"
	default:
		return "top"
	}
}

// Kind selects which macroscopic quantity an element prescribes.
type Kind uint8

const (
	// Velocity prescribes the velocity vector (inlet); density is
	// extrapolated from the fluid neighbour.
	Velocity Kind = iota
	// Pressure prescribes the density (outlet, p = CS²·ρ); velocity is
	// extrapolated from the fluid neighbour.
	Pressure
	// Wall marks a no-slip solid cell handled by bounce-back.
	Wall
)

func (k Kind) String() string {
	switch k {
	case Velocity:
		return "velocity"
	case Pressure:
		return "pressure"
	default:
		return "wall"
	}
}

// Element attaches one boundary condition to one grid cell. Immutable
// after geometry generation.
type Element struct {
	X, Y, Z int         // cell coordinates
	Normal  Orientation // face orientation, normal into the fluid

	// Prescribed macroscopic values; which of them bind depends on the
	// operator the element is fed to (velocity vs pressure vs wall).
	Rho     float64
	U, V, W float64
}

// Validate checks every element's cell and its fluid neighbour along
// the normal against the grid extents. Malformed geometry is fatal at
// setup time; the operators themselves trust their inputs and run
// unguarded in the hot loop.
// Complexity: O(len(elems)).
func Validate(elems []Element, nx, ny, nz int) error {
	for i, e := range elems {
		if e.X < 0 || e.X >= nx || e.Y < 0 || e.Y >= ny || e.Z < 0 || e.Z >= nz {
			return fmt.Errorf("%w: element %d at (%d,%d,%d), grid %dx%dx%d",
				ErrElementOutOfRange, i, e.X, e.Y, e.Z, nx, ny, nz)
		}
		a, b, c := e.Normal.Normal()
		fx, fy, fz := e.X+a, e.Y+b, e.Z+c
		if fx < 0 || fx >= nx || fy < 0 || fy >= ny || fz < 0 || fz >= nz {
			return fmt.Errorf("%w: element %d at (%d,%d,%d) has no %s-side fluid neighbour",
				ErrElementOutOfRange, i, e.X, e.Y, e.Z, e.Normal)
		}
	}

	return nil
}
