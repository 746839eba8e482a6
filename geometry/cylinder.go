package geometry

import (
	"errors"
	"fmt"

	"github.com/Gweiqi/LB-t/boundary"
)

// Sentinel errors for geometry generation.
var (
	// ErrBadRadius indicates a non-positive cylinder radius.
	ErrBadRadius = errors.New("geometry: cylinder radius must be positive")
	// ErrCenterOutside indicates a cylinder center outside the grid.
	ErrCenterOutside = errors.New("geometry: cylinder center outside the grid")
	// ErrObstacleTouchesFace indicates an obstacle that reaches the
	// inlet or outlet face, which would starve the prescribed sheets.
	ErrObstacleTouchesFace = errors.New("geometry: obstacle touches inlet or outlet face")
)

// Cylinder describes the benchmark obstacle: a circular cylinder with
// axis along x, spanning the full domain depth, centered in the
// cross-flow plane.
type Cylinder struct {
	// Radius of the cylinder in cells.
	Radius int
	// CY, CZ is the axis position in the cross-flow (y,z) plane.
	CY, CZ int
	// SideWalls additionally closes the four lateral domain faces
	// (y=0, y=NY-1, z=0, z=NZ-1) with no-slip sheets, turning the
	// periodic duct into a closed channel.
	SideWalls bool
}

// Domain couples the grid extents with the inlet state the generated
// elements prescribe.
type Domain struct {
	NX, NY, NZ int
	// Rho0 is the reference density prescribed at the outlet and
	// reported as the inlet element density hint.
	Rho0 float64
	// U0, V0, W0 is the inflow velocity prescribed at the inlet.
	U0, V0, W0 float64
}

// inside reports whether the cross-section point (y,z) lies in the
// solid disc.
func (c Cylinder) inside(y, z int) bool {
	dy, dz := y-c.CY, z-c.CZ

	return dy*dy+dz*dz <= c.Radius*c.Radius
}

// Generate voxelizes the cylinder into the three element lists the
// driver consumes: no-slip walls, the x=0 velocity inlet sheet and the
// x=NX-1 pressure outlet sheet. Cells claimed as wall are excluded
// from the inlet and outlet sheets (wall wins), so the lists are
// pairwise disjoint. All three lists pass boundary.Validate for the
// given extents. Complexity: O(NX·NY·NZ).
func (c Cylinder) Generate(dom Domain) (wall, inlet, outlet []boundary.Element, err error) {
	if dom.NX < 3 || dom.NY < 3 || dom.NZ < 3 {
		return nil, nil, nil, fmt.Errorf("geometry: grid %dx%dx%d too small, need at least 3 cells per axis",
			dom.NX, dom.NY, dom.NZ)
	}
	if c.Radius <= 0 {
		return nil, nil, nil, fmt.Errorf("%w: r = %d", ErrBadRadius, c.Radius)
	}
	if c.CY < 0 || c.CY >= dom.NY || c.CZ < 0 || c.CZ >= dom.NZ {
		return nil, nil, nil, fmt.Errorf("%w: center (%d,%d), cross-section %dx%d",
			ErrCenterOutside, c.CY, c.CZ, dom.NY, dom.NZ)
	}

	solid := make(map[[3]int]bool, dom.NY*dom.NZ)
	add := func(x, y, z int, o boundary.Orientation) {
		key := [3]int{x, y, z}
		if solid[key] {
			return
		}
		solid[key] = true
		wall = append(wall, boundary.Element{X: x, Y: y, Z: z, Normal: o, Rho: dom.Rho0})
	}

	// Side walls first so that at a face-cylinder overlap the face
	// orientation wins — its normal is guaranteed to point into the
	// domain, the radial one is not.
	if c.SideWalls {
		for x := 0; x < dom.NX; x++ {
			for z := 0; z < dom.NZ; z++ {
				add(x, 0, z, boundary.Front)
				add(x, dom.NY-1, z, boundary.Back)
			}
			for y := 1; y < dom.NY-1; y++ {
				add(x, y, 0, boundary.Bottom)
				add(x, y, dom.NZ-1, boundary.Top)
			}
		}
	}

	for z := 0; z < dom.NZ; z++ {
		for y := 0; y < dom.NY; y++ {
			if !c.inside(y, z) {
				continue
			}
			o := c.radialOrientation(y, z, dom)
			for x := 0; x < dom.NX; x++ {
				add(x, y, z, o)
			}
		}
	}

	for z := 0; z < dom.NZ; z++ {
		for y := 0; y < dom.NY; y++ {
			if solid[[3]int{0, y, z}] || solid[[3]int{dom.NX - 1, y, z}] {
				continue
			}
			inlet = append(inlet, boundary.Element{
				X: 0, Y: y, Z: z, Normal: boundary.Left,
				Rho: dom.Rho0, U: dom.U0, V: dom.V0, W: dom.W0,
			})
			outlet = append(outlet, boundary.Element{
				X: dom.NX - 1, Y: y, Z: z, Normal: boundary.Right,
				Rho: dom.Rho0, U: dom.U0, V: dom.V0, W: dom.W0,
			})
		}
	}
	if len(inlet) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: no fluid cells left on the x=0 sheet", ErrObstacleTouchesFace)
	}

	for _, lst := range [][]boundary.Element{wall, inlet, outlet} {
		if err := boundary.Validate(lst, dom.NX, dom.NY, dom.NZ); err != nil {
			return nil, nil, nil, err
		}
	}

	return wall, inlet, outlet, nil
}

// radialOrientation maps a solid cross-section cell to the dominant
// outward direction from the axis, clamped so the resulting neighbour
// stays inside the grid (cells on the axis default towards +y).
func (c Cylinder) radialOrientation(y, z int, dom Domain) boundary.Orientation {
	dy, dz := y-c.CY, z-c.CZ
	ady, adz := dy, dz
	if ady < 0 {
		ady = -ady
	}
	if adz < 0 {
		adz = -adz
	}

	var o boundary.Orientation
	switch {
	case ady >= adz && dy >= 0:
		o = boundary.Front // normal +y, away from the axis
	case ady >= adz:
		o = boundary.Back // normal -y
	case dz >= 0:
		o = boundary.Bottom // normal +z
	default:
		o = boundary.Top // normal -z
	}

	// Clamp: if the outward neighbour would fall off the grid, flip to
	// the opposite face so Validate stays satisfied.
	_, ny, nz := o.Normal()
	fy, fz := y+ny, z+nz
	if fy < 0 || fy >= dom.NY {
		if o == boundary.Front {
			o = boundary.Back
		} else {
			o = boundary.Front
		}
	}
	if fz < 0 || fz >= dom.NZ {
		if o == boundary.Bottom {
			o = boundary.Top
		} else {
			o = boundary.Bottom
		}
	}

	return o
}
