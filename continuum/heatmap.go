package continuum

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// speedSlice adapts one z-plane of the field to plotter.GridXYZ,
// exposing the velocity magnitude |u| per cell.
type speedSlice struct {
	f *Field
	z int
}

func (s speedSlice) Dims() (c, r int) { return s.f.NX, s.f.NY }
func (s speedSlice) X(c int) float64  { return float64(c) }
func (s speedSlice) Y(r int) float64  { return float64(r) }

func (s speedSlice) Z(c, r int) float64 {
	i := s.f.index(c, r, s.z)

	return math.Sqrt(s.f.ux[i]*s.f.ux[i] + s.f.uy[i]*s.f.uy[i] + s.f.uz[i]*s.f.uz[i])
}

// ExportHeatmap renders the velocity magnitude of the z-plane as a PNG
// heatmap — the quick-look companion to the full VTK dump.
func (f *Field) ExportHeatmap(path string, z int) error {
	if z < 0 || z >= f.NZ {
		return fmt.Errorf("continuum: heatmap plane %d out of [0,%d)", z, f.NZ)
	}

	hm := plotter.NewHeatMap(speedSlice{f: f, z: z}, palette.Heat(16, 1))
	p := plot.New()
	p.Title.Text = fmt.Sprintf("|u|, z = %d", z)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(hm)

	width := vg.Length(f.NX) * vg.Millimeter
	height := vg.Length(f.NY) * vg.Millimeter
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("continuum: heatmap export: %w", err)
	}

	return nil
}
