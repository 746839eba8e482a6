package continuum

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// snapshotMagic identifies a continuum snapshot ("LBTC", little endian).
const snapshotMagic uint32 = 0x4354424C

// ErrSnapshotHeader indicates a snapshot whose magic number or extents
// do not match the receiving field.
var ErrSnapshotHeader = fmt.Errorf("continuum: snapshot header mismatch")

type snapshotHeader struct {
	Magic          uint32
	NX, NY, NZ, NM uint32
}

// Export writes the field as a binary snapshot: fixed little-endian
// header followed by the four raw planes in ρ, ux, uy, uz order.
// Byte-exact counterpart of Import.
func (f *Field) Export(w io.Writer) error {
	hdr := snapshotHeader{
		Magic: snapshotMagic,
		NX:    uint32(f.NX),
		NY:    uint32(f.NY),
		NZ:    uint32(f.NZ),
		NM:    NM,
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("continuum: export header: %w", err)
	}
	for _, plane := range [][]float64{f.rho, f.ux, f.uy, f.uz} {
		if err := binary.Write(w, binary.LittleEndian, plane); err != nil {
			return fmt.Errorf("continuum: export plane: %w", err)
		}
	}

	return nil
}

// Import restores a snapshot written by Export into a field of
// matching extents. Header mismatch yields ErrSnapshotHeader.
func (f *Field) Import(r io.Reader) error {
	var hdr snapshotHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("continuum: import header: %w", err)
	}
	if hdr.Magic != snapshotMagic ||
		hdr.NX != uint32(f.NX) || hdr.NY != uint32(f.NY) || hdr.NZ != uint32(f.NZ) ||
		hdr.NM != NM {
		return fmt.Errorf("%w: got %dx%dx%dx%d", ErrSnapshotHeader,
			hdr.NX, hdr.NY, hdr.NZ, hdr.NM)
	}
	for _, plane := range [][]float64{f.rho, f.ux, f.uy, f.uz} {
		if err := binary.Read(r, binary.LittleEndian, plane); err != nil {
			return fmt.Errorf("continuum: import plane: %w", err)
		}
	}

	return nil
}

// ExportVTK writes the field as a legacy-VTK structured-points dataset
// (ASCII): one density scalar field plus one velocity vector field,
// x-fastest point order as the format prescribes.
func (f *Field) ExportVTK(w io.Writer, step int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# vtk DataFile Version 3.0\n")
	fmt.Fprintf(bw, "LB-t flow field, step %d\n", step)
	fmt.Fprintf(bw, "ASCII\n")
	fmt.Fprintf(bw, "DATASET STRUCTURED_POINTS\n")
	fmt.Fprintf(bw, "DIMENSIONS %d %d %d\n", f.NX, f.NY, f.NZ)
	fmt.Fprintf(bw, "ORIGIN 0 0 0\n")
	fmt.Fprintf(bw, "SPACING 1 1 1\n")
	fmt.Fprintf(bw, "POINT_DATA %d\n", f.Cells())

	fmt.Fprintf(bw, "SCALARS density double 1\n")
	fmt.Fprintf(bw, "LOOKUP_TABLE default\n")
	for _, r := range f.rho {
		fmt.Fprintf(bw, "%g\n", r)
	}

	fmt.Fprintf(bw, "VECTORS velocity double\n")
	for i := range f.ux {
		fmt.Fprintf(bw, "%g %g %g\n", f.ux[i], f.uy[i], f.uz[i])
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("continuum: vtk export: %w", err)
	}

	return nil
}

// ExportVTKFile writes the VTK dataset of one step into
// dir/step_<n>.vtk, creating the directory if needed.
func (f *Field) ExportVTKFile(dir string, step int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("continuum: vtk export: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("step_%d.vtk", step))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("continuum: vtk export: %w", err)
	}
	defer file.Close()

	return f.ExportVTK(file, step)
}

// ExportFile writes the binary snapshot of one step into
// dir/step_<n>.bin, creating the directory if needed.
func (f *Field) ExportFile(dir string, step int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("continuum: binary export: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("step_%d.bin", step))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("continuum: binary export: %w", err)
	}
	defer file.Close()

	return f.Export(file)
}
