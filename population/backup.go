package population

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Gweiqi/LB-t/lattice"
)

// snapshotMagic identifies a population snapshot ("LBTP", little endian).
const snapshotMagic uint32 = 0x5054424C

// snapshotHeader is the fixed-size prefix of a binary snapshot. The
// layout is frozen: export and import must agree byte for byte so that
// a run can restart from its own backup.
type snapshotHeader struct {
	Magic          uint32
	NX, NY, NZ, ND uint32
}

// Export writes the field as a binary snapshot: fixed little-endian
// header followed by the raw buffer. The buffer is dumped as stored,
// parity-dependent layout included, so a restart must resume on the
// same parity it was taken at (the driver snapshots only on step-pair
// boundaries, i.e. even parity).
func (f *Field) Export(w io.Writer) error {
	hdr := snapshotHeader{
		Magic: snapshotMagic,
		NX:    uint32(f.NX),
		NY:    uint32(f.NY),
		NZ:    uint32(f.NZ),
		ND:    uint32(lattice.ND),
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("population: export header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, f.data); err != nil {
		return fmt.Errorf("population: export buffer: %w", err)
	}

	return nil
}

// Import restores a snapshot previously written by Export into an
// already-allocated field of matching extents. A magic or extent
// mismatch yields ErrSnapshotHeader and leaves the buffer untouched.
func (f *Field) Import(r io.Reader) error {
	var hdr snapshotHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("population: import header: %w", err)
	}
	if hdr.Magic != snapshotMagic ||
		hdr.NX != uint32(f.NX) || hdr.NY != uint32(f.NY) || hdr.NZ != uint32(f.NZ) ||
		hdr.ND != uint32(lattice.ND) {
		return fmt.Errorf("%w: got %dx%dx%dx%d", ErrSnapshotHeader,
			hdr.NX, hdr.NY, hdr.NZ, hdr.ND)
	}
	if err := binary.Read(r, binary.LittleEndian, f.data); err != nil {
		return fmt.Errorf("population: import buffer: %w", err)
	}

	return nil
}
