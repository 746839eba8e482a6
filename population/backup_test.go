package population_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gweiqi/LB-t/lattice"
	"github.com/Gweiqi/LB-t/population"
)

// TestSnapshot_RoundTrip verifies byte-exact restart fidelity: export a
// randomly seeded field, import into a fresh field of the same extents,
// and require bit-identical buffers.
func TestSnapshot_RoundTrip(t *testing.T) {
	src := newTestField(t)
	rng := rand.New(rand.NewSource(7))
	for z := 0; z < src.NZ; z++ {
		for y := 0; y < src.NY; y++ {
			for x := 0; x < src.NX; x++ {
				var fc [lattice.ND]float64
				for _, i := range physicalSlots() {
					fc[i] = rng.Float64()
				}
				src.Init(x, y, z, &fc)
			}
		}
	}

	var buf bytes.Buffer
	require.NoError(t, src.Export(&buf))

	dst := newTestField(t)
	require.NoError(t, dst.Import(&buf))
	require.True(t, src.Equal(dst), "snapshot round trip must be bit-exact")
}

// TestSnapshot_HeaderMismatch verifies that a snapshot taken on one
// grid cannot be restored into another.
func TestSnapshot_HeaderMismatch(t *testing.T) {
	src := newTestField(t)
	var buf bytes.Buffer
	require.NoError(t, src.Export(&buf))

	other, err := population.New(5, 3, 2, 100.0, 0.05, 4)
	require.NoError(t, err)
	require.ErrorIs(t, other.Import(&buf), population.ErrSnapshotHeader)
}

// TestSnapshot_Truncated verifies that a short read surfaces as an
// error instead of a silently half-restored field.
func TestSnapshot_Truncated(t *testing.T) {
	src := newTestField(t)
	var buf bytes.Buffer
	require.NoError(t, src.Export(&buf))

	dst := newTestField(t)
	short := bytes.NewReader(buf.Bytes()[:buf.Len()/2])
	require.Error(t, dst.Import(short))
}

// TestSnapshot_Garbage verifies the magic-number guard.
func TestSnapshot_Garbage(t *testing.T) {
	dst := newTestField(t)
	garbage := bytes.Repeat([]byte{0xAB}, 64)
	require.ErrorIs(t, dst.Import(bytes.NewReader(garbage)), population.ErrSnapshotHeader)
}
