package population

import "unsafe"

// alignedFloats allocates a float64 slice whose backing array starts on
// an align-byte boundary. Go's allocator gives no alignment guarantee
// beyond the element size, so we over-allocate by one alignment unit
// and re-slice to the first aligned element. The head of the raw
// allocation stays reachable through the returned slice's backing
// array, so the garbage collector keeps the whole block alive.
func alignedFloats(n, align int) []float64 {
	if n <= 0 {
		return nil
	}
	pad := align / 8 // spare float64s to shift within
	raw := make([]float64, n+pad)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	shift := 0
	if rem := addr % uintptr(align); rem != 0 {
		shift = (align - int(rem)) / 8
	}

	return raw[shift : shift+n : shift+n]
}
