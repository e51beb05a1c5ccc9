package density

import "math/bits"

// ISqrt returns the largest r such that r*r <= n. Negative n yields 0.
//
// The root is computed digit by digit in integer arithmetic and is exact
// over the whole int range.
func ISqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := uint64(n)
	var r uint64
	// Highest power of four not above x.
	bit := uint64(1) << ((bits.Len64(x) - 1) &^ 1)
	for bit != 0 {
		if x >= r+bit {
			x -= r + bit
			r = r>>1 + bit
		} else {
			r >>= 1
		}
		bit >>= 2
	}
	return int(r)
}
