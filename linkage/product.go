package linkage

import (
	"math"
	"math/bits"
)

// mulInt64 returns a*b and whether the product fits in an int64.
func mulInt64(a, b int64) (int64, bool) {
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(absUint64(a), absUint64(b))
	if hi != 0 {
		return 0, false
	}
	if neg {
		if lo > 1<<63 {
			return 0, false
		}
		// lo == 1<<63 wraps to MinInt64, which is the exact result.
		return -int64(lo), true
	}
	if lo > math.MaxInt64 {
		return 0, false
	}

	return int64(lo), true
}

// absUint64 returns |v| without overflowing on math.MinInt64.
func absUint64(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}

	return uint64(v)
}
