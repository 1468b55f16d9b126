package geom

import "math"

// Distance returns the Euclidean distance between a and b.
//
// Differences are taken in float64 so that coordinates near the int64 limits
// cannot overflow before squaring. Each difference is below 2^64, so the
// result is always finite.
func Distance(a, b Point) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// SquaredDistance returns the squared Euclidean distance between a and b.
// It preserves the ordering of Distance and skips the square root.
func SquaredDistance(a, b Point) float64 {
	dx := float64(a.X) - float64(b.X)
	dy := float64(a.Y) - float64(b.Y)
	dz := float64(a.Z) - float64(b.Z)

	return dx*dx + dy*dy + dz*dz
}
