package linkage_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlink/geom"
)

// sample returns the 20 junction boxes used throughout these tests.
func sample() []geom.Point {
	return []geom.Point{
		{X: 162, Y: 817, Z: 812}, {X: 57, Y: 618, Z: 57}, {X: 906, Y: 360, Z: 560},
		{X: 592, Y: 479, Z: 940}, {X: 352, Y: 342, Z: 300}, {X: 466, Y: 668, Z: 158},
		{X: 542, Y: 29, Z: 236}, {X: 431, Y: 825, Z: 988}, {X: 739, Y: 650, Z: 466},
		{X: 52, Y: 470, Z: 668}, {X: 216, Y: 146, Z: 977}, {X: 819, Y: 987, Z: 18},
		{X: 117, Y: 168, Z: 530}, {X: 805, Y: 96, Z: 715}, {X: 346, Y: 949, Z: 466},
		{X: 970, Y: 615, Z: 88}, {X: 941, Y: 993, Z: 340}, {X: 862, Y: 61, Z: 35},
		{X: 984, Y: 92, Z: 344}, {X: 425, Y: 690, Z: 689},
	}
}

// cube returns the 8 corners of the unit cube shifted by off on every axis.
// Its 12 sides all tie at weight 1, so the order of acceptance depends
// entirely on the pair tie-break.
func cube(off int64) []geom.Point {
	var pts []geom.Point
	for _, x := range []int64{0, 1} {
		for _, y := range []int64{0, 1} {
			for _, z := range []int64{0, 1} {
				pts = append(pts, geom.Point{X: x + off, Y: y + off, Z: z + off})
			}
		}
	}

	return pts
}

// randomPoints returns n seeded random points in [0, span)³.
func randomPoints(n int, seed, span int64) []geom.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: r.Int63n(span), Y: r.Int63n(span), Z: r.Int63n(span)}
	}

	return pts
}

// primBottleneck computes a minimum spanning tree of the complete Euclidean
// graph over pts with O(n²) Prim and returns its heaviest edge weight.
func primBottleneck(pts []geom.Point) float64 {
	n := len(pts)
	inTree := make([]bool, n)
	best := make([]float64, n)
	for v := range best {
		best[v] = math.Inf(1)
	}
	best[0] = 0

	heaviest := 0.0
	for it := 0; it < n; it++ {
		u, minW := -1, math.Inf(1)
		for v := 0; v < n; v++ {
			if !inTree[v] && best[v] < minW {
				u, minW = v, best[v]
			}
		}
		inTree[u] = true
		if minW > heaviest {
			heaviest = minW
		}
		for v := 0; v < n; v++ {
			if d := geom.Distance(pts[u], pts[v]); !inTree[v] && d < best[v] {
				best[v] = d
			}
		}
	}

	return heaviest
}
