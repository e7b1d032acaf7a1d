package hull

import (
	"sort"

	"github.com/katalvlaran/planar/geom"
)

// ConvexHull returns the convex hull of points as strict corner vertices in
// counter-clockwise order, without repeating the start vertex at the end.
// Inputs of two or fewer points are returned as an unchanged copy. The
// input slice is never mutated.
//
// Complexity: O(n log n) time, O(n) memory.
func ConvexHull[T geom.Coord](points []geom.Point[T], opts ...Option) []geom.Point[T] {
	n := len(points)
	pts := make([]geom.Point[T], n)
	copy(pts, points)
	if n <= 2 {
		return pts
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })

	h := make([]geom.Point[T], 0, n+1)

	// Lower chain, left to right.
	for i := 0; i < n; i++ {
		for len(h) >= 2 &&
			geom.OrientationEps(h[len(h)-2], h[len(h)-1], pts[i], cfg.Epsilon) != geom.CounterClockwise {
			h = h[:len(h)-1]
		}
		h = append(h, pts[i])
	}

	// Upper chain, right to left. The threshold keeps the finished lower
	// chain intact while this pass pops.
	base := len(h) + 1
	for i := n - 2; i >= 0; i-- {
		for len(h) >= base &&
			geom.OrientationEps(h[len(h)-2], h[len(h)-1], pts[i], cfg.Epsilon) != geom.CounterClockwise {
			h = h[:len(h)-1]
		}
		h = append(h, pts[i])
	}

	// The leftmost point closed the loop; drop the duplicate.
	return h[:len(h)-1]
}
