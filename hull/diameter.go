package hull

import (
	"math"

	"github.com/katalvlaran/planar/geom"
)

// Diameter returns the largest pairwise distance within points, computed as
// the diameter of their convex hull via rotating calipers. Fewer than two
// points yield (0, ErrTooFewPoints); a two-vertex hull yields the direct
// distance between its endpoints. The input slice is never mutated.
//
// Complexity: O(n log n) time (hull construction; the sweep is O(n)), O(n) memory.
func Diameter[T geom.Coord](points []geom.Point[T], opts ...Option) (float64, error) {
	if len(points) < 2 {
		return 0, ErrTooFewPoints
	}

	h := ConvexHull(points, opts...)
	if len(h) < 2 {
		// Every input point coincides.
		return 0, nil
	}
	if len(h) == 2 {
		return geom.Dist(h[0], h[1]), nil
	}

	n := len(h)
	maxSq := 0.0
	j := 1

	for i := 0; i < n; i++ {
		// Advance the far pointer while it still moves away from edge i.
		// Strictly positive cross only: a zero cross means parallel edges,
		// where both caliper candidates below already cover the tie.
		for geom.Cross(h[i], h[(i+1)%n], h[j], h[(j+1)%n]) > 0 {
			j = (j + 1) % n
		}

		maxSq = math.Max(maxSq, geom.DistSq(h[i], h[j]))
		maxSq = math.Max(maxSq, geom.DistSq(h[(i+1)%n], h[j]))
	}

	return math.Sqrt(maxSq), nil
}
