package closest

import (
	"math"
	"sort"

	"github.com/katalvlaran/planar/geom"
)

// Pair returns the distance between the two closest points of the input
// set. Fewer than two points yield (0, ErrTooFewPoints). The input slice
// is never mutated.
//
// Complexity: O(n log n) time, O(n) memory, O(log n) recursion depth.
func Pair[T geom.Coord](points []geom.Point[T], opts ...Option) (float64, error) {
	if len(points) < 2 {
		return 0, ErrTooFewPoints
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	byX := make([]geom.Point[T], len(points))
	copy(byX, points)
	byY := make([]geom.Point[T], len(points))
	copy(byY, points)

	sort.Slice(byX, func(i, j int) bool { return byX[i].Less(byX[j]) })
	sort.Slice(byY, func(i, j int) bool { return byY[i].Y < byY[j].Y })

	return math.Sqrt(pairRec(byX, byY, cfg.Cutoff)), nil
}

// pairRec returns the minimum squared distance within the x-sorted range
// byX, given the same points in y order. Squared distances are carried
// throughout the recursion; the single square root happens in Pair.
func pairRec[T geom.Coord](byX, byY []geom.Point[T], cutoff int) float64 {
	n := len(byX)
	if n <= cutoff {
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				best = math.Min(best, geom.DistSq(byX[i], byX[j]))
			}
		}

		return best
	}

	mid := n / 2
	midPoint := byX[mid]

	// Partition the y-sorted view to match the x split. Keying on the
	// median's full (x, y) sends equal-x points to the same side the
	// lexicographic x sort put them on.
	yLeft := make([]geom.Point[T], 0, mid)
	yRight := make([]geom.Point[T], 0, n-mid)
	for _, p := range byY {
		if p.X < midPoint.X || (p.X == midPoint.X && p.Y < midPoint.Y) {
			yLeft = append(yLeft, p)
		} else {
			yRight = append(yRight, p)
		}
	}

	dLeft := pairRec(byX[:mid], yLeft, cutoff)
	dRight := pairRec(byX[mid:], yRight, cutoff)
	d := math.Min(dLeft, dRight)

	// Strip of points within √d of the dividing line, kept in y order.
	strip := byY[:0:0]
	for _, p := range byY {
		dx := float64(p.X) - float64(midPoint.X)
		if dx*dx < d {
			strip = append(strip, p)
		}
	}

	return math.Min(d, stripClosest(strip, d))
}

// stripClosest scans a y-sorted strip: each point is compared only against
// subsequent points whose squared y-distance is still below the running
// minimum. The packing bound makes the inner window O(1).
func stripClosest[T geom.Coord](strip []geom.Point[T], d float64) float64 {
	best := d
	for i := 0; i < len(strip); i++ {
		for j := i + 1; j < len(strip); j++ {
			dy := float64(strip[j].Y) - float64(strip[i].Y)
			if dy*dy >= best {
				break
			}
			best = math.Min(best, geom.DistSq(strip[i], strip[j]))
		}
	}

	return best
}
