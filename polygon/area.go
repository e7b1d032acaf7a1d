package polygon

import (
	"math"

	"github.com/katalvlaran/planar/geom"
)

// Area returns the nonnegative area of a simple polygon via the shoelace
// formula, accumulated in float64 regardless of the coordinate type.
// Fewer than three vertices yield (0, ErrTooFewVertices).
//
// Complexity: O(n) time, O(1) memory.
func Area[T geom.Coord](poly []geom.Point[T]) (float64, error) {
	sum, err := shoelace(poly)
	if err != nil {
		return 0, err
	}

	return math.Abs(sum) / 2, nil
}

// shoelace returns the raw signed sum Σ(xᵢ·yᵢ₊₁ − xᵢ₊₁·yᵢ) over the closed
// vertex cycle. Positive for counter-clockwise traversal.
func shoelace[T geom.Coord](poly []geom.Point[T]) (float64, error) {
	n := len(poly)
	if n < 3 {
		return 0, ErrTooFewVertices
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += float64(poly[i].X) * float64(poly[j].Y)
		sum -= float64(poly[j].X) * float64(poly[i].Y)
	}

	return sum, nil
}
