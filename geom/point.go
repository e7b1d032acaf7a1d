package geom

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// DefaultEpsilon is the tolerance used by equality and orientation
// classification when the caller does not supply one. Adjust per call via
// the ...Eps variants for coordinate domains with different noise levels.
const DefaultEpsilon = 1e-9

// Coord is the set of coordinate types the kernel is generic over:
// any signed integer or floating-point type, including derived types.
type Coord interface {
	constraints.Signed | constraints.Float
}

// Point is an immutable coordinate pair. Points are plain values: freely
// copyable, never referencing other entities, safe to use as map keys for
// integer T.
type Point[T Coord] struct {
	X, Y T
}

// Pt is a shorthand constructor for Point[T].
func Pt[T Coord](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// String renders the point as "(x, y)" for diagnostics. The format is not
// parseable and carries no round-trip guarantee.
func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Eq reports tolerance-based equality with DefaultEpsilon.
// For integer T this is exact equality.
func (p Point[T]) Eq(q Point[T]) bool {
	return p.EqEps(q, DefaultEpsilon)
}

// EqEps reports whether both coordinate deltas are below eps.
// Exact matches short-circuit, so coordinates too large for an exact
// float64 representation still compare equal to themselves.
func (p Point[T]) EqEps(q Point[T], eps float64) bool {
	if p.X == q.X && p.Y == q.Y {
		return true
	}
	return math.Abs(float64(p.X)-float64(q.X)) < eps &&
		math.Abs(float64(p.Y)-float64(q.Y)) < eps
}

// Less is the lexicographic ordering: x first, then y. It exists to drive
// the sorts inside hull construction and closest-pair partitioning and has
// no geometric meaning.
func (p Point[T]) Less(q Point[T]) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// DistSq returns the squared Euclidean distance between p and q,
// accumulated in float64 to avoid overflow for narrow coordinate types.
func DistSq[T Coord](p, q Point[T]) float64 {
	dx := float64(p.X) - float64(q.X)
	dy := float64(p.Y) - float64(q.Y)

	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between p and q.
func Dist[T Coord](p, q Point[T]) float64 {
	return math.Sqrt(DistSq(p, q))
}

// Runtime type probes. Converting the float64 value 0.5 to an integer type
// truncates to zero, which distinguishes the two halves of the Coord set
// without reflection.
var (
	half       = 0.5
	maxFloat64 = math.MaxFloat64
	maxFloat32 = float64(math.MaxFloat32)
)

func isFloat[T Coord]() bool {
	return T(half) != 0
}

// MaxValue returns the largest representable coordinate of type T. The
// ray-cast containment test uses it as the x of its far-right extreme
// point. For floating T the largest finite value is returned, never +Inf.
func MaxValue[T Coord]() T {
	if isFloat[T]() {
		m := T(maxFloat64)
		if math.IsInf(float64(m), 1) {
			return T(maxFloat32)
		}

		return m
	}
	// Signed integer: double a power of two until it wraps, then fill the
	// remaining low bits.
	var hi T = 1
	for hi*2 > hi {
		hi *= 2
	}

	return hi + (hi - 1)
}
