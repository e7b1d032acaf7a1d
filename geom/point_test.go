package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/planar/geom"
	"github.com/stretchr/testify/assert"
)

// TestPoint_String verifies the diagnostic "(x, y)" rendering for both
// integer and floating coordinates.
func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(2, 3)", geom.Pt(2, 3).String())
	assert.Equal(t, "(1.5, -0.25)", geom.Pt(1.5, -0.25).String())
}

// TestPoint_EqInteger verifies that equality over integer coordinates is
// exact: the epsilon tolerance cannot absorb a whole-unit difference.
func TestPoint_EqInteger(t *testing.T) {
	assert.True(t, geom.Pt(4, -7).Eq(geom.Pt(4, -7)))
	assert.False(t, geom.Pt(4, -7).Eq(geom.Pt(5, -7)))
	assert.False(t, geom.Pt(4, -7).Eq(geom.Pt(4, -6)))
}

// TestPoint_EqFloatTolerance verifies epsilon-tolerant equality for floats:
// deltas below the tolerance compare equal, deltas above do not.
func TestPoint_EqFloatTolerance(t *testing.T) {
	p := geom.Pt(1.0, 2.0)

	assert.True(t, p.Eq(geom.Pt(1.0+1e-12, 2.0-1e-12)), "sub-epsilon delta must compare equal")
	assert.False(t, p.Eq(geom.Pt(1.0+1e-6, 2.0)), "super-epsilon delta must differ")

	// A caller-supplied tolerance widens the band.
	assert.True(t, p.EqEps(geom.Pt(1.0+1e-6, 2.0), 1e-3))
}

// TestPoint_Less verifies lexicographic ordering: x decides first, y breaks
// ties.
func TestPoint_Less(t *testing.T) {
	assert.True(t, geom.Pt(1, 9).Less(geom.Pt(2, 0)), "smaller x wins regardless of y")
	assert.True(t, geom.Pt(1, 2).Less(geom.Pt(1, 3)), "equal x falls back to y")
	assert.False(t, geom.Pt(1, 3).Less(geom.Pt(1, 3)), "a point is not less than itself")
	assert.False(t, geom.Pt(2, 0).Less(geom.Pt(1, 9)))
}

// TestDist verifies the metric on a 3-4-5 triangle and on identical points.
func TestDist(t *testing.T) {
	assert.Equal(t, 25.0, geom.DistSq(geom.Pt(0, 0), geom.Pt(3, 4)))
	assert.Equal(t, 5.0, geom.Dist(geom.Pt(0, 0), geom.Pt(3, 4)))
	assert.Zero(t, geom.Dist(geom.Pt(7, 7), geom.Pt(7, 7)))
}

// TestDist_NarrowTypeNoOverflow verifies that the float64 accumulator keeps
// distances correct where the coordinate type itself would overflow.
func TestDist_NarrowTypeNoOverflow(t *testing.T) {
	// (127-(-128))^2 overflows int8 arithmetic badly; the metric must not.
	p := geom.Pt(int8(-128), int8(0))
	q := geom.Pt(int8(127), int8(0))
	assert.Equal(t, 255.0*255.0, geom.DistSq(p, q))
}

// TestMaxValue verifies the largest representable coordinate per type,
// including that floating types report a finite value rather than +Inf.
func TestMaxValue(t *testing.T) {
	assert.Equal(t, int8(math.MaxInt8), geom.MaxValue[int8]())
	assert.Equal(t, int64(math.MaxInt64), geom.MaxValue[int64]())
	assert.Equal(t, math.MaxInt, int(geom.MaxValue[int]()))

	assert.Equal(t, math.MaxFloat64, geom.MaxValue[float64]())
	assert.Equal(t, float32(math.MaxFloat32), geom.MaxValue[float32]())
	assert.False(t, math.IsInf(float64(geom.MaxValue[float32]()), 1))
}
