package polygon_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/polygon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestArea_Rectangle verifies the canonical 10×10 rectangle.
func TestArea_Rectangle(t *testing.T) {
	rect := []geom.Point[int]{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}

	a, err := polygon.Area(rect)
	require.NoError(t, err)
	assert.Equal(t, 100.0, a)
}

// TestArea_Triangle verifies a half-unit right triangle with float
// coordinates.
func TestArea_Triangle(t *testing.T) {
	tri := []geom.Point[float64]{
		geom.Pt(0.0, 0.0), geom.Pt(1.0, 0.0), geom.Pt(0.0, 1.0),
	}

	a, err := polygon.Area(tri)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, a, 1e-12)
}

// TestArea_WindingIndependent verifies that reversing the vertex order
// leaves the area unchanged: the shoelace sign is discarded.
func TestArea_WindingIndependent(t *testing.T) {
	poly := []geom.Point[int]{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 2, Y: 2}, {X: 0, Y: 4},
	}
	reversed := make([]geom.Point[int], len(poly))
	copy(reversed, poly)
	slices.Reverse(reversed)

	a1, err := polygon.Area(poly)
	require.NoError(t, err)
	a2, err := polygon.Area(reversed)
	require.NoError(t, err)

	assert.Equal(t, 12.0, a1)
	assert.Equal(t, a1, a2)
}

// TestArea_TooFewVertices verifies the sentinel alongside the defined
// degenerate value 0.
func TestArea_TooFewVertices(t *testing.T) {
	for _, poly := range [][]geom.Point[int]{
		nil,
		{{X: 1, Y: 1}},
		{{X: 1, Y: 1}, {X: 2, Y: 2}},
	} {
		a, err := polygon.Area(poly)
		assert.ErrorIs(t, err, polygon.ErrTooFewVertices)
		assert.Zero(t, a)
	}
}

// TestArea_DegenerateSpike verifies deterministic output on a zero-area
// "polygon" whose vertices are collinear.
func TestArea_DegenerateSpike(t *testing.T) {
	spike := []geom.Point[int]{
		{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 4, Y: 4},
	}

	a, err := polygon.Area(spike)
	require.NoError(t, err)
	assert.Zero(t, a)
}
