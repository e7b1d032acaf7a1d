package polygon_test

import (
	"embed"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/polygon"
	"github.com/stretchr/testify/require"
)

// Fixture polygons live as single-<polygon> SVG files under fixtures/.
// loadFixture extracts the vertex list and normalizes it to CCW winding so
// tests can assume one traversal direction.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(t *testing.T, name string) []geom.Point[float64] {
	t.Helper()

	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "load fixture %q", name)
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	require.NoError(t, err, "parse fixture %q", name)

	polygons := rootEl.FindAll("polygon")
	require.Len(t, polygons, 1, "fixture %q must hold exactly one polygon", name)

	var pts []geom.Point[float64]
	for _, pair := range strings.Fields(polygons[0].Attributes["points"]) {
		xy := strings.Split(pair, ",")
		require.Len(t, xy, 2, "point %q in fixture %q", pair, name)

		x, err := strconv.ParseFloat(xy[0], 64)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(xy[1], 64)
		require.NoError(t, err)
		pts = append(pts, geom.Pt(x, y))
	}

	w, err := polygon.Winding(pts)
	require.NoError(t, err)
	if w == geom.Clockwise {
		slices.Reverse(pts)
	}

	return pts
}
