package viz

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/katalvlaran/planar/geom"
)

// Scene collects geometry to draw. The zero value is ready to use; add
// shapes, then call Render once. Added slices are copied, so later caller
// mutations do not bleed into the render.
type Scene[T geom.Coord] struct {
	polygons [][]geom.Point[T]
	points   []geom.Point[T]
	segments [][2]geom.Point[T]
}

// AddPolygon adds a closed polygon outline (fill + stroke).
func (s *Scene[T]) AddPolygon(poly []geom.Point[T]) {
	cp := make([]geom.Point[T], len(poly))
	copy(cp, poly)
	s.polygons = append(s.polygons, cp)
}

// AddPoints adds standalone point markers.
func (s *Scene[T]) AddPoints(pts ...geom.Point[T]) {
	s.points = append(s.points, pts...)
}

// AddSegment adds a highlighted segment, e.g. a closest pair or a
// diameter chord.
func (s *Scene[T]) AddSegment(a, b geom.Point[T]) {
	s.segments = append(s.segments, [2]geom.Point[T]{a, b})
}

// Render rasterizes the scene to a PNG at path. The canvas auto-fits the
// scene bounds at Options.Scale pixels per unit with Options.Padding
// margins, y flipped so the origin is at the bottom left.
func (s *Scene[T]) Render(path string, opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	minX, minY, maxX, maxY, ok := s.bounds()
	if !ok {
		return ErrEmptyScene
	}

	width := int(cfg.Scale*(maxX-minX)) + cfg.Padding*2
	height := int(cfg.Scale*(maxY-minY)) + cfg.Padding*2

	c := gg.NewContext(width, height)
	c.SetColor(cfg.Background)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip so the origin sits at the bottom left, then map scene
	// coordinates onto the padded canvas.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(float64(cfg.Padding), float64(cfg.Padding))
	c.Scale(cfg.Scale, cfg.Scale)
	c.Translate(-minX, -minY)

	colors := palette(len(s.polygons))
	c.SetLineWidth(2)
	for i, poly := range s.polygons {
		if len(poly) == 0 {
			continue
		}
		c.MoveTo(float64(poly[0].X), float64(poly[0].Y))
		for _, p := range poly[1:] {
			c.LineTo(float64(p.X), float64(p.Y))
		}
		c.ClosePath()

		fill := colors[i]
		c.SetRGBA(fill.R, fill.G, fill.B, 0.35)
		c.FillPreserve()
		c.SetRGB(fill.R, fill.G, fill.B)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, p := range s.points {
		c.DrawPoint(float64(p.X), float64(p.Y), 3/cfg.Scale)
		c.Fill()
	}

	c.SetRGB(1, 0.85, 0.2)
	c.SetLineWidth(3)
	for _, seg := range s.segments {
		c.DrawLine(
			float64(seg[0].X), float64(seg[0].Y),
			float64(seg[1].X), float64(seg[1].Y))
		c.Stroke()
	}

	return c.SavePNG(path)
}

// bounds returns the scene's bounding box and whether any geometry exists.
func (s *Scene[T]) bounds() (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)

	visit := func(p geom.Point[T]) {
		ok = true
		minX = math.Min(minX, float64(p.X))
		minY = math.Min(minY, float64(p.Y))
		maxX = math.Max(maxX, float64(p.X))
		maxY = math.Max(maxY, float64(p.Y))
	}

	for _, poly := range s.polygons {
		for _, p := range poly {
			visit(p)
		}
	}
	for _, p := range s.points {
		visit(p)
	}
	for _, seg := range s.segments {
		visit(seg[0])
		visit(seg[1])
	}

	return minX, minY, maxX, maxY, ok
}

// palette returns n distinct colors spaced evenly around the HSV hue wheel.
func palette(n int) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := range out {
		hue := 360 * float64(i) / math.Max(float64(n), 1)
		out[i] = colorful.Hsv(hue, 0.55, 0.92)
	}

	return out
}

// Preview writes an already-rendered image at path to stdout using the
// inline-image terminal protocol. Debugging convenience only.
func Preview(path string) {
	imgcat.CatFile(path, os.Stdout)
}
