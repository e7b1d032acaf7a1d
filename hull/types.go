// Package hull defines options and sentinel errors for convex-hull
// construction and the rotating-calipers diameter.
package hull

import (
	"errors"

	"github.com/katalvlaran/planar/geom"
)

// Sentinel errors returned by the hull package.
var (
	// ErrTooFewPoints indicates a diameter query over fewer than two points,
	// for which a distance is semantically undefined. The accompanying
	// result is the defined degenerate value 0.
	ErrTooFewPoints = errors.New("hull: at least two points are required")

	// ErrBadEpsilon indicates a negative orientation tolerance.
	ErrBadEpsilon = errors.New("hull: epsilon must be non-negative")
)

// Options configures hull construction.
//
// Epsilon – tolerance below which the orientation determinant is treated
// as collinear. Defaults to geom.DefaultEpsilon.
type Options struct {
	Epsilon float64
}

// Option is a functional option for ConvexHull and Diameter.
type Option func(*Options)

// WithEpsilon overrides the orientation tolerance.
// Negative values cause an early panic with ErrBadEpsilon.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			panic(ErrBadEpsilon.Error())
		}
		o.Epsilon = eps
	}
}

// DefaultOptions returns the default configuration: Epsilon = geom.DefaultEpsilon.
func DefaultOptions() Options {
	return Options{Epsilon: geom.DefaultEpsilon}
}
