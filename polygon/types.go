// Package polygon defines options and sentinel errors for simple-polygon
// queries.
package polygon

import (
	"errors"

	"github.com/katalvlaran/planar/geom"
)

// Sentinel errors returned by the polygon package.
var (
	// ErrTooFewVertices indicates a query over fewer than three vertices.
	// The accompanying result is the defined degenerate value for the
	// operation (0 area, not contained, Collinear winding).
	ErrTooFewVertices = errors.New("polygon: at least three vertices are required")

	// ErrBadEpsilon indicates a negative orientation tolerance.
	ErrBadEpsilon = errors.New("polygon: epsilon must be non-negative")
)

// Options configures polygon queries.
//
// Epsilon – tolerance below which determinants are treated as zero.
// Defaults to geom.DefaultEpsilon.
type Options struct {
	Epsilon float64
}

// Option is a functional option for Contains, Winding and IsConvex.
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

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
