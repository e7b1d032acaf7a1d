// Package closest defines options and sentinel errors for the
// closest-pair search.
package closest

import "errors"

// Sentinel errors returned by the closest package.
var (
	// ErrTooFewPoints indicates a query over fewer than two points, for
	// which a pair distance is semantically undefined. The accompanying
	// result is the defined degenerate value 0.
	ErrTooFewPoints = errors.New("closest: at least two points are required")

	// ErrBadCutoff indicates a brute-force cutoff below two points.
	ErrBadCutoff = errors.New("closest: cutoff must be at least 2")
)

// defaultCutoff is the largest range resolved by brute force. Three points
// form at most three pairs, so the base case stays O(1).
const defaultCutoff = 3

// Options configures the closest-pair search.
//
// Cutoff – ranges of at most this many points resolve by brute-force
// pairwise comparison instead of recursing. Must be ≥ 2.
type Options struct {
	Cutoff int
}

// Option is a functional option for Pair.
type Option func(*Options)

// WithCutoff overrides the brute-force cutoff. Values below 2 would leave
// single-point ranges with no pair to compare and cause an early panic
// with ErrBadCutoff.
func WithCutoff(n int) Option {
	return func(o *Options) {
		if n < 2 {
			panic(ErrBadCutoff.Error())
		}
		o.Cutoff = n
	}
}

// DefaultOptions returns the default configuration: Cutoff = 3.
func DefaultOptions() Options {
	return Options{Cutoff: defaultCutoff}
}
