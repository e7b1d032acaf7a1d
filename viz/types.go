// Package viz defines options and sentinel errors for scene rendering.
package viz

import (
	"errors"
	"image/color"
)

// Sentinel errors returned by the viz package.
var (
	// ErrEmptyScene indicates Render was called before any geometry was added.
	ErrEmptyScene = errors.New("viz: scene holds no geometry")

	// ErrBadScale indicates a non-positive pixels-per-unit scale.
	ErrBadScale = errors.New("viz: scale must be positive")

	// ErrBadPadding indicates a negative canvas padding.
	ErrBadPadding = errors.New("viz: padding must be non-negative")
)

// Options configures rendering.
//
// Scale      – pixels per coordinate unit. Default 10.
// Padding    – canvas margin in pixels on every side. Default 16.
// Background – canvas fill color. Default black.
type Options struct {
	Scale      float64
	Padding    int
	Background color.Color
}

// Option is a functional option for Scene.Render.
type Option func(*Options)

// WithScale overrides the pixels-per-unit scale.
// Non-positive values cause an early panic with ErrBadScale.
func WithScale(scale float64) Option {
	return func(o *Options) {
		if scale <= 0 {
			panic(ErrBadScale.Error())
		}
		o.Scale = scale
	}
}

// WithPadding overrides the canvas margin.
// Negative values cause an early panic with ErrBadPadding.
func WithPadding(px int) Option {
	return func(o *Options) {
		if px < 0 {
			panic(ErrBadPadding.Error())
		}
		o.Padding = px
	}
}

// WithBackground overrides the canvas fill color.
func WithBackground(c color.Color) Option {
	return func(o *Options) {
		o.Background = c
	}
}

// DefaultOptions returns the default configuration:
// Scale=10, Padding=16, black background.
func DefaultOptions() Options {
	return Options{
		Scale:      10,
		Padding:    16,
		Background: color.Black,
	}
}
