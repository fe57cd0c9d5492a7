package standard

import (
	"image/color"
)

// ColorStop is one color of a gradient at position T in [0, 1].
type ColorStop struct {
	T     float64
	Color color.Color
}

// LinearGradient runs from (X0, Y0) to (X1, Y1) in logical canvas
// coordinates; it is not relative to the shape being filled.
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []ColorStop
}

// NewLinearGradient creates a gradient between two points.
func NewLinearGradient(x0, y0, x1, y1 float64, stops ...ColorStop) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: stops}
}

// Paint is a resolved fill style: a gradient when Gradient is set, otherwise
// the solid Color.
type Paint struct {
	Color    color.Color
	Gradient *LinearGradient
}

// Solid returns a Paint filling with c.
func Solid(c color.Color) Paint {
	return Paint{Color: c}
}

// IsGradient reports whether p fills with a gradient.
func (p Paint) IsGradient() bool {
	return p.Gradient != nil && len(p.Gradient.Stops) > 0
}

// modulePaint resolves the data-module fill for one render pass. The
// gradient spans the code box (0,0)→(size,size).
func modulePaint(cfg RenderConfig) Paint {
	if !cfg.GradientEnabled {
		return Solid(cfg.Foreground)
	}

	return Paint{
		Color: cfg.Foreground,
		Gradient: NewLinearGradient(0, 0, cfg.Size, cfg.Size,
			ColorStop{T: 0, Color: cfg.GradientFrom},
			ColorStop{T: 1, Color: cfg.GradientTo},
		),
	}
}
