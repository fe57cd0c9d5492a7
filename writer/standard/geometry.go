package standard

import (
	"math"
)

const (
	// QuietZone is the blank margin around the symbol, in modules.
	QuietZone = 4
	// EyeSize is the edge of a finder pattern, in modules.
	EyeSize = 7
)

// IsFinderZone reports whether (row, col) belongs to one of the three finder
// patterns of an n×n symbol. The bottom-right corner has none.
func IsFinderZone(row, col, n int) bool {
	topLeft := row < EyeSize && col < EyeSize
	topRight := row < EyeSize && col >= n-EyeSize
	bottomLeft := row >= n-EyeSize && col < EyeSize
	return topLeft || topRight || bottomLeft
}

// RoundedRectShape is a rectangle with equally rounded corners.
type RoundedRectShape struct {
	X, Y, W, H float64
	// R is the effective corner radius.
	R float64
}

// RoundedRect clamps radius to min(radius, w/2, h/2) so that opposite arcs
// never overlap.
func RoundedRect(x, y, w, h, radius float64) RoundedRectShape {
	r := math.Min(radius, math.Min(w/2, h/2))
	if r < 0 || math.IsNaN(r) {
		r = 0
	}
	return RoundedRectShape{X: x, Y: y, W: w, H: h, R: r}
}

// Trace appends the closed outline to the current path of gc.
func (s RoundedRectShape) Trace(gc GraphicsContext) {
	x0, x1, x2, x3 := s.X, s.X+s.R, s.X+s.W-s.R, s.X+s.W
	y0, y1, y2, y3 := s.Y, s.Y+s.R, s.Y+s.H-s.R, s.Y+s.H

	gc.MoveTo(x1, y0)
	gc.LineTo(x2, y0)
	gc.DrawArc(x2, y1, s.R, radians(270), radians(360))
	gc.LineTo(x3, y2)
	gc.DrawArc(x2, y2, s.R, radians(0), radians(90))
	gc.LineTo(x1, y3)
	gc.DrawArc(x1, y2, s.R, radians(90), radians(180))
	gc.LineTo(x0, y1)
	gc.DrawArc(x1, y1, s.R, radians(180), radians(270))
	gc.ClosePath()
}

// FillRoundedRect fills a clamped rounded rectangle with the current paint.
func FillRoundedRect(gc GraphicsContext, x, y, w, h, radius float64) {
	RoundedRect(x, y, w, h, radius).Trace(gc)
	gc.Fill()
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
