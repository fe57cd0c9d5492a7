package standard

import (
	"math"
	"strings"
)

const (
	minTitleFontSize   = 18
	titleFontRatio     = 0.06
	titleTopRatio      = 0.5
	titleSpacingRatio  = 0.7
	placeholderSize    = 16
	placeholderMessage = "Enter content to generate a QR code."
)

// Point is a position in logical pixels.
type Point struct {
	X, Y float64
}

// Layout is the resolved geometry of one render pass. Everything is in
// logical pixels except Ratio, the device pixels per logical pixel.
type Layout struct {
	Size  float64
	Ratio float64

	Title         string
	TitleFontSize float64
	TitleTop      float64
	// TitleOffset is the height of the title band above the code box.
	TitleOffset  float64
	CanvasHeight float64

	N           int
	ModuleSize  float64
	QuietOffset float64
	// Origin is the top-left corner of module (0, 0).
	Origin Point
	// Eyes holds the anchors of the top-left, top-right and bottom-left
	// finder patterns.
	Eyes [3]Point
}

// ComputeLayout resolves the canvas geometry for a size×size code of n
// modules per side with an optional title. A ratio <= 0 means 1.
func ComputeLayout(size float64, n int, title string, ratio float64) Layout {
	if ratio <= 0 {
		ratio = 1
	}

	l := Layout{Size: size, Ratio: ratio, N: n, Title: strings.TrimSpace(title)}
	l.TitleFontSize = math.Max(minTitleFontSize, math.Round(size*titleFontRatio))
	if l.Title != "" {
		l.TitleTop = math.Round(l.TitleFontSize * titleTopRatio)
		l.TitleOffset = l.TitleTop + l.TitleFontSize + math.Round(l.TitleFontSize*titleSpacingRatio)
	}
	l.CanvasHeight = size + l.TitleOffset

	if n <= 0 {
		return l
	}

	l.ModuleSize = size / float64(n+2*QuietZone)
	l.QuietOffset = QuietZone * l.ModuleSize
	l.Origin = Point{X: l.QuietOffset, Y: l.TitleOffset + l.QuietOffset}

	far := float64(n-EyeSize) * l.ModuleSize
	l.Eyes = [3]Point{
		l.Origin,
		{X: l.Origin.X + far, Y: l.Origin.Y},
		{X: l.Origin.X, Y: l.Origin.Y + far},
	}

	return l
}

// Cell returns the top-left corner of module (row, col).
func (l Layout) Cell(row, col int) (x, y float64) {
	return l.Origin.X + float64(col)*l.ModuleSize, l.Origin.Y + float64(row)*l.ModuleSize
}

// DeviceSize returns the backing-store dimensions in device pixels.
func (l Layout) DeviceSize() (width, height int) {
	return deviceSize(l.Size, l.CanvasHeight, l.Ratio)
}

// deviceSize converts logical dimensions to whole device pixels, at least one
// in each direction.
func deviceSize(width, height, ratio float64) (int, int) {
	w := int(math.Round(width * ratio))
	h := int(math.Round(height * ratio))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
