package standard

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// DotStyle selects how data modules are drawn.
type DotStyle string

const (
	DotSquare  DotStyle = "square"
	DotDot     DotStyle = "dot"
	DotRounded DotStyle = "rounded"
	// DotLiquid draws dots joined by bands toward dark right/down neighbours.
	DotLiquid DotStyle = "liquid"
)

// EyeShape selects how finder patterns are drawn.
type EyeShape string

const (
	EyeSquare EyeShape = "square"
	EyeCircle EyeShape = "circle"
)

// ParseDotStyle validates s as a DotStyle.
func ParseDotStyle(s string) (DotStyle, error) {
	switch ds := DotStyle(s); ds {
	case DotSquare, DotDot, DotRounded, DotLiquid:
		return ds, nil
	}
	return "", errors.Errorf("unknown dot style %q", s)
}

// ParseEyeShape validates s as an EyeShape.
func ParseEyeShape(s string) (EyeShape, error) {
	switch es := EyeShape(s); es {
	case EyeSquare, EyeCircle:
		return es, nil
	}
	return "", errors.Errorf("unknown eye shape %q", s)
}

// Baseline is the vertical anchor of DrawText.
type Baseline uint8

const (
	// BaselineTop puts the top of the em box at y.
	BaselineTop Baseline = iota
	// BaselineMiddle centers the em box on y.
	BaselineMiddle
)

// TextStyle describes one line of text centered horizontally on x.
type TextStyle struct {
	Size     float64
	Bold     bool
	Color    color.Color
	Baseline Baseline
}

// GraphicsContext is the drawing interface every renderer paints through.
// Coordinates are logical pixels; path operations build the current path
// which Fill consumes with the current paint.
type GraphicsContext interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// DrawArc adds a clockwise arc of radius r around (x, y), connecting it
	// to the current point with a line.
	DrawArc(x, y, r, angle1, angle2 float64)
	ClosePath()
	DrawCircle(x, y, r float64)
	DrawRectangle(x, y, w, h float64)
	SetPaint(p Paint)
	Fill()
	// DrawImage draws img scaled into the w×h box at (x, y).
	DrawImage(img image.Image, x, y, w, h float64)
	DrawText(s string, x, y float64, style TextStyle)
}

// Bit flags for the dark neighbours a module is joined to.
const (
	NRight uint16 = 1 << iota // right
	NBot                      // bottom
)

// DrawContext is one module cell.
type DrawContext struct {
	GraphicsContext

	x, y float64
	edge float64

	neighbours uint16
}

// UpperLeft returns the point which indicates the upper left position.
func (dc *DrawContext) UpperLeft() (dx, dy float64) {
	return dc.x, dc.y
}

// Edge returns the cell edge length.
func (dc *DrawContext) Edge() float64 {
	return dc.edge
}

// Neighbours returns a bitmask of the neighbours the cell is joined to.
func (dc *DrawContext) Neighbours() uint16 {
	return dc.neighbours
}

// IShape draws one dark data module with the current paint.
type IShape interface {
	Draw(ctx *DrawContext)
}

var (
	_shapeSquare  IShape = square{}
	_shapeRounded IShape = rounded{}
	_shapeDot     IShape = dot{}
	_shapeLiquid  IShape = liquid{}
)

func shapeFor(style DotStyle) IShape {
	switch style {
	case DotRounded:
		return _shapeRounded
	case DotDot:
		return _shapeDot
	case DotLiquid:
		return _shapeLiquid
	}
	return _shapeSquare
}

const (
	roundedRadiusRatio = 0.28
	dotRadiusRatio     = 0.45
	bandWidthRatio     = 0.6
)

type square struct{}

func (square) Draw(c *DrawContext) {
	c.DrawRectangle(c.x, c.y, c.edge, c.edge)
	c.Fill()
}

type rounded struct{}

func (rounded) Draw(c *DrawContext) {
	FillRoundedRect(c, c.x, c.y, c.edge, c.edge, c.edge*roundedRadiusRatio)
}

type dot struct{}

func (dot) Draw(c *DrawContext) {
	c.DrawCircle(c.x+c.edge/2, c.y+c.edge/2, c.edge*dotRadiusRatio)
	c.Fill()
}

type liquid struct{}

func (liquid) Draw(c *DrawContext) {
	dot{}.Draw(c)

	band := c.edge * bandWidthRatio
	inset := (c.edge - band) / 2
	if c.neighbours&NRight != 0 {
		c.DrawRectangle(c.x+c.edge/2, c.y+inset, c.edge, band)
		c.Fill()
	}
	if c.neighbours&NBot != 0 {
		c.DrawRectangle(c.x+inset, c.y+c.edge/2, band, c.edge)
		c.Fill()
	}
}
