package standard

import (
	"image"
	"image/color"
)

const (
	logoPaddingRatio = 0.08
	logoRadiusRatio  = 0.12
)

// LogoBox is the placement of a logo inside the code.
type LogoBox struct {
	X, Y, Edge float64
	Padding    float64
	Radius     float64
}

// ComputeLogoBox centers a logo of edge size·scale in the size×size code box
// that starts titleOffset pixels below the top of the canvas.
func ComputeLogoBox(size, scale, titleOffset float64) LogoBox {
	edge := size * scale
	return LogoBox{
		X:       (size - edge) / 2,
		Y:       titleOffset + (size-edge)/2,
		Edge:    edge,
		Padding: edge * logoPaddingRatio,
		Radius:  edge * logoRadiusRatio,
	}
}

// DrawLogo paints a background-colored rounded safe zone and composites img
// into the logo box. Scanability is the caller's concern: pair a logo with a
// high error-correction level.
func DrawLogo(gc GraphicsContext, img image.Image, scale, size, titleOffset float64, background color.Color) {
	if img == nil {
		return
	}

	box := ComputeLogoBox(size, scale, titleOffset)
	gc.SetPaint(Solid(background))
	FillRoundedRect(gc,
		box.X-box.Padding, box.Y-box.Padding,
		box.Edge+box.Padding*2, box.Edge+box.Padding*2,
		box.Radius,
	)
	gc.DrawImage(img, box.X, box.Y, box.Edge, box.Edge)
}
