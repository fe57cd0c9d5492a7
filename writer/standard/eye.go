package standard

import (
	"image/color"
)

// DrawEye paints one finder pattern whose 7×7-module box starts at (x, y):
// the outer layer in eyeColor, the 5×5 gap in background and the 3×3 core in
// eyeColor again.
func DrawEye(gc GraphicsContext, x, y, moduleSize float64, shape EyeShape, eyeColor, background color.Color) {
	layers := [3]struct {
		modules float64
		c       color.Color
	}{
		{EyeSize, eyeColor},
		{EyeSize - 2, background},
		{EyeSize - 4, eyeColor},
	}

	for i, layer := range layers {
		gc.SetPaint(Solid(layer.c))
		edge := layer.modules * moduleSize
		if shape == EyeCircle {
			half := EyeSize * moduleSize / 2
			gc.DrawCircle(x+half, y+half, edge/2)
		} else {
			inset := float64(i) * moduleSize
			gc.DrawRectangle(x+inset, y+inset, edge, edge)
		}
		gc.Fill()
	}
}

// drawEyes paints the three finder patterns of the layout.
func drawEyes(gc GraphicsContext, l Layout, shape EyeShape, eyeColor, background color.Color) {
	for _, p := range l.Eyes {
		DrawEye(gc, p.X, p.Y, l.ModuleSize, shape, eyeColor, background)
	}
}
