package standard

import (
	qrstyle "github.com/Mictilt/go-qrstyle"
)

// Direction is a neighbour direction used for liquid banding.
type Direction uint8

const (
	Right Direction = iota
	Down
)

// isDataModule reports whether (row, col) is dark and drawn by the module
// renderer rather than the eye renderer.
func isDataModule(m qrstyle.Matrix, row, col int) bool {
	return m.Dark(row, col) && !IsFinderZone(row, col, m.Size())
}

// ShouldBand reports whether the liquid style joins (row, col) to its
// neighbour in dir. Both modules must be dark data modules.
func ShouldBand(m qrstyle.Matrix, row, col int, dir Direction) bool {
	if !isDataModule(m, row, col) {
		return false
	}
	switch dir {
	case Right:
		return isDataModule(m, row, col+1)
	case Down:
		return isDataModule(m, row+1, col)
	}
	return false
}

func neighbours(m qrstyle.Matrix, row, col int) uint16 {
	var n uint16
	if ShouldBand(m, row, col, Right) {
		n |= NRight
	}
	if ShouldBand(m, row, col, Down) {
		n |= NBot
	}
	return n
}

// DrawModules paints every dark module outside the finder zones with paint
// and returns how many cells it painted.
func DrawModules(gc GraphicsContext, m qrstyle.Matrix, l Layout, style DotStyle, paint Paint) int {
	shape := shapeFor(style)
	gc.SetPaint(paint)

	ctx := &DrawContext{GraphicsContext: gc, edge: l.ModuleSize}
	painted := 0
	for row := 0; row < m.Size(); row++ {
		for col := 0; col < m.Size(); col++ {
			if !isDataModule(m, row, col) {
				continue
			}

			ctx.x, ctx.y = l.Cell(row, col)
			ctx.neighbours = 0
			if style == DotLiquid {
				ctx.neighbours = neighbours(m, row, col)
			}
			shape.Draw(ctx)
			painted++
		}
	}

	return painted
}
