package standard

import (
	"io"

	qrstyle "github.com/Mictilt/go-qrstyle"
)

var placeholderColor = mustParseHex("#64748b")

// Surface is a GraphicsContext with a backing store that is resized and
// repainted on every render pass.
type Surface interface {
	GraphicsContext

	// Reset resizes the backing store to width×height logical pixels at ratio
	// device pixels per logical pixel, clears it and installs the single
	// logical-to-device transform.
	Reset(width, height, ratio float64)

	// Encode serializes the current contents.
	Encode(w io.Writer) error
}

// Stats describes what a render pass painted.
type Stats struct {
	Layout      Layout
	Modules     int
	Eyes        int
	Logo        bool
	Placeholder bool
}

// Draw performs one full render pass of m onto s. It keeps no state between
// calls, so the same inputs always produce the same surface.
func Draw(s Surface, m qrstyle.Matrix, cfg RenderConfig, ratio float64) Stats {
	l := ComputeLayout(cfg.Size, m.Size(), cfg.Title, ratio)
	stats := Stats{Layout: l}

	s.Reset(l.Size, l.CanvasHeight, l.Ratio)
	s.SetPaint(Solid(cfg.Background))
	s.DrawRectangle(0, 0, l.Size, l.CanvasHeight)
	s.Fill()

	if l.Title != "" {
		s.DrawText(l.Title, l.Size/2, l.TitleTop, TextStyle{
			Size:     l.TitleFontSize,
			Bold:     true,
			Color:    cfg.Foreground,
			Baseline: BaselineTop,
		})
	}

	if m.Empty() {
		s.DrawText(placeholderMessage, l.Size/2, l.TitleOffset+l.Size/2, TextStyle{
			Size:     placeholderSize,
			Color:    placeholderColor,
			Baseline: BaselineMiddle,
		})
		stats.Placeholder = true
		return stats
	}

	stats.Modules = DrawModules(s, m, l, cfg.DotStyle, modulePaint(cfg))
	drawEyes(s, l, cfg.EyeShape, cfg.EyeColor, cfg.Background)
	stats.Eyes = len(l.Eyes)

	if cfg.Logo != nil {
		DrawLogo(s, cfg.Logo, cfg.LogoScale, l.Size, l.TitleOffset, cfg.Background)
		stats.Logo = true
	}

	return stats
}
