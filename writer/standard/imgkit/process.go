package imgkit

import (
	"image"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Scale resamples src into rect of dst, compositing over what is there.
// A nil scaler means draw.CatmullRom.
func Scale(dst draw.Image, rect image.Rectangle, src image.Image, scaler draw.Scaler) {
	if scaler == nil {
		scaler = draw.CatmullRom
	}

	scaler.Scale(dst, rect, src, src.Bounds(), draw.Over, nil)
}

// Fit shrinks src so neither side exceeds maxEdge, keeping the aspect ratio.
// Smaller images and a zero maxEdge return src unchanged.
func Fit(src image.Image, maxEdge uint) image.Image {
	b := src.Bounds()
	if maxEdge == 0 || (uint(b.Dx()) <= maxEdge && uint(b.Dy()) <= maxEdge) {
		return src
	}

	return resize.Thumbnail(maxEdge, maxEdge, src, resize.Lanczos3)
}
