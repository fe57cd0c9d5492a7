package standard

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/Mictilt/go-qrstyle/writer/standard/imgkit"
)

// RasterSurface paints through a gg.Context backed by an RGBA bitmap of
// device pixels.
type RasterSurface struct {
	dc      *gg.Context
	ratio   float64
	encoder ImageEncoder
	faces   faceCache
	log     *zap.SugaredLogger
}

var _ Surface = (*RasterSurface)(nil)

// NewRasterSurface creates a bitmap surface exported with encoder, PNG when
// encoder is nil.
func NewRasterSurface(encoder ImageEncoder) *RasterSurface {
	if encoder == nil {
		encoder = pngEncoder{}
	}

	return &RasterSurface{
		dc:      gg.NewContext(1, 1),
		ratio:   1,
		encoder: encoder,
		log:     zap.NewNop().Sugar(),
	}
}

// SetLogger sets where drawing failures are reported.
func (s *RasterSurface) SetLogger(log *zap.SugaredLogger) {
	if log != nil {
		s.log = log
	}
}

// Reset reallocates the bitmap only when the device size changes.
func (s *RasterSurface) Reset(width, height, ratio float64) {
	w, h := deviceSize(width, height, ratio)

	if s.dc.Width() != w || s.dc.Height() != h {
		s.dc = gg.NewContext(w, h)
	} else {
		s.dc.Identity()
		s.dc.ClearPath()
		s.dc.SetColor(color.Transparent)
		s.dc.Clear()
	}

	s.ratio = ratio
	s.dc.Scale(ratio, ratio)
}

func (s *RasterSurface) MoveTo(x, y float64) {
	s.dc.MoveTo(x, y)
}

func (s *RasterSurface) LineTo(x, y float64) {
	s.dc.LineTo(x, y)
}

func (s *RasterSurface) DrawArc(x, y, r, angle1, angle2 float64) {
	s.dc.DrawArc(x, y, r, angle1, angle2)
}

func (s *RasterSurface) ClosePath() {
	s.dc.ClosePath()
}

func (s *RasterSurface) DrawCircle(x, y, r float64) {
	s.dc.DrawCircle(x, y, r)
}

func (s *RasterSurface) DrawRectangle(x, y, w, h float64) {
	s.dc.DrawRectangle(x, y, w, h)
}

// SetPaint installs p as the fill style. Gradient patterns are sampled in
// device pixels, so the gradient line is scaled here.
func (s *RasterSurface) SetPaint(p Paint) {
	if !p.IsGradient() {
		s.dc.SetColor(p.Color)
		return
	}

	g := p.Gradient
	r := s.ratio
	grad := gg.NewLinearGradient(g.X0*r, g.Y0*r, g.X1*r, g.Y1*r)
	for _, stop := range g.Stops {
		grad.AddColorStop(stop.T, stop.Color)
	}
	s.dc.SetFillStyle(grad)
}

func (s *RasterSurface) Fill() {
	s.dc.Fill()
}

// DrawImage resamples img straight into the device-pixel box so the logo
// stays sharp at any ratio.
func (s *RasterSurface) DrawImage(img image.Image, x, y, w, h float64) {
	dst, ok := s.dc.Image().(draw.Image)
	if !ok || img == nil {
		return
	}

	r := s.ratio
	rect := image.Rect(
		int(math.Round(x*r)), int(math.Round(y*r)),
		int(math.Round((x+w)*r)), int(math.Round((y+h)*r)),
	)
	imgkit.Scale(dst, rect, img, draw.CatmullRom)
}

// DrawText rasterizes with a face sized in device pixels under the identity
// transform.
func (s *RasterSurface) DrawText(str string, x, y float64, style TextStyle) {
	r := s.ratio
	face, err := s.faces.face(style.Bold, style.Size*r)
	if err != nil {
		s.log.Warnw("text skipped", "text", str, "size", style.Size, "error", err)
		return
	}

	s.dc.Push()
	defer s.dc.Pop()

	s.dc.Identity()
	s.dc.SetFontFace(face)
	s.dc.SetColor(style.Color)
	ox, oy := textOrigin(face, str, x*r, y*r, style.Baseline)
	s.dc.DrawString(str, ox, oy)
}

// Image returns the backing bitmap.
func (s *RasterSurface) Image() image.Image {
	return s.dc.Image()
}

// Encode writes the bitmap with the surface's ImageEncoder.
func (s *RasterSurface) Encode(w io.Writer) error {
	return errors.Wrap(s.encoder.Encode(w, s.dc.Image()), "encode raster")
}
