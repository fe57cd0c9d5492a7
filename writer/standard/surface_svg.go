package standard

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const gradientID = "qrGradient"

// SVGSurface records a render pass as vector operations and writes them as
// an SVG document in logical pixels, sized to the device pixels.
type SVGSurface struct {
	width, height float64
	ratio         float64

	ops       []func(canvas *svg.SVG)
	gradients []*LinearGradient

	path    []string
	current bool
	fill    string

	log *zap.SugaredLogger
}

var _ Surface = (*SVGSurface)(nil)

// NewSVGSurface creates an empty vector surface.
func NewSVGSurface() *SVGSurface {
	return &SVGSurface{ratio: 1, log: zap.NewNop().Sugar()}
}

// SetLogger sets where drawing failures are reported.
func (s *SVGSurface) SetLogger(log *zap.SugaredLogger) {
	if log != nil {
		s.log = log
	}
}

func (s *SVGSurface) Reset(width, height, ratio float64) {
	s.width, s.height, s.ratio = width, height, ratio
	s.ops = s.ops[:0]
	s.gradients = s.gradients[:0]
	s.path = s.path[:0]
	s.current = false
	s.fill = ""
}

func (s *SVGSurface) MoveTo(x, y float64) {
	s.path = append(s.path, fmt.Sprintf("M%s %s", num(x), num(y)))
	s.current = true
}

func (s *SVGSurface) LineTo(x, y float64) {
	if !s.current {
		s.MoveTo(x, y)
		return
	}
	s.path = append(s.path, fmt.Sprintf("L%s %s", num(x), num(y)))
}

func (s *SVGSurface) DrawArc(x, y, r, angle1, angle2 float64) {
	sweep := angle2 - angle1
	if sweep >= 2*math.Pi {
		mid := angle1 + math.Pi
		s.DrawArc(x, y, r, angle1, mid)
		s.DrawArc(x, y, r, mid, angle2)
		return
	}

	s.LineTo(x+r*math.Cos(angle1), y+r*math.Sin(angle1))
	large := 0
	if sweep > math.Pi {
		large = 1
	}
	s.path = append(s.path, fmt.Sprintf("A%s %s 0 %d 1 %s %s",
		num(r), num(r), large, num(x+r*math.Cos(angle2)), num(y+r*math.Sin(angle2))))
}

func (s *SVGSurface) ClosePath() {
	if s.current {
		s.path = append(s.path, "Z")
	}
}

func (s *SVGSurface) DrawCircle(x, y, r float64) {
	s.path = append(s.path, fmt.Sprintf("M%s %s A%s %s 0 1 1 %s %s A%s %s 0 1 1 %s %s Z",
		num(x+r), num(y),
		num(r), num(r), num(x-r), num(y),
		num(r), num(r), num(x+r), num(y)))
	s.current = true
}

func (s *SVGSurface) DrawRectangle(x, y, w, h float64) {
	s.path = append(s.path, fmt.Sprintf("M%s %s L%s %s L%s %s L%s %s Z",
		num(x), num(y), num(x+w), num(y), num(x+w), num(y+h), num(x), num(y+h)))
	s.current = true
}

func (s *SVGSurface) SetPaint(p Paint) {
	if !p.IsGradient() {
		s.fill = colorStyle("fill", p.Color)
		return
	}

	id := s.gradientRef(p.Gradient)
	s.fill = fmt.Sprintf("fill:url(#%s)", id)
}

// gradientRef registers g once per pass and returns its element id.
func (s *SVGSurface) gradientRef(g *LinearGradient) string {
	for i, known := range s.gradients {
		if known == g {
			return gradientName(i)
		}
	}
	s.gradients = append(s.gradients, g)
	return gradientName(len(s.gradients) - 1)
}

func gradientName(i int) string {
	if i == 0 {
		return gradientID
	}
	return fmt.Sprintf("%s%d", gradientID, i+1)
}

func (s *SVGSurface) Fill() {
	if len(s.path) == 0 {
		return
	}

	d, style := strings.Join(s.path, " "), s.fill
	s.ops = append(s.ops, func(canvas *svg.SVG) {
		canvas.Path(d, style)
	})
	s.path = s.path[:0]
	s.current = false
}

// DrawImage embeds img as a PNG data URL.
func (s *SVGSurface) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil {
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		s.log.Warnw("image skipped", "error", err)
		return
	}

	// svgo's Image takes whole pixels; the box must match the safe zone exactly.
	el := fmt.Sprintf(`<image x="%s" y="%s" width="%s" height="%s" preserveAspectRatio="none" xlink:href="data:image/png;base64,%s"/>`+"\n",
		num(x), num(y), num(w), num(h), base64.StdEncoding.EncodeToString(buf.Bytes()))
	s.ops = append(s.ops, func(canvas *svg.SVG) {
		io.WriteString(canvas.Writer, el)
	})
}

func (s *SVGSurface) DrawText(str string, x, y float64, style TextStyle) {
	baseline := "hanging"
	if style.Baseline == BaselineMiddle {
		baseline = "central"
	}
	weight := 400
	if style.Bold {
		weight = 600
	}

	css := fmt.Sprintf("text-anchor:middle;dominant-baseline:%s;font-family:sans-serif;font-size:%spx;font-weight:%d;%s",
		baseline, num(style.Size), weight, colorStyle("fill", style.Color))
	var body bytes.Buffer
	xml.EscapeText(&body, []byte(str))
	el := fmt.Sprintf(`<text x="%s" y="%s" style="%s">%s</text>`+"\n", num(x), num(y), css, body.String())
	s.ops = append(s.ops, func(canvas *svg.SVG) {
		io.WriteString(canvas.Writer, el)
	})
}

// Encode writes the recorded pass as one SVG document.
func (s *SVGSurface) Encode(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	vw, vh := int(math.Ceil(s.width)), int(math.Ceil(s.height))
	dw, dh := deviceSize(s.width, s.height, s.ratio)
	canvas.Startview(dw, dh, 0, 0, vw, vh)

	if len(s.gradients) > 0 {
		canvas.Def()
		for i, g := range s.gradients {
			writeGradient(canvas.Writer, gradientName(i), g)
		}
		canvas.DefEnd()
	}

	for _, op := range s.ops {
		op(canvas)
	}
	canvas.End()

	return errors.Wrap(ew.err, "encode svg")
}

// writeGradient emits a gradient fixed to canvas coordinates, unlike the
// bounding-box units of svg.LinearGradient.
func writeGradient(w io.Writer, id string, g *LinearGradient) {
	fmt.Fprintf(w, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`+"\n",
		id, num(g.X0), num(g.Y0), num(g.X1), num(g.Y1))
	for _, stop := range g.Stops {
		fmt.Fprintf(w, `<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`+"\n",
			num(stop.T), hexString(stop.Color), num(opacity(stop.Color)))
	}
	fmt.Fprintln(w, `</linearGradient>`)
}

func colorStyle(prop string, c color.Color) string {
	css := prop + ":" + hexString(c)
	if a := opacity(c); a < 1 {
		css += fmt.Sprintf(";%s-opacity:%s", prop, num(a))
	}
	return css
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

// errWriter keeps the first write error; svgo ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
