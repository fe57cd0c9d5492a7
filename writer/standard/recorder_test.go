package standard

import (
	"image"
	"io"
)

type pathOp struct {
	name string
	args []float64
}

type recordedFill struct {
	paint Paint
	path  []pathOp
}

type recordedText struct {
	s     string
	x, y  float64
	style TextStyle
}

type recordedImage struct {
	img        image.Image
	x, y, w, h float64
	// fills is the number of fills painted before the image.
	fills int
}

// recorder is a Surface that keeps the operations of the last pass.
type recorder struct {
	width, height, ratio float64
	resets               int

	paint  Paint
	path   []pathOp
	fills  []recordedFill
	texts  []recordedText
	images []recordedImage
}

var _ Surface = (*recorder)(nil)

func (r *recorder) Reset(width, height, ratio float64) {
	r.width, r.height, r.ratio = width, height, ratio
	r.resets++
	r.paint = Paint{}
	r.path = nil
	r.fills = nil
	r.texts = nil
	r.images = nil
}

func (r *recorder) add(name string, args ...float64) {
	r.path = append(r.path, pathOp{name: name, args: args})
}

func (r *recorder) MoveTo(x, y float64) {
	r.add("move", x, y)
}

func (r *recorder) LineTo(x, y float64) {
	r.add("line", x, y)
}

func (r *recorder) DrawArc(x, y, rad, a1, a2 float64) {
	r.add("arc", x, y, rad, a1, a2)
}

func (r *recorder) ClosePath() {
	r.add("close")
}

func (r *recorder) DrawCircle(x, y, rad float64) {
	r.add("circle", x, y, rad)
}

func (r *recorder) DrawRectangle(x, y, w, h float64) {
	r.add("rect", x, y, w, h)
}

func (r *recorder) SetPaint(p Paint) {
	r.paint = p
}

func (r *recorder) DrawText(s string, x, y float64, st TextStyle) {
	r.texts = append(r.texts, recordedText{s: s, x: x, y: y, style: st})
}

func (r *recorder) Encode(w io.Writer) error {
	_, err := io.WriteString(w, "recorded")
	return err
}

func (r *recorder) Fill() {
	r.fills = append(r.fills, recordedFill{paint: r.paint, path: r.path})
	r.path = nil
}

func (r *recorder) DrawImage(img image.Image, x, y, w, h float64) {
	r.images = append(r.images, recordedImage{img: img, x: x, y: y, w: w, h: h, fills: len(r.fills)})
}

// fillsWith counts fills whose paint is p.
func (r *recorder) fillsWith(p Paint) int {
	n := 0
	for _, f := range r.fills {
		if f.paint == p {
			n++
		}
	}
	return n
}

// ops counts path operations called name across all fills.
func (r *recorder) ops(name string) int {
	n := 0
	for _, f := range r.fills {
		for _, op := range f.path {
			if op.name == name {
				n++
			}
		}
	}
	return n
}
