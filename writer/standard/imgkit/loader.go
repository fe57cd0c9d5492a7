package imgkit

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DefaultMaxEdge bounds the decoded logo bitmap. The logo never covers more
// than a third of the code, so larger sources only cost memory.
const DefaultMaxEdge = 1024

const defaultSVGEdge = 256

// ErrUnsupportedImage is returned for data no registered decoder accepts.
var ErrUnsupportedImage = errors.New("unsupported image")

// Loader decodes PNG, JPEG, GIF, BMP, WebP and SVG logos, raw or wrapped in a
// base64 data URL.
type Loader struct {
	MaxEdge uint
}

// NewLoader creates a Loader; a zero maxEdge means DefaultMaxEdge.
func NewLoader(maxEdge uint) *Loader {
	if maxEdge == 0 {
		maxEdge = DefaultMaxEdge
	}
	return &Loader{MaxEdge: maxEdge}
}

// Load decodes data into a bitmap no larger than MaxEdge on either side.
func (l *Loader) Load(ctx context.Context, data []byte) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := unwrapDataURL(data)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.Wrap(ErrUnsupportedImage, "empty data")
	}

	var img image.Image
	if isSVG(data) {
		img, err = decodeSVG(data, l.MaxEdge)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
		if err != nil {
			err = errors.Wrapf(ErrUnsupportedImage, "decode: %v", err)
		}
	}
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return Fit(img, l.MaxEdge), nil
}

// unwrapDataURL accepts "data:<mime>;base64,<payload>" and returns the
// payload bytes; anything else is returned as is.
func unwrapDataURL(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, []byte("data:")) {
		return data, nil
	}

	comma := bytes.IndexByte(data, ',')
	if comma < 0 {
		return nil, errors.Wrap(ErrUnsupportedImage, "malformed data URL")
	}
	meta, payload := data[len("data:"):comma], data[comma+1:]
	if !bytes.HasSuffix(meta, []byte(";base64")) {
		return payload, nil
	}

	out := make([]byte, base64.StdEncoding.DecodedLen(len(payload)))
	n, err := base64.StdEncoding.Decode(out, bytes.TrimSpace(payload))
	if err != nil {
		return nil, errors.Wrapf(ErrUnsupportedImage, "data URL payload: %v", err)
	}
	return out[:n], nil
}

func isSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	head = bytes.TrimSpace(head)
	return (bytes.HasPrefix(head, []byte("<?xml")) || bytes.HasPrefix(head, []byte("<svg"))) &&
		bytes.Contains(data, []byte("<svg"))
}

// decodeSVG rasterizes an SVG document at its view box size, capped at
// maxEdge on the longer side.
func decodeSVG(data []byte, maxEdge uint) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(ErrUnsupportedImage, "svg: %v", err)
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = defaultSVGEdge, defaultSVGEdge
	}
	if limit := float64(maxEdge); limit > 0 && math.Max(w, h) > limit {
		k := limit / math.Max(w, h)
		w, h = w*k, h*k
	}

	iw, ih := int(math.Ceil(w)), int(math.Ceil(h))
	icon.SetTarget(0, 0, float64(iw), float64(ih))

	rgba := image.NewRGBA(image.Rect(0, 0, iw, ih))
	scanner := rasterx.NewScannerGV(iw, ih, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(iw, ih, scanner), 1)

	return rgba, nil
}
