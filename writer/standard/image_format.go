package standard

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/pkg/errors"
)

type formatTyp uint8

const (
	// PNG_FORMAT as default output file format.
	PNG_FORMAT formatTyp = iota
	// JPEG_FORMAT .
	JPEG_FORMAT
	// SVG_FORMAT .
	SVG_FORMAT
)

func (f formatTyp) String() string {
	switch f {
	case JPEG_FORMAT:
		return "jpeg"
	case SVG_FORMAT:
		return "svg"
	}
	return "png"
}

// ParseFormat accepts png, jpeg (or jpg) and svg, case-insensitively.
func ParseFormat(s string) (formatTyp, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return PNG_FORMAT, nil
	case "jpeg", "jpg":
		return JPEG_FORMAT, nil
	case "svg":
		return SVG_FORMAT, nil
	}
	return PNG_FORMAT, errors.Errorf("unknown output format %q", s)
}

// ImageEncoder is an interface which describes the rule how to encode image.Image into io.Writer
type ImageEncoder interface {
	// Encode specify which format to encode image into io.Writer.
	Encode(w io.Writer, img image.Image) error
}

type jpegEncoder struct {
	quality int
}

func (j jpegEncoder) Encode(w io.Writer, img image.Image) error {
	var opts *jpeg.Options
	if j.quality > 0 {
		opts = &jpeg.Options{Quality: j.quality}
	}
	return jpeg.Encode(w, img, opts)
}

type pngEncoder struct{}

func (j pngEncoder) Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// JPEGEncoder encodes with the given quality, 1-100; 0 means the default.
func JPEGEncoder(quality int) ImageEncoder {
	return jpegEncoder{quality: quality}
}

// PNGEncoder encodes losslessly.
func PNGEncoder() ImageEncoder {
	return pngEncoder{}
}

// NewSurface returns an empty surface exporting in format.
func NewSurface(format formatTyp) Surface {
	switch format {
	case JPEG_FORMAT:
		return NewRasterSurface(jpegEncoder{})
	case SVG_FORMAT:
		return NewSVGSurface()
	}
	return NewRasterSurface(pngEncoder{})
}
