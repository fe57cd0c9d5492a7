package standard

import (
	"math"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type faceKey struct {
	bold bool
	size float64
}

// maxCachedFaces bounds a faceCache; titles use one size per canvas size.
const maxCachedFaces = 8

var (
	fontsOnce sync.Once
	fontsErr  error
	fontBold  *opentype.Font
	fontReg   *opentype.Font
)

func loadFonts() error {
	fontsOnce.Do(func() {
		if fontBold, fontsErr = opentype.Parse(gobold.TTF); fontsErr != nil {
			fontsErr = errors.Wrap(fontsErr, "parse bold font")
			return
		}
		if fontReg, fontsErr = opentype.Parse(goregular.TTF); fontsErr != nil {
			fontsErr = errors.Wrap(fontsErr, "parse regular font")
		}
	})
	return fontsErr
}

// faceCache holds the faces of one surface. A face carries glyph buffers and
// must not be shared between goroutines; the parsed fonts may.
type faceCache struct {
	faces map[faceKey]font.Face
}

// face returns a cached face of size pixels.
func (fc *faceCache) face(bold bool, size float64) (font.Face, error) {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, errors.Errorf("invalid font size %v", size)
	}
	if err := loadFonts(); err != nil {
		return nil, err
	}

	key := faceKey{bold: bold, size: size}
	if face, ok := fc.faces[key]; ok {
		return face, nil
	}

	f := fontReg
	if bold {
		f = fontBold
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "new face size=%v", size)
	}

	if fc.faces == nil || len(fc.faces) >= maxCachedFaces {
		fc.faces = make(map[faceKey]font.Face, maxCachedFaces)
	}
	fc.faces[key] = face

	return face, nil
}

// textOrigin returns the left end of the baseline for s drawn centered on x
// and anchored vertically on y.
func textOrigin(face font.Face, s string, x, y float64, baseline Baseline) (float64, float64) {
	m := face.Metrics()
	ascent, descent := fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
	width := fixedToFloat(font.MeasureString(face, s))

	x -= width / 2
	switch baseline {
	case BaselineMiddle:
		y += (ascent - descent) / 2
	default:
		y += ascent
	}
	return x, y
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
