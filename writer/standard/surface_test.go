package standard

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func assertNear(t *testing.T, want color.Color, got color.NRGBA, tolerance int, msgAndArgs ...interface{}) {
	t.Helper()
	w := parseFromColor(want)
	diff := func(a, b uint8) int {
		d := int(a) - int(b)
		if d < 0 {
			d = -d
		}
		return d
	}
	ok := diff(w.R, got.R) <= tolerance && diff(w.G, got.G) <= tolerance &&
		diff(w.B, got.B) <= tolerance && diff(w.A, got.A) <= tolerance
	assert.True(t, ok, append([]interface{}{"want %v got %v", w, got}, msgAndArgs...)...)
}

func TestRasterSurface_ResetSize(t *testing.T) {
	s := NewRasterSurface(nil)
	s.Reset(100, 120, 2)
	assert.Equal(t, image.Rect(0, 0, 200, 240), s.Image().Bounds())

	first := s.Image()
	s.Reset(100, 120, 2)
	assert.Same(t, first, s.Image(), "same size reuses the bitmap")
	assert.Equal(t, color.NRGBA{}, nrgbaAt(s.Image(), 10, 10), "reset clears")

	l := ComputeLayout(520, 25, "Menu", 1.5)
	s.Reset(l.Size, l.CanvasHeight, l.Ratio)
	w, h := l.DeviceSize()
	assert.Equal(t, image.Rect(0, 0, w, h), s.Image().Bounds())
}

func TestRasterSurface_LogicalCoordinates(t *testing.T) {
	s := NewRasterSurface(nil)
	s.Reset(50, 50, 2)

	red := mustParseHex("#ff0000")
	s.SetPaint(Solid(red))
	s.DrawRectangle(10, 10, 10, 10)
	s.Fill()

	assertNear(t, red, nrgbaAt(s.Image(), 30, 30), 1)
	assert.Equal(t, color.NRGBA{}, nrgbaAt(s.Image(), 15, 15))
	assert.Equal(t, color.NRGBA{}, nrgbaAt(s.Image(), 45, 45))
}

func TestRasterSurface_GradientInDevicePixels(t *testing.T) {
	from, to := mustParseHex("#000000"), mustParseHex("#ffffff")
	g := NewLinearGradient(0, 0, 100, 0, ColorStop{0, from}, ColorStop{1, to})

	sample := func(ratio float64, x float64) color.NRGBA {
		s := NewRasterSurface(nil)
		s.Reset(100, 10, ratio)
		s.SetPaint(Paint{Gradient: g})
		s.DrawRectangle(0, 0, 100, 10)
		s.Fill()
		return nrgbaAt(s.Image(), int(x*ratio), int(5*ratio))
	}

	at1, at2 := sample(1, 75), sample(2, 75)
	assertNear(t, at1, at2, 4)
	assert.InDelta(t, 191, int(at1.R), 4)
}

func TestRasterSurface_DrawImage(t *testing.T) {
	logo := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range logo.Pix {
		logo.Pix[i] = 0xff
	}
	for i := 2; i < len(logo.Pix); i += 4 {
		logo.Pix[i] = 0
	}

	s := NewRasterSurface(nil)
	s.Reset(40, 40, 2)
	s.DrawImage(logo, 10, 10, 20, 20)

	assertNear(t, color.NRGBA{R: 255, G: 255, A: 255}, nrgbaAt(s.Image(), 40, 40), 2)
	assert.Equal(t, color.NRGBA{}, nrgbaAt(s.Image(), 10, 10))
}

func TestRasterSurface_Text(t *testing.T) {
	s := NewRasterSurface(nil)
	s.Reset(200, 60, 1)
	s.DrawText("Menu", 100, 10, TextStyle{Size: 24, Bold: true, Color: mustParseHex("#000000"), Baseline: BaselineTop})

	img := s.Image()
	inked := 0
	for y := 0; y < 60; y++ {
		for x := 0; x < 200; x++ {
			if nrgbaAt(img, x, y).A > 0 {
				inked++
				assert.GreaterOrEqual(t, y, 10, "no ink above the anchor")
			}
		}
	}
	assert.Greater(t, inked, 50)
}

func TestRasterSurface_FaceCacheBounded(t *testing.T) {
	s := NewRasterSurface(nil)
	s.Reset(100, 100, 1)
	for size := 8; size < 40; size++ {
		s.DrawText("a", 50, 50, TextStyle{Size: float64(size), Color: color.Black})
	}
	assert.LessOrEqual(t, len(s.faces.faces), maxCachedFaces)

	other := NewRasterSurface(nil)
	other.Reset(100, 100, 1)
	other.DrawText("a", 50, 50, TextStyle{Size: 39, Color: color.Black})
	assert.NotSame(t, s.faces.faces[faceKey{size: 39}], other.faces.faces[faceKey{size: 39}], "faces are per surface")
}

func TestRasterSurface_TextFailureLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s := NewRasterSurface(nil)
	NewController(s, &levelEncoder{}, WithLogger(zap.New(core).Sugar()))

	s.Reset(100, 100, 1)
	s.DrawText("Menu", 50, 10, TextStyle{Size: 0, Color: color.Black})

	entries := logs.FilterMessage("text skipped").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "surface", entries[0].LoggerName)
}

func TestJPEGEncoder_Quality(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 7)
	}

	var low, high bytes.Buffer
	require.NoError(t, JPEGEncoder(10).Encode(&low, img))
	require.NoError(t, JPEGEncoder(100).Encode(&high, img))
	assert.Less(t, low.Len(), high.Len())
}

func TestRasterSurface_EncodePNG(t *testing.T) {
	s := NewRasterSurface(PNGEncoder())
	s.Reset(20, 10, 1)

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 10), img.Bounds())
}

func TestSVGSurface_Document(t *testing.T) {
	s := NewSVGSurface()
	cfg := NewRenderConfig(WithTitle("Menu <1>"), WithLogoImage(image.NewRGBA(image.Rect(0, 0, 2, 2))))
	stats := Draw(s, testMatrix(t), cfg, 2)
	require.True(t, stats.Logo)

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf))
	out := buf.String()

	assert.Contains(t, out, `width="1040"`)
	assert.Contains(t, out, `viewBox="0 0 520 589"`)
	assert.Contains(t, out, `<linearGradient id="qrGradient" gradientUnits="userSpaceOnUse" x1="0" y1="0" x2="520" y2="520">`)
	assert.Contains(t, out, `stop-color="#0f766e"`)
	assert.Contains(t, out, "fill:url(#qrGradient)")
	assert.Contains(t, out, "fill:#111827")
	assert.Contains(t, out, "data:image/png;base64,")
	assert.Contains(t, out, "Menu &lt;1&gt;")
	assert.Contains(t, out, fmt.Sprintf(`<text x="%s" y="%s"`, num(cfg.Size/2), num(stats.Layout.TitleTop)))

	box := ComputeLogoBox(cfg.Size, cfg.LogoScale, stats.Layout.TitleOffset)
	require.NotEqual(t, float64(int(box.X)), box.X, "box off the pixel grid")
	assert.Contains(t, out, fmt.Sprintf(`<image x="%s" y="%s" width="%s" height="%s"`,
		num(box.X), num(box.Y), num(box.Edge), num(box.Edge)))
	assert.Equal(t, 1, strings.Count(out, "<linearGradient"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestSVGSurface_SolidNoGradient(t *testing.T) {
	s := NewSVGSurface()
	Draw(s, testMatrix(t), NewRenderConfig(WithoutGradient(), WithDotStyle(DotDot)), 1)

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf))
	out := buf.String()
	assert.NotContains(t, out, "linearGradient")
	assert.Contains(t, out, "fill:#1f2937")
	assert.Contains(t, out, " A")
}

func TestSVGSurface_Arc(t *testing.T) {
	s := NewSVGSurface()
	s.Reset(10, 10, 1)
	s.SetPaint(Solid(mustParseHex("#000")))
	s.MoveTo(0, 5)
	s.DrawArc(5, 5, 5, radians(180), radians(270))
	s.Fill()

	var buf bytes.Buffer
	require.NoError(t, s.Encode(&buf))
	assert.Contains(t, buf.String(), `d="M0 5 L0 5 A5 5 0 0 1 5 0"`)
}

func TestNum(t *testing.T) {
	assert.Equal(t, "0", num(0))
	assert.Equal(t, "0", num(-0.001))
	assert.Equal(t, "12", num(12))
	assert.Equal(t, "12.5", num(12.5))
	assert.Equal(t, "3.14", num(3.14159))
}
