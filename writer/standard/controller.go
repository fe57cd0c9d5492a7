package standard

import (
	"context"
	"image"
	"io"
	"strings"
	"sync"

	qrstyle "github.com/Mictilt/go-qrstyle"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	// ErrLogoSuperseded is reported by a LogoRequest whose result was dropped
	// because a newer logo request or logo change arrived first.
	ErrLogoSuperseded = errors.New("logo request superseded")
	// ErrNoImageLoader is reported by LoadLogo without an ImageLoader.
	ErrNoImageLoader = errors.New("no image loader configured")
)

// ImageLoader decodes raw image bytes into a bitmap ready for compositing.
type ImageLoader interface {
	Load(ctx context.Context, data []byte) (image.Image, error)
}

// logSetter is implemented by surfaces that report drawing failures.
type logSetter interface {
	SetLogger(log *zap.SugaredLogger)
}

// Controller owns a Surface and repaints it in full whenever any render
// input changes. It is safe for concurrent use; render passes never
// interleave.
type Controller struct {
	mu sync.Mutex

	surface Surface
	encoder qrstyle.Encoder
	loader  ImageLoader
	log     *zap.SugaredLogger
	ratio   float64

	hasContent bool
	text       string
	level      qrstyle.ErrorLevel
	encoded    qrstyle.ErrorLevel
	matrix     qrstyle.Matrix

	cfg RenderConfig

	// generation identifies the latest logo change; decodes started under an
	// older generation are dropped.
	generation uint64
	logoSource bool
	logo       image.Image

	stats Stats
}

// NewController creates a controller drawing onto surface and paints the
// initial placeholder.
func NewController(surface Surface, encoder qrstyle.Encoder, opts ...Option) *Controller {
	c := &Controller{
		surface: surface,
		encoder: encoder,
		log:     zap.NewNop().Sugar(),
		ratio:   1,
		level:   qrstyle.LevelM,
		cfg:     DefaultRenderConfig(),
	}
	for _, opt := range opts {
		opt.applyController(c)
	}
	if ls, ok := surface.(logSetter); ok {
		ls.SetLogger(c.log.Named("surface"))
	}

	c.mu.Lock()
	c.render()
	c.mu.Unlock()

	return c
}

// SetContent encodes text at level and repaints. Blank text is encoded as a
// single space; an encoding failure leaves the placeholder.
func (c *Controller) SetContent(text string, level qrstyle.ErrorLevel) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.hasContent = true
	c.text, c.level = text, level
	c.encode()
	c.render()
}

// SetConfig replaces every render input except the logo bitmap, which is
// owned by LoadLogo, SetLogo and ClearLogo; cfg.Logo is ignored.
func (c *Controller) SetConfig(cfg RenderConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cfg.Logo = nil
	c.cfg = cfg
	c.render()
}

// SetPixelRatio changes the device pixel ratio and repaints.
func (c *Controller) SetPixelRatio(ratio float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ratio <= 0 {
		ratio = 1
	}
	c.ratio = ratio
	c.render()
}

// SetLogo installs an already decoded logo, superseding pending decodes.
// A nil img clears the logo.
func (c *Controller) SetLogo(img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.logo = img
	c.setLogoSource(img != nil)
	c.render()
}

// ClearLogo removes the logo and supersedes pending decodes.
func (c *Controller) ClearLogo() {
	c.SetLogo(nil)
}

// LoadLogo starts decoding data in the background and returns immediately.
// The error-correction level is raised to H at once; the logo appears when
// decoding completes, unless a newer logo change arrived in the meantime.
func (c *Controller) LoadLogo(ctx context.Context, data []byte) *LogoRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loader == nil {
		req := newLogoRequest(c.generation)
		req.finish(ErrNoImageLoader, false)
		return req
	}

	c.generation++
	req := newLogoRequest(c.generation)

	c.setLogoSource(true)
	c.render()

	go c.decode(ctx, req, data)

	return req
}

func (c *Controller) decode(ctx context.Context, req *LogoRequest, data []byte) {
	img, err := c.loader.Load(ctx, data)

	c.mu.Lock()
	defer c.mu.Unlock()

	if req.token != c.generation {
		c.log.Debugw("dropping superseded logo", "token", req.token, "latest", c.generation)
		req.finish(ErrLogoSuperseded, false)
		return
	}

	if err != nil {
		c.log.Warnw("logo decode failed, rendering without logo", "token", req.token, "error", err)
		c.logo = nil
		c.setLogoSource(false)
		c.render()
		req.finish(err, false)
		return
	}

	c.logo = img
	c.render()
	req.finish(nil, true)
}

// setLogoSource records whether a logo is present and re-encodes when that
// changes the effective error-correction level.
func (c *Controller) setLogoSource(present bool) {
	c.logoSource = present
	if c.hasContent && c.effectiveLevel() != c.encoded {
		c.encode()
	}
}

// effectiveLevel is H whenever a logo is pending or shown.
func (c *Controller) effectiveLevel() qrstyle.ErrorLevel {
	if c.logoSource {
		return qrstyle.LevelH
	}
	return c.level
}

func (c *Controller) encode() {
	content := c.text
	if strings.TrimSpace(content) == "" {
		content = " "
	}

	level := c.effectiveLevel()
	c.encoded = level

	m, err := c.encoder.Encode(content, level)
	if err != nil {
		c.log.Warnw("QR matrix generation failed", "level", level.String(), "length", len(content), "error", err)
		c.matrix = qrstyle.Matrix{}
		return
	}
	c.matrix = m
}

func (c *Controller) render() {
	cfg := c.cfg
	cfg.Logo = c.logo

	c.stats = Draw(c.surface, c.matrix, cfg, c.ratio)
	c.log.Debugw("rendered",
		"modules", c.stats.Modules,
		"n", c.matrix.Size(),
		"logo", c.stats.Logo,
		"placeholder", c.stats.Placeholder,
	)
}

// Export writes the current surface contents to w.
func (c *Controller) Export(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return errors.Wrap(c.surface.Encode(w), "export surface")
}

// Matrix returns the matrix of the last encoding.
func (c *Controller) Matrix() qrstyle.Matrix {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.matrix
}

// Level returns the error-correction level requested from the encoder.
func (c *Controller) Level() qrstyle.ErrorLevel {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.effectiveLevel()
}

// Stats returns what the last render pass painted.
func (c *Controller) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stats
}

// LogoRequest is the handle of one LoadLogo call.
type LogoRequest struct {
	token   uint64
	done    chan struct{}
	err     error
	applied bool
}

func newLogoRequest(token uint64) *LogoRequest {
	return &LogoRequest{token: token, done: make(chan struct{})}
}

func (r *LogoRequest) finish(err error, applied bool) {
	r.err, r.applied = err, applied
	close(r.done)
}

// Token returns the generation this request was issued under.
func (r *LogoRequest) Token() uint64 {
	return r.token
}

// Done is closed when the request completes.
func (r *LogoRequest) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the request completes or ctx ends and returns the
// request error.
func (r *LogoRequest) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return r.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the decode error, ErrLogoSuperseded, or nil. Valid after Done.
func (r *LogoRequest) Err() error {
	<-r.done
	return r.err
}

// Applied reports whether the decoded logo was installed. Valid after Done.
func (r *LogoRequest) Applied() bool {
	<-r.done
	return r.applied
}
