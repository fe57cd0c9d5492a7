package standard

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

const (
	// MinLogoScale and MaxLogoScale bound the logo edge as a fraction of Size.
	MinLogoScale = 0.12
	MaxLogoScale = 0.32

	_defaultSize      = 520
	_defaultLogoScale = 0.22
)

// RenderConfig holds every input of a render pass except the matrix.
type RenderConfig struct {
	// Size is the code edge in logical pixels.
	Size float64

	Foreground color.Color
	Background color.Color

	GradientEnabled bool
	GradientFrom    color.Color
	GradientTo      color.Color

	DotStyle DotStyle
	EyeColor color.Color
	EyeShape EyeShape

	Title string

	// Logo is an optional decoded bitmap drawn in the center. Callers using
	// a logo should encode with qrstyle.LevelH.
	Logo      image.Image
	LogoScale float64
}

// DefaultRenderConfig returns the stock look.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Size:            _defaultSize,
		Foreground:      mustParseHex("#1f2937"),
		Background:      mustParseHex("#fdf7ec"),
		GradientEnabled: true,
		GradientFrom:    mustParseHex("#0f766e"),
		GradientTo:      mustParseHex("#f97316"),
		DotStyle:        DotRounded,
		EyeColor:        mustParseHex("#111827"),
		EyeShape:        EyeSquare,
		LogoScale:       _defaultLogoScale,
	}
}

// NewRenderConfig applies opts on top of DefaultRenderConfig.
func NewRenderConfig(opts ...RenderOption) RenderConfig {
	cfg := DefaultRenderConfig()
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	return cfg
}

// Validate reports the first out-of-range field. Rendering does not call it;
// the renderer draws whatever it is given.
func (cfg RenderConfig) Validate() error {
	if cfg.Size <= 0 {
		return errors.Errorf("size must be positive, got %v", cfg.Size)
	}
	if _, err := ParseDotStyle(string(cfg.DotStyle)); err != nil {
		return err
	}
	if _, err := ParseEyeShape(string(cfg.EyeShape)); err != nil {
		return err
	}
	if cfg.LogoScale < MinLogoScale || cfg.LogoScale > MaxLogoScale {
		return errors.Errorf("logo scale must be within [%v, %v], got %v", MinLogoScale, MaxLogoScale, cfg.LogoScale)
	}
	for name, c := range map[string]color.Color{
		"foreground": cfg.Foreground,
		"background": cfg.Background,
		"eye":        cfg.EyeColor,
	} {
		if c == nil {
			return errors.Errorf("%s color is not set", name)
		}
	}
	if cfg.GradientEnabled && (cfg.GradientFrom == nil || cfg.GradientTo == nil) {
		return errors.New("gradient colors are not set")
	}
	return nil
}
