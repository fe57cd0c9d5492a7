package standard

import (
	"image"
	"image/color"

	"go.uber.org/zap"
)

// RenderOption customizes a RenderConfig built by NewRenderConfig.
type RenderOption interface {
	apply(cfg *RenderConfig)
}

// funcOption wraps a function that modifies RenderConfig into an
// implementation of the RenderOption interface.
type funcOption struct {
	f func(cfg *RenderConfig)
}

func (fo *funcOption) apply(cfg *RenderConfig) {
	fo.f(cfg)
}

func newFuncOption(f func(cfg *RenderConfig)) *funcOption {
	return &funcOption{
		f: f,
	}
}

// WithSize sets the code edge in logical pixels.
func WithSize(size float64) RenderOption {
	return newFuncOption(func(cfg *RenderConfig) {
		if size <= 0 {
			return
		}

		cfg.Size = size
	})
}

// WithBgColor background color
func WithBgColor(c color.Color) RenderOption {
	return newFuncOption(func(cfg *RenderConfig) {
		if c == nil {
			return
		}

		cfg.Background = parseFromColor(c)
	})
}

// WithBgColorRGBHex background color; invalid hex strings are ignored.
func WithBgColorRGBHex(hex string) RenderOption {
	return newFuncOption(func(cfg *RenderConfig) {
		if c, err := ParseHexColor(hex); err == nil {
			cfg.Background = c
		}
	})
}

// WithFgColor sets the solid data-module color, also used for the title.
func WithFgColor(c color.Color) RenderOption {
	return newFuncOption(func(cfg *RenderConfig) {
		if c == nil {
			return
		}

		cfg.Foreground = parseFromColor(c)
	})
}

// WithFgColorRGBHex Hex string to set the foreground color.
func WithFgColorRGBHex(hex string) RenderOption {
	return newFuncOption(func(cfg *RenderConfig) {
		if c, err := ParseHexColor(hex); err == nil {
			cfg.Foreground = c
		}
	})
}

// WithFgGradient fills data modules with a gradient from the top-left to the
// bottom-right corner of the code box.
func WithFgGradient(from, to color.Color) RenderOption {
	return newFuncOption(func(cfg *RenderConfig) {
		if from == nil || to == nil {
			return
		}

		cfg.GradientEnabled = true
		cfg.GradientFrom = parseFromColor(from)
		cfg.GradientTo = parseFromColor(to)
	})
}

// WithFgGradientRGBHex is WithFgGradient with hex strings.
func WithFgGradientRGBHex(from, to string) RenderOption {
	return newFuncOption(func(cfg *RenderConfig) {
		f, err := ParseHexColor(from)
		if err != nil {
			return
		}
		t, err := ParseHexColor(to)
		if err != nil {
			return
		}

		cfg.GradientEnabled = true
		cfg.GradientFrom, cfg.GradientTo = f, t
	})
}

// WithoutGradient fills data modules with the foreground color.
func WithoutGradient() RenderOption {
	return newFuncOption(func(cfg *RenderConfig) {
		cfg.GradientEnabled = false
	})
}

// WithDotStyle selects the data-module shape.
func WithDotStyle(style DotStyle) RenderOption {
	return newFuncOption(func(cfg *RenderConfig) {
		cfg.DotStyle = style
	})
}

// WithEyeShape selects the finder-pattern shape.
func WithEyeShape(shape EyeShape) RenderOption {
	return newFuncOption(func(cfg *RenderConfig) {
		cfg.EyeShape = shape
	})
}

// WithEyeColor sets the color of finder blocks
func WithEyeColor(c color.Color) RenderOption {
	return newFuncOption(func(cfg *RenderConfig) {
		if c == nil {
			return
		}

		cfg.EyeColor = parseFromColor(c)
	})
}

// WithEyeColorRGBHex sets the color of finder blocks
func WithEyeColorRGBHex(hex string) RenderOption {
	return newFuncOption(func(cfg *RenderConfig) {
		if c, err := ParseHexColor(hex); err == nil {
			cfg.EyeColor = c
		}
	})
}

// WithTitle sets a caption drawn above the code.
func WithTitle(title string) RenderOption {
	return newFuncOption(func(cfg *RenderConfig) {
		cfg.Title = title
	})
}

// WithLogoImage sets a decoded logo. Encode with qrstyle.LevelH when using it.
func WithLogoImage(img image.Image) RenderOption {
	return newFuncOption(func(cfg *RenderConfig) {
		if img == nil {
			return
		}

		cfg.Logo = img
	})
}

// WithLogoScale sets the logo edge as a fraction of the code edge, clamped to
// [MinLogoScale, MaxLogoScale].
func WithLogoScale(scale float64) RenderOption {
	return newFuncOption(func(cfg *RenderConfig) {
		if scale < MinLogoScale {
			scale = MinLogoScale
		}
		if scale > MaxLogoScale {
			scale = MaxLogoScale
		}

		cfg.LogoScale = scale
	})
}

// Option configures a Controller.
type Option interface {
	applyController(c *Controller)
}

type controllerOption struct {
	f func(c *Controller)
}

func (co *controllerOption) applyController(c *Controller) {
	co.f(c)
}

func newControllerOption(f func(c *Controller)) *controllerOption {
	return &controllerOption{
		f: f,
	}
}

// WithPixelRatio sets the device pixels per logical pixel of the host.
func WithPixelRatio(ratio float64) Option {
	return newControllerOption(func(c *Controller) {
		if ratio <= 0 {
			return
		}

		c.ratio = ratio
	})
}

// WithImageLoader sets the decoder used by LoadLogo.
func WithImageLoader(loader ImageLoader) Option {
	return newControllerOption(func(c *Controller) {
		if loader == nil {
			return
		}

		c.loader = loader
	})
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(log *zap.SugaredLogger) Option {
	return newControllerOption(func(c *Controller) {
		if log == nil {
			return
		}

		c.log = log
	})
}

// WithRenderConfig sets the initial render inputs.
func WithRenderConfig(cfg RenderConfig) Option {
	return newControllerOption(func(c *Controller) {
		c.cfg = cfg
	})
}
