package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	qrstyle "github.com/Mictilt/go-qrstyle"
	"github.com/Mictilt/go-qrstyle/writer/standard"
)

// EnvPrefix prefixes environment overrides, e.g. QRSTYLE_RENDER_SIZE.
const EnvPrefix = "QRSTYLE"

type Config struct {
	Text    string `mapstructure:"text"`
	Level   string `mapstructure:"level"`
	Encoder string `mapstructure:"encoder"`

	Render Render `mapstructure:"render"`
	Logo   Logo   `mapstructure:"logo"`
	Output Output `mapstructure:"output"`
	Log    Log    `mapstructure:"log"`
}

type Render struct {
	Size       float64  `mapstructure:"size"`
	Foreground string   `mapstructure:"foreground"`
	Background string   `mapstructure:"background"`
	Gradient   Gradient `mapstructure:"gradient"`
	DotStyle   string   `mapstructure:"dot-style"`
	EyeColor   string   `mapstructure:"eye-color"`
	EyeShape   string   `mapstructure:"eye-shape"`
	Title      string   `mapstructure:"title"`
}

type Gradient struct {
	Enabled bool   `mapstructure:"enabled"`
	From    string `mapstructure:"from"`
	To      string `mapstructure:"to"`
}

type Logo struct {
	Path    string  `mapstructure:"path"`
	Scale   float64 `mapstructure:"scale"`
	MaxEdge uint    `mapstructure:"max-edge"`
}

type Output struct {
	Path       string  `mapstructure:"path"`
	Format     string  `mapstructure:"format"`
	PixelRatio float64 `mapstructure:"pixel-ratio"`
	// Quality is the JPEG quality, 1-100.
	Quality int `mapstructure:"quality"`
}

type Log struct {
	Debug bool   `mapstructure:"debug"`
	File  string `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("text", "https://example.com")
	v.SetDefault("level", "M")
	v.SetDefault("encoder", "yeqown")

	v.SetDefault("render.size", 520)
	v.SetDefault("render.foreground", "#1f2937")
	v.SetDefault("render.background", "#fdf7ec")
	v.SetDefault("render.gradient.enabled", true)
	v.SetDefault("render.gradient.from", "#0f766e")
	v.SetDefault("render.gradient.to", "#f97316")
	v.SetDefault("render.dot-style", string(standard.DotRounded))
	v.SetDefault("render.eye-color", "#111827")
	v.SetDefault("render.eye-shape", string(standard.EyeSquare))
	v.SetDefault("render.title", "")

	v.SetDefault("logo.path", "")
	v.SetDefault("logo.scale", 0.22)
	v.SetDefault("logo.max-edge", 1024)

	v.SetDefault("output.path", "qrcode.png")
	v.SetDefault("output.format", "")
	v.SetDefault("output.pixel-ratio", 1)
	v.SetDefault("output.quality", 90)

	v.SetDefault("log.debug", false)
	v.SetDefault("log.file", "")
}

// Load reads defaults, then the YAML file at path when path is not empty,
// then QRSTYLE_* environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &c, nil
}

// RenderConfig converts the render section, reporting the first invalid
// value.
func (c *Config) RenderConfig() (standard.RenderConfig, error) {
	r := c.Render

	fg, err := standard.ParseHexColor(r.Foreground)
	if err != nil {
		return standard.RenderConfig{}, errors.Wrap(err, "render.foreground")
	}
	bg, err := standard.ParseHexColor(r.Background)
	if err != nil {
		return standard.RenderConfig{}, errors.Wrap(err, "render.background")
	}
	eye, err := standard.ParseHexColor(r.EyeColor)
	if err != nil {
		return standard.RenderConfig{}, errors.Wrap(err, "render.eye-color")
	}
	dot, err := standard.ParseDotStyle(r.DotStyle)
	if err != nil {
		return standard.RenderConfig{}, errors.Wrap(err, "render.dot-style")
	}
	shape, err := standard.ParseEyeShape(r.EyeShape)
	if err != nil {
		return standard.RenderConfig{}, errors.Wrap(err, "render.eye-shape")
	}

	opts := []standard.RenderOption{
		standard.WithFgColor(fg),
		standard.WithBgColor(bg),
		standard.WithEyeColor(eye),
		standard.WithDotStyle(dot),
		standard.WithEyeShape(shape),
		standard.WithTitle(r.Title),
	}

	if r.Gradient.Enabled {
		from, err := standard.ParseHexColor(r.Gradient.From)
		if err != nil {
			return standard.RenderConfig{}, errors.Wrap(err, "render.gradient.from")
		}
		to, err := standard.ParseHexColor(r.Gradient.To)
		if err != nil {
			return standard.RenderConfig{}, errors.Wrap(err, "render.gradient.to")
		}
		opts = append(opts, standard.WithFgGradient(from, to))
	} else {
		opts = append(opts, standard.WithoutGradient())
	}

	cfg := standard.NewRenderConfig(opts...)
	// WithSize and WithLogoScale would mask out-of-range values.
	cfg.Size = r.Size
	cfg.LogoScale = c.Logo.Scale
	if err := cfg.Validate(); err != nil {
		return standard.RenderConfig{}, err
	}
	return cfg, nil
}

// ErrorLevel parses the level key.
func (c *Config) ErrorLevel() (qrstyle.ErrorLevel, error) {
	l, err := qrstyle.ParseErrorLevel(c.Level)
	return l, errors.Wrap(err, "level")
}

// NewEncoder resolves the encoder key.
func (c *Config) NewEncoder() (qrstyle.Encoder, error) {
	enc, err := qrstyle.EncoderByName(c.Encoder)
	return enc, errors.Wrap(err, "encoder")
}
