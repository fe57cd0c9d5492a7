package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/Mictilt/go-qrstyle/internal/config"
	"github.com/Mictilt/go-qrstyle/internal/logger"
	"github.com/Mictilt/go-qrstyle/writer/standard"
	"github.com/Mictilt/go-qrstyle/writer/standard/imgkit"
)

func main() {
	app := &cli.App{
		Name:  "qrstyle",
		Usage: "render styled QR codes to PNG, JPEG or SVG",
		Commands: []*cli.Command{
			renderCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "render a QR code",
		ArgsUsage: "[text]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
			&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Usage: "content to encode"},
			&cli.StringFlag{Name: "level", Aliases: []string{"l"}, Usage: "error correction level: L, M, Q or H"},
			&cli.StringFlag{Name: "encoder", Usage: "matrix encoder: yeqown or skip2"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "png, jpeg or svg; derived from --out when empty"},
			&cli.StringFlag{Name: "logo", Usage: "logo image: PNG, JPEG, GIF, BMP, WebP or SVG"},
			&cli.StringFlag{Name: "title", Usage: "caption above the code"},
			&cli.StringFlag{Name: "dot-style", Usage: "square, dot, rounded or liquid"},
			&cli.StringFlag{Name: "eye-shape", Usage: "square or circle"},
			&cli.Float64Flag{Name: "ratio", Usage: "device pixels per logical pixel"},
			&cli.IntFlag{Name: "quality", Usage: "JPEG quality, 1-100"},
			&cli.BoolFlag{Name: "debug", Usage: "debug logging"},
		},
		Action: render,
	}
}

func render(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	applyFlags(c, cfg)

	closeLog, err := logger.Init(logger.Config{Debug: cfg.Log.Debug, LogFile: cfg.Log.File})
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	defer closeLog()
	log := logger.Named("cli")

	renderCfg, err := cfg.RenderConfig()
	if err != nil {
		return err
	}
	level, err := cfg.ErrorLevel()
	if err != nil {
		return err
	}
	enc, err := cfg.NewEncoder()
	if err != nil {
		return err
	}

	format, err := standard.ParseFormat(formatName(cfg.Output))
	if err != nil {
		return err
	}

	surface := standard.NewSurface(format)
	if format == standard.JPEG_FORMAT {
		surface = standard.NewRasterSurface(standard.JPEGEncoder(cfg.Output.Quality))
	}

	ctrl := standard.NewController(surface, enc,
		standard.WithRenderConfig(renderCfg),
		standard.WithPixelRatio(cfg.Output.PixelRatio),
		standard.WithImageLoader(imgkit.NewLoader(cfg.Logo.MaxEdge)),
		standard.WithLogger(logger.Named("render")),
	)
	ctrl.SetContent(cfg.Text, level)

	if cfg.Logo.Path != "" {
		data, err := os.ReadFile(cfg.Logo.Path)
		if err != nil {
			return errors.Wrap(err, "read logo")
		}
		ctx := contextOf(c)
		req := ctrl.LoadLogo(ctx, data)
		if err := req.Wait(ctx); err != nil {
			log.Warnw("continuing without logo", "path", cfg.Logo.Path, "error", err)
		}
	}

	f, err := os.Create(cfg.Output.Path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := ctrl.Export(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "close output")
	}

	stats := ctrl.Stats()
	log.Infow("written",
		"path", cfg.Output.Path,
		"format", format.String(),
		"level", ctrl.Level().String(),
		"n", ctrl.Matrix().Size(),
		"modules", stats.Modules,
		"logo", stats.Logo,
	)
	return nil
}

func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.Args().Present() {
		cfg.Text = strings.Join(c.Args().Slice(), " ")
	}
	if c.IsSet("text") {
		cfg.Text = c.String("text")
	}
	if c.IsSet("level") {
		cfg.Level = c.String("level")
	}
	if c.IsSet("encoder") {
		cfg.Encoder = c.String("encoder")
	}
	if c.IsSet("out") {
		cfg.Output.Path = c.String("out")
	}
	if c.IsSet("format") {
		cfg.Output.Format = c.String("format")
	}
	if c.IsSet("ratio") {
		cfg.Output.PixelRatio = c.Float64("ratio")
	}
	if c.IsSet("quality") {
		cfg.Output.Quality = c.Int("quality")
	}
	if c.IsSet("logo") {
		cfg.Logo.Path = c.String("logo")
	}
	if c.IsSet("title") {
		cfg.Render.Title = c.String("title")
	}
	if c.IsSet("dot-style") {
		cfg.Render.DotStyle = c.String("dot-style")
	}
	if c.IsSet("eye-shape") {
		cfg.Render.EyeShape = c.String("eye-shape")
	}
	if c.Bool("debug") {
		cfg.Log.Debug = true
	}
}

// formatName prefers the explicit format, then the output extension.
func formatName(out config.Output) string {
	if out.Format != "" {
		return out.Format
	}
	return strings.TrimPrefix(filepath.Ext(out.Path), ".")
}

func contextOf(c *cli.Context) context.Context {
	if c.Context != nil {
		return c.Context
	}
	return context.Background()
}
