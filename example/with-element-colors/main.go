package main

import (
	"image/color"
	"os"

	qrstyle "github.com/Mictilt/go-qrstyle"
	"github.com/Mictilt/go-qrstyle/writer/standard"
)

func main() {
	surface := standard.NewRasterSurface(standard.PNGEncoder())

	// Different colors for data and finder elements
	// - Data modules: solid blue
	// - Finder patterns (anchor points): red
	cfg := standard.NewRenderConfig(
		standard.WithFgColorRGBHex("#0066CC"),
		standard.WithoutGradient(),
		standard.WithEyeColorRGBHex("#CC0000"),
		standard.WithDotStyle(standard.DotDot),
	)
	ctrl := standard.NewController(surface, qrstyle.NewEncoder(),
		standard.WithRenderConfig(cfg),
		standard.WithPixelRatio(2),
	)
	ctrl.SetContent("https://github.com/Mictilt/go-qrstyle", qrstyle.LevelQ)
	save(ctrl, "element-colors-qr.png")

	// You can also use color.Color types instead of hex strings
	ctrl.SetConfig(standard.NewRenderConfig(
		standard.WithFgGradient(
			color.RGBA{R: 0, G: 160, B: 0, A: 255},
			color.RGBA{R: 0, G: 60, B: 200, A: 255},
		),
		standard.WithEyeColor(color.RGBA{R: 255, G: 0, B: 255, A: 255}),
		standard.WithTitle("Scan me"),
	))
	save(ctrl, "element-colors-gradient.png")

	println("QR code with data and finder element colors saved as 'element-colors-qr.png'")
	println("QR code with a gradient and title saved as 'element-colors-gradient.png'")
}

func save(ctrl *standard.Controller, path string) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	if err = ctrl.Export(f); err != nil {
		panic(err)
	}
}
