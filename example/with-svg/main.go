package main

import (
	"context"
	"os"

	qrstyle "github.com/Mictilt/go-qrstyle"
	"github.com/Mictilt/go-qrstyle/writer/standard"
	"github.com/Mictilt/go-qrstyle/writer/standard/imgkit"
)

const logoSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">
<circle cx="32" cy="32" r="30" fill="#0f766e"/>
<circle cx="32" cy="32" r="14" fill="#fdf7ec"/>
</svg>`

func main() {
	// save QR code as SVG file
	ctrl := standard.NewController(standard.NewSVGSurface(), qrstyle.NewEncoder(),
		standard.WithRenderConfig(standard.NewRenderConfig(
			standard.WithTitle("go-qrstyle"),
			standard.WithDotStyle(standard.DotLiquid),
			standard.WithEyeShape(standard.EyeCircle),
		)),
		standard.WithImageLoader(imgkit.NewLoader(0)),
	)
	ctrl.SetContent("https://github.com/Mictilt/go-qrstyle", qrstyle.LevelQ)
	save(ctrl, "./qrcode.svg")

	// The same controller with a logo; the level is raised to H while it is set.
	req := ctrl.LoadLogo(context.Background(), []byte(logoSVG))
	if err := req.Wait(context.Background()); err != nil {
		panic(err)
	}
	save(ctrl, "./qrcode_logo.svg")

	// You can also customize colors for SVG output
	ctrl.ClearLogo()
	ctrl.SetConfig(standard.NewRenderConfig(
		standard.WithFgColorRGBHex("#FF0000"), // Red QR code
		standard.WithBgColorRGBHex("#FFFFFF"), // White background
		standard.WithoutGradient(),
		standard.WithDotStyle(standard.DotSquare),
	))
	save(ctrl, "./qrcode_colored.svg")

	println("SVG files created successfully!")
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
