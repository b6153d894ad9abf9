package main

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/parallax2d/render"
)

// registerDemoImages generates the built-in layer silhouettes so the
// demo runs without asset files. Registered images shadow the
// filesystem, so a scene spec can still reference them by name.
func registerDemoImages() {
	render.Register("mountains_background.png", ridge(320, 180, colornames.Slategray, 70, 50, 2, 5))
	render.Register("back_trees_background.png", ridge(320, 150, colornames.Darkseagreen, 55, 30, 3, 9))
	render.Register("trees_background.png", ridge(320, 120, colornames.Forestgreen, 45, 25, 4, 11))
	render.Register("bushes_background.png", ridge(320, 90, colornames.Darkolivegreen, 30, 15, 6, 13))
}

// ridge draws a horizontally tileable silhouette: a base height with
// two stacked sine waves. Integer wave counts keep the edges matching
// when the layer repeats.
func ridge(w, h int, c color.RGBA, base, amplitude float64, waves, detail int) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		fx := float64(x) / float64(w)
		top := base +
			amplitude*math.Sin(2*math.Pi*fx*float64(waves)) +
			amplitude/3*math.Sin(2*math.Pi*fx*float64(detail))
		y0 := h - int(top)
		if y0 < 0 {
			y0 = 0
		}
		r := image.Rect(x, y0, x+1, h)
		draw.Draw(img, r, &image.Uniform{c}, image.Point{}, draw.Src)
	}
	return ebiten.NewImageFromImage(img)
}
