package chart

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/abg"
)

// background returns a white canvas with the classification raster scaled
// into the plot area.
func (c *Chart) background() (*image.RGBA, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, c.opts.width, c.opts.height))
	xdraw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)

	g, err := c.regionGrid()
	if err != nil {
		return nil, err
	}
	src := regionImage(g, c.opts.regionAlpha)

	plot, ok := canvas.SubImage(c.PlotRect()).(*image.RGBA)
	if !ok {
		return canvas, nil
	}
	xdraw.NearestNeighbor.Scale(plot, c.regionRect(), src, src.Bounds(), xdraw.Src, nil)
	return canvas, nil
}

// regionRect is the pixel rectangle covered by the region extent. It may
// extend past the plot area when the view is narrower than the extent.
func (c *Chart) regionRect() image.Rectangle {
	e := c.opts.region
	x0, y0 := c.Project(e.PHMin, e.HCO3Max)
	x1, y1 := c.Project(e.PHMax, e.HCO3Min)
	return image.Rect(
		int(math.Round(x0)), int(math.Round(y0)),
		int(math.Round(x1)), int(math.Round(y1)),
	)
}

// regionImage converts a classification grid into an image with one pixel
// per node. Row 0 of the grid is the bottom row of the image.
func regionImage(g *abg.Grid, alpha float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Cols, g.Rows))
	cache := make(map[abg.Color]color.Color, len(palette))
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			sym := g.At(col, row)
			px, ok := cache[sym]
			if !ok {
				px = tint(ColorOf(sym), alpha).Color()
				cache[sym] = px
			}
			img.Set(col, g.Rows-1-row, px)
		}
	}
	return img
}
