// Package chart renders the acid-base map with gg.
//
// A chart shows pH on the x axis and HCO3 on the y axis. Each render draws,
// bottom to top:
//
//   - the classification regions, tinted over white
//   - the PaCO2 isopleths with their labels
//   - the uncertainty ring and the current reading
//   - axes, ticks and the two header lines "pH = ..." and
//     "Classification: ..."
//
// Rendering is headless; the result is an image.Image or a PNG stream.
//
//	c := chart.New()
//	m, _ := abg.NewMeasurement(40, 24)
//	if err := c.SavePNG("map.png", m); err != nil {
//	    log.Fatal(err)
//	}
package chart

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/abg"
	"github.com/gogpu/abg/internal/numfmt"
)

// Plot area margins in pixels.
const (
	marginLeft   = 70
	marginRight  = 30
	marginTop    = 70
	marginBottom = 60
)

// Chart renders readings onto the acid-base map. The classification
// raster does not depend on the reading; it is computed on first render and
// reused. A Chart is not safe for concurrent use.
type Chart struct {
	opts options
	num  *numfmt.Formatter

	grid    *abg.Grid
	gridErr error
}

// New creates a Chart with the given options.
func New(opts ...Option) *Chart {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Chart{opts: o, num: numfmt.New(o.lang)}
}

// Size returns the output image size in pixels.
func (c *Chart) Size() (width, height int) {
	return c.opts.width, c.opts.height
}

// PlotRect returns the plot area in pixel coordinates.
func (c *Chart) PlotRect() image.Rectangle {
	return image.Rect(marginLeft, marginTop, c.opts.width-marginRight, c.opts.height-marginBottom)
}

// Project maps a point of the acid-base map to pixel coordinates.
func (c *Chart) Project(ph, hco3 float64) (x, y float64) {
	r := c.PlotRect()
	v := c.opts.view
	x = float64(r.Min.X) + (ph-v.PHMin)/(v.PHMax-v.PHMin)*float64(r.Dx())
	y = float64(r.Max.Y) - (hco3-v.HCO3Min)/(v.HCO3Max-v.HCO3Min)*float64(r.Dy())
	return x, y
}

// Render draws the map with m as the current reading.
func (c *Chart) Render(m abg.Measurement) (image.Image, error) {
	dc, err := c.draw(m)
	if err != nil {
		return nil, err
	}
	defer func() { _ = dc.Close() }()
	return dc.Image(), nil
}

// Encode renders the map and writes it to w as PNG.
func (c *Chart) Encode(w io.Writer, m abg.Measurement) error {
	dc, err := c.draw(m)
	if err != nil {
		return err
	}
	defer func() { _ = dc.Close() }()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("chart: encode png: %w", err)
	}
	return nil
}

// SavePNG renders the map and writes it to path.
func (c *Chart) SavePNG(path string, m abg.Measurement) error {
	dc, err := c.draw(m)
	if err != nil {
		return err
	}
	defer func() { _ = dc.Close() }()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}
	abg.Logger().Info("chart: map written", slog.String("path", path))
	return nil
}

func (c *Chart) draw(m abg.Measurement) (*gg.Context, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	if err := c.opts.view.Validate(); err != nil {
		return nil, fmt.Errorf("chart: view: %w", err)
	}
	if c.opts.width <= marginLeft+marginRight || c.opts.height <= marginTop+marginBottom {
		return nil, fmt.Errorf("chart: image %dx%d too small for margins", c.opts.width, c.opts.height)
	}
	face, err := loadFace(c.opts.fontSize)
	if err != nil {
		return nil, err
	}

	canvas, err := c.background()
	if err != nil {
		return nil, err
	}
	dc := gg.NewContextForImage(canvas)
	dc.SetFont(face)

	c.drawIsopleths(dc)
	c.drawReading(dc, m)
	c.drawAxes(dc)
	c.drawHeader(dc, m)
	return dc, nil
}

func (c *Chart) regionGrid() (*abg.Grid, error) {
	if c.grid == nil && c.gridErr == nil {
		c.grid, c.gridErr = abg.RegionGrid(c.opts.region, c.opts.cols, c.opts.rows)
		if c.gridErr != nil {
			c.gridErr = fmt.Errorf("chart: region: %w", c.gridErr)
		}
	}
	return c.grid, c.gridErr
}
