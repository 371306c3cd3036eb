package chart

import (
	"log/slog"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/abg"
)

const (
	isoplethSamples = 100
	dotRadius       = 6
	ringWidth       = 2
	tickLength      = 5
	phTickStep      = 0.2
	hco3TickStep    = 10
)

// polyline adds pts to the current path. NaN points and points outside
// the view lift the pen, so an invalid ring sample leaves a gap.
func (c *Chart) polyline(dc *gg.Context, pts []abg.Point) {
	pen := false
	for _, p := range pts {
		if math.IsNaN(p.PH) || math.IsNaN(p.HCO3) || !c.opts.view.Contains(p) {
			pen = false
			continue
		}
		x, y := c.Project(p.PH, p.HCO3)
		if pen {
			dc.LineTo(x, y)
			continue
		}
		dc.MoveTo(x, y)
		pen = true
	}
}

func (c *Chart) drawIsopleths(dc *gg.Context) {
	dc.SetLineWidth(1)
	for _, paco2 := range c.opts.isopleths {
		pts, err := abg.Isopleth(paco2, c.opts.region.HCO3Min, c.opts.region.HCO3Max, isoplethSamples)
		if err != nil {
			abg.Logger().Debug("chart: isopleth skipped", slog.Float64("paco2", paco2), slog.Any("err", err))
			continue
		}
		dc.SetRGBA(0, 0, 0, 0.5)
		c.polyline(dc, pts)
		_ = dc.Stroke()

		top := pts[len(pts)-1]
		if !c.opts.view.Contains(top) {
			continue
		}
		x, y := c.Project(top.PH, top.HCO3)
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(c.num.Fixed(paco2, 0), x, y-2, 0, 1)
	}
}

func (c *Chart) drawReading(dc *gg.Context, m abg.Measurement) {
	red := ColorOf(abg.Red)

	if c.opts.ringRadius > 0 {
		ring := abg.SampleRing(m.PaCO2, m.HCO3, c.opts.ringRadius, c.opts.ringPoints)
		pts := make([]abg.Point, len(ring))
		for i, s := range ring {
			pts[i] = abg.Point{PH: s.PH, HCO3: s.HCO3}
		}
		dc.SetRGBA(red.R, red.G, red.B, 1)
		dc.SetLineWidth(ringWidth)
		c.polyline(dc, pts)
		_ = dc.Stroke()
	}

	x, y := c.Project(m.PH, m.HCO3)
	dc.SetRGBA(red.R, red.G, red.B, 1)
	dc.DrawCircle(x, y, dotRadius)
	_ = dc.Fill()
}

func (c *Chart) drawAxes(dc *gg.Context) {
	r := c.PlotRect()
	v := c.opts.view

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	_ = dc.Stroke()

	bottom := float64(r.Max.Y)
	for _, ph := range ticks(v.PHMin, v.PHMax, phTickStep) {
		x, _ := c.Project(ph, v.HCO3Min)
		dc.DrawLine(x, bottom, x, bottom+tickLength)
		_ = dc.Stroke()
		dc.DrawStringAnchored(c.num.Fixed(ph, 1), x, bottom+tickLength+3, 0.5, 0)
	}

	left := float64(r.Min.X)
	for _, hco3 := range ticks(v.HCO3Min, v.HCO3Max, hco3TickStep) {
		_, y := c.Project(v.PHMin, hco3)
		dc.DrawLine(left-tickLength, y, left, y)
		_ = dc.Stroke()
		dc.DrawStringAnchored(c.num.Fixed(hco3, 0), left-tickLength-3, y, 1, 0.5)
	}

	dc.DrawStringAnchored("pH", float64(r.Min.X+r.Max.X)/2, float64(c.opts.height)-8, 0.5, 1)
	dc.DrawStringAnchored("HCO3 (mEq/L)", left, float64(r.Min.Y)-6, 0, 1)
}

func (c *Chart) drawHeader(dc *gg.Context, m abg.Measurement) {
	res := m.Classify()

	dc.SetRGB(0, 0, 0)
	dc.DrawString("pH = "+c.num.Fixed(m.PH, 2), marginLeft, 24)
	dc.DrawString("Classification: "+res.Label.String(), marginLeft, 44)

	sw := ColorOf(res.Color)
	size := c.opts.fontSize * 1.5
	x := float64(c.opts.width-marginRight) - size
	dc.SetRGBA(sw.R, sw.G, sw.B, 1)
	dc.DrawRectangle(x, 14, size, size)
	_ = dc.Fill()
	dc.SetRGB(0, 0, 0)
	dc.DrawRectangle(x, 14, size, size)
	_ = dc.Stroke()
}

// ticks returns the multiples of step within [lo, hi].
func ticks(lo, hi, step float64) []float64 {
	const slack = 1e-9
	var out []float64
	for i := int(math.Ceil(lo/step - slack)); float64(i)*step <= hi+slack; i++ {
		out = append(out, float64(i)*step)
	}
	return out
}
