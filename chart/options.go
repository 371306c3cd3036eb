package chart

import (
	"golang.org/x/text/language"

	"github.com/gogpu/abg"
)

// Option configures a Chart during creation.
//
// Example:
//
//	c := chart.New(
//	    chart.WithSize(1024, 1024),
//	    chart.WithLanguage(language.German),
//	)
type Option func(*options)

type options struct {
	width, height int
	region        abg.Extent
	view          abg.Extent
	cols, rows    int
	regionAlpha   float64
	lang          language.Tag
	isopleths     []float64
	ringRadius    float64
	ringPoints    int
	fontSize      float64
}

// DefaultView is the data window of the plot: the region extent widened
// on the HCO3 axis so that isopleth labels have room.
var DefaultView = abg.Extent{PHMin: 6.2, PHMax: 8.4, HCO3Min: 0, HCO3Max: 55}

func defaultOptions() options {
	return options{
		width:       800,
		height:      800,
		region:      abg.DefaultExtent,
		view:        DefaultView,
		cols:        200,
		rows:        200,
		regionAlpha: 0.6,
		lang:        language.English,
		isopleths:   abg.DefaultIsopleths(),
		ringRadius:  2,
		ringPoints:  100,
		fontSize:    12,
	}
}

// WithSize sets the output image size in pixels. Non-positive values keep
// the default of 800x800.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithExtent sets the data rectangle covered by the classification raster.
func WithExtent(e abg.Extent) Option {
	return func(o *options) {
		o.region = e
	}
}

// WithView sets the data window mapped onto the plot area.
func WithView(e abg.Extent) Option {
	return func(o *options) {
		o.view = e
	}
}

// WithResolution sets the number of lattice nodes of the classification
// raster. Non-positive values keep the default of 200x200.
func WithResolution(cols, rows int) Option {
	return func(o *options) {
		if cols > 0 && rows > 0 {
			o.cols, o.rows = cols, rows
		}
	}
}

// WithRegionAlpha sets the opacity of the region colors over the white
// background, clamped to [0, 1].
func WithRegionAlpha(a float64) Option {
	return func(o *options) {
		o.regionAlpha = clamp01(a)
	}
}

// WithLanguage selects the locale used for numbers on the chart.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}

// WithIsopleths sets the PaCO2 values (mmHg) drawn as isopleths. An empty
// slice draws none.
func WithIsopleths(paco2 []float64) Option {
	return func(o *options) {
		o.isopleths = append([]float64(nil), paco2...)
	}
}

// WithRingRadius sets the radius of the uncertainty ring in PaCO2/HCO3
// units. Zero disables the ring.
func WithRingRadius(r float64) Option {
	return func(o *options) {
		if r >= 0 {
			o.ringRadius = r
		}
	}
}

// WithRingPoints sets the number of ring samples.
func WithRingPoints(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.ringPoints = n
		}
	}
}

// WithFontSize sets the size of label text in pixels.
func WithFontSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.fontSize = size
		}
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
