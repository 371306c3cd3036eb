package abg

import (
	"log/slog"
	"math"
)

// RingPoint is one sample of the uncertainty ring around a reading.
// PH is NaN when the offset pair left the calculator's domain.
type RingPoint struct {
	Angle float64
	PH    float64
	PaCO2 float64
	HCO3  float64
}

// Valid reports whether the sample carries a computed pH.
func (p RingPoint) Valid() bool { return !math.IsNaN(p.PH) }

// Ring is a sequence of samples ordered by increasing angle.
type Ring []RingPoint

// PHs returns the pH of every sample, the x coordinates of the ring on
// the acid-base map.
func (r Ring) PHs() []float64 {
	out := make([]float64, len(r))
	for i, p := range r {
		out[i] = p.PH
	}
	return out
}

// HCO3s returns the HCO3 of every sample, the y coordinates of the ring.
func (r Ring) HCO3s() []float64 {
	out := make([]float64, len(r))
	for i, p := range r {
		out[i] = p.HCO3
	}
	return out
}

// RingOption configures SampleRing.
type RingOption func(*ringOptions)

type ringOptions struct {
	skipInvalid bool
}

// WithSkipInvalid drops samples whose offset PaCO2 or HCO3 is not
// positive. By default such samples are kept with a NaN pH so the ring
// keeps one point per angle.
func WithSkipInvalid() RingOption {
	return func(o *ringOptions) {
		o.skipInvalid = true
	}
}

// SampleRing samples numPoints readings on a circle of the given radius
// around (paco2, hco3) in PaCO2/HCO3 space. Angles run from 0 to 2π
// inclusive, so the first and last samples coincide and the ring closes.
// At angle θ the offsets are radius·cos θ for PaCO2 and radius·sin θ for
// HCO3; pH comes from CalculatePH on the offset pair.
//
// A sample outside the calculator's domain never aborts the ring; see
// WithSkipInvalid. numPoints <= 0 yields an empty ring.
func SampleRing(paco2, hco3, radius float64, numPoints int, opts ...RingOption) Ring {
	var o ringOptions
	for _, opt := range opts {
		opt(&o)
	}
	if numPoints <= 0 {
		return Ring{}
	}

	step := 0.0
	if numPoints > 1 {
		step = 2 * math.Pi / float64(numPoints-1)
	}

	ring := make(Ring, 0, numPoints)
	invalid := 0
	for i := 0; i < numPoints; i++ {
		theta := float64(i) * step
		p := RingPoint{
			Angle: theta,
			PaCO2: paco2 + radius*math.Cos(theta),
			HCO3:  hco3 + radius*math.Sin(theta),
		}
		ph, err := CalculatePH(p.PaCO2, p.HCO3)
		if err != nil {
			invalid++
			if o.skipInvalid {
				continue
			}
			ph = math.NaN()
		}
		p.PH = ph
		ring = append(ring, p)
	}

	if invalid > 0 {
		Logger().Debug("abg: ring samples outside domain",
			slog.Int("invalid", invalid),
			slog.Int("points", numPoints),
			slog.Bool("skipped", o.skipInvalid))
	}
	return ring
}
