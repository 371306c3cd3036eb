package abg

import (
	"errors"
	"fmt"
	"math"
)

// Point is a location on the acid-base map: pH on the x axis, HCO3 on the
// y axis.
type Point struct {
	PH   float64
	HCO3 float64
}

// Extent is the data rectangle of the acid-base map.
type Extent struct {
	PHMin, PHMax     float64
	HCO3Min, HCO3Max float64
}

// DefaultExtent is the region shown by the classic acid-base map.
var DefaultExtent = Extent{PHMin: 6.2, PHMax: 8.4, HCO3Min: 5, HCO3Max: 50}

var errEmptyExtent = errors.New("abg: empty extent")

// Validate reports an error if the extent is non-finite or empty.
func (e Extent) Validate() error {
	if !finite(e.PHMin, e.PHMax, e.HCO3Min, e.HCO3Max) || e.PHMax <= e.PHMin || e.HCO3Max <= e.HCO3Min {
		return fmt.Errorf("%w: %+v", errEmptyExtent, e)
	}
	return nil
}

// Contains reports whether p lies inside the extent, edges included.
func (e Extent) Contains(p Point) bool {
	return p.PH >= e.PHMin && p.PH <= e.PHMax && p.HCO3 >= e.HCO3Min && p.HCO3 <= e.HCO3Max
}

// DefaultIsopleths returns the PaCO2 values (mmHg) drawn as isopleths on
// the map: 10, 20, ..., 100.
func DefaultIsopleths() []float64 {
	out := make([]float64, 0, 10)
	for p := 10; p <= 100; p += 10 {
		out = append(out, float64(p))
	}
	return out
}

// Isopleth returns n points of the constant-PaCO2 curve for HCO3 evenly
// spaced from hco3Min to hco3Max inclusive. The last point is the top end
// of the curve, where map labels are anchored.
func Isopleth(paco2, hco3Min, hco3Max float64, n int) ([]Point, error) {
	if err := checkPositive("PaCO2", paco2); err != nil {
		return nil, err
	}
	if err := checkPositive("HCO3", hco3Min); err != nil {
		return nil, err
	}
	if err := checkPositive("HCO3", hco3Max); err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("abg: isopleth needs at least 2 points, got %d", n)
	}

	pts := make([]Point, n)
	for i := range pts {
		h := lerp(hco3Min, hco3Max, float64(i)/float64(n-1))
		pts[i] = Point{
			PH:   PK + math.Log10(h/(paco2*CO2Solubility)),
			HCO3: h,
		}
	}
	return pts, nil
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
