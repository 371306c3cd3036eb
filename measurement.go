package abg

import (
	"fmt"
	"math"
)

// Measurement is a single arterial blood-gas reading. It is a value type;
// the package never mutates a Measurement it is handed.
type Measurement struct {
	PH    float64 `json:"ph"`
	PaCO2 float64 `json:"paco2"`
	HCO3  float64 `json:"hco3"`
}

// NewMeasurement builds a consistent reading by deriving pH from PaCO2
// and HCO3.
func NewMeasurement(paco2, hco3 float64) (Measurement, error) {
	ph, err := CalculatePH(paco2, hco3)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{PH: ph, PaCO2: paco2, HCO3: hco3}, nil
}

// Validate reports an error matching ErrInvalidInput when any field is
// non-finite or PaCO2/HCO3 is not positive.
func (m Measurement) Validate() error {
	if err := checkFinite("pH", m.PH); err != nil {
		return err
	}
	if err := checkPositive("PaCO2", m.PaCO2); err != nil {
		return err
	}
	return checkPositive("HCO3", m.HCO3)
}

// Consistent reports whether PH agrees with the Henderson-Hasselbalch
// value for PaCO2 and HCO3 within tol.
func (m Measurement) Consistent(tol float64) bool {
	want, err := CalculatePH(m.PaCO2, m.HCO3)
	if err != nil || !finite(m.PH) {
		return false
	}
	return math.Abs(want-m.PH) <= tol
}

// Classify classifies the reading with its own pH.
func (m Measurement) Classify() Result {
	return Classify(m.PH, m.PaCO2, m.HCO3)
}

func (m Measurement) String() string {
	return fmt.Sprintf("pH=%.2f PaCO2=%.1f HCO3=%.1f", m.PH, m.PaCO2, m.HCO3)
}
