package abg

import "math"

// Henderson-Hasselbalch parameters for the bicarbonate buffer.
const (
	// PK is the apparent pK of carbonic acid in plasma.
	PK = 6.1

	// CO2Solubility converts PaCO2 in mmHg to dissolved CO2 in mmol/L.
	CO2Solubility = 0.03
)

// Reference ranges for an arterial sample.
const (
	PHLow     = 7.35
	PHHigh    = 7.45
	PaCO2Low  = 35.0
	PaCO2High = 45.0
	HCO3Low   = 22.0
	HCO3High  = 26.0
)

// Slider ranges offered by front ends. The core does not enforce them.
const (
	PaCO2Min = 10.0
	PaCO2Max = 100.0
	HCO3Min  = 5.0
	HCO3Max  = 50.0
)

// CalculatePH derives pH from PaCO2 (mmHg) and HCO3 (mEq/L):
//
//	pH = PK + log10(HCO3 / (PaCO2 * CO2Solubility))
//
// Both arguments must be finite and positive; otherwise the returned error
// matches ErrInvalidInput.
func CalculatePH(paco2, hco3 float64) (float64, error) {
	if err := checkPositive("PaCO2", paco2); err != nil {
		return 0, err
	}
	if err := checkPositive("HCO3", hco3); err != nil {
		return 0, err
	}
	return PK + math.Log10(hco3/(paco2*CO2Solubility)), nil
}

// PaCO2For returns the PaCO2 that yields ph at the given HCO3.
// It is the inverse used to place the classification regions on the map.
func PaCO2For(ph, hco3 float64) (float64, error) {
	if err := checkFinite("pH", ph); err != nil {
		return 0, err
	}
	if err := checkPositive("HCO3", hco3); err != nil {
		return 0, err
	}
	return hco3 / (math.Pow(10, ph-PK) * CO2Solubility), nil
}

// HCO3For returns the HCO3 that yields ph at the given PaCO2.
func HCO3For(ph, paco2 float64) (float64, error) {
	if err := checkFinite("pH", ph); err != nil {
		return 0, err
	}
	if err := checkPositive("PaCO2", paco2); err != nil {
		return 0, err
	}
	return paco2 * CO2Solubility * math.Pow(10, ph-PK), nil
}

func checkFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InputError{Field: field, Value: v}
	}
	return nil
}

func checkPositive(field string, v float64) error {
	if err := checkFinite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return &InputError{Field: field, Value: v}
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
