package abg

// PHBand is the coarse partition of pH that selects a block of rules.
type PHBand uint8

const (
	// InvalidBand is reported for NaN or infinite pH.
	InvalidBand PHBand = iota
	// Acidemia is pH < PHLow.
	Acidemia
	// NormalPH is PHLow <= pH <= PHHigh.
	NormalPH
	// Alkalemia is pH > PHHigh.
	Alkalemia
)

// String returns the band name.
func (b PHBand) String() string {
	switch b {
	case Acidemia:
		return "acidemia"
	case NormalPH:
		return "normal"
	case Alkalemia:
		return "alkalemia"
	default:
		return "invalid"
	}
}

// Band returns the pH band of ph. The comparisons are strict, so 7.35
// and 7.45 both fall in NormalPH.
func Band(ph float64) PHBand {
	switch {
	case !finite(ph):
		return InvalidBand
	case ph < PHLow:
		return Acidemia
	case ph > PHHigh:
		return Alkalemia
	default:
		return NormalPH
	}
}

// Rule is one row of the classification table. Rules of the same band are
// tried in table order and the first whose When reports true wins.
type Rule struct {
	ID     string
	Band   PHBand
	When   func(paco2, hco3 float64) bool
	Result Result
}

// Rule IDs. The two metabolic "mixed" rules sit behind the respiratory
// rules of the same band, which already claim every PaCO2 beyond the
// respective bound; they are kept as written and never fire.
const (
	RuleAcidosisRespiratoryPartial       = "acidosis/respiratory/partially-compensated"
	RuleAcidosisRespiratoryMixed         = "acidosis/respiratory/mixed"
	RuleAcidosisRespiratoryUncompensated = "acidosis/respiratory/uncompensated"
	RuleAcidosisMetabolicPartial         = "acidosis/metabolic/partially-compensated"
	RuleAcidosisMetabolicMixed           = "acidosis/metabolic/mixed"
	RuleAcidosisMetabolicUncompensated   = "acidosis/metabolic/uncompensated"
	RuleAcidosisUndefined                = "acidosis/undefined"

	RuleAlkalosisRespiratoryPartial       = "alkalosis/respiratory/partially-compensated"
	RuleAlkalosisRespiratoryMixed         = "alkalosis/respiratory/mixed"
	RuleAlkalosisRespiratoryUncompensated = "alkalosis/respiratory/uncompensated"
	RuleAlkalosisMetabolicPartial         = "alkalosis/metabolic/partially-compensated"
	RuleAlkalosisMetabolicMixed           = "alkalosis/metabolic/mixed"
	RuleAlkalosisMetabolicUncompensated   = "alkalosis/metabolic/uncompensated"
	RuleAlkalosisUndefined                = "alkalosis/undefined"

	RuleNormal          = "normal"
	RuleNormalUndefined = "normal/undefined"

	// RuleInvalid is reported by Evaluate for non-finite input. It has no
	// row in the table.
	RuleInvalid = "invalid"
)

func hypercapnic(paco2 float64) bool { return paco2 > PaCO2High }
func hypocapnic(paco2 float64) bool  { return paco2 < PaCO2Low }
func lowHCO3(hco3 float64) bool      { return hco3 < HCO3Low }
func highHCO3(hco3 float64) bool     { return hco3 > HCO3High }
func always(float64, float64) bool   { return true }
func normocapnic(paco2 float64) bool { return paco2 >= PaCO2Low && paco2 <= PaCO2High }
func normalHCO3(hco3 float64) bool   { return hco3 >= HCO3Low && hco3 <= HCO3High }

var ruleTable = []Rule{
	// Acidemia.
	{
		ID:     RuleAcidosisRespiratoryPartial,
		Band:   Acidemia,
		When:   func(p, h float64) bool { return hypercapnic(p) && highHCO3(h) },
		Result: Result{PartiallyCompensatedRespiratoryAcidosis, Yellow},
	},
	{
		ID:     RuleAcidosisRespiratoryMixed,
		Band:   Acidemia,
		When:   func(p, h float64) bool { return hypercapnic(p) && lowHCO3(h) },
		Result: Result{MixedAcidosis, Red},
	},
	{
		ID:     RuleAcidosisRespiratoryUncompensated,
		Band:   Acidemia,
		When:   func(p, _ float64) bool { return hypercapnic(p) },
		Result: Result{UncompensatedRespiratoryAcidosis, Orange},
	},
	{
		ID:     RuleAcidosisMetabolicPartial,
		Band:   Acidemia,
		When:   func(p, h float64) bool { return lowHCO3(h) && hypocapnic(p) },
		Result: Result{PartiallyCompensatedMetabolicAcidosis, Yellow},
	},
	{
		ID:     RuleAcidosisMetabolicMixed,
		Band:   Acidemia,
		When:   func(p, h float64) bool { return lowHCO3(h) && hypercapnic(p) },
		Result: Result{MixedAcidosis, Red},
	},
	{
		ID:     RuleAcidosisMetabolicUncompensated,
		Band:   Acidemia,
		When:   func(_, h float64) bool { return lowHCO3(h) },
		Result: Result{UncompensatedMetabolicAcidosis, Orange},
	},
	{ID: RuleAcidosisUndefined, Band: Acidemia, When: always, Result: UndefinedResult},

	// Alkalemia.
	{
		ID:     RuleAlkalosisRespiratoryPartial,
		Band:   Alkalemia,
		When:   func(p, h float64) bool { return hypocapnic(p) && lowHCO3(h) },
		Result: Result{PartiallyCompensatedRespiratoryAlkalosis, Cyan},
	},
	{
		ID:     RuleAlkalosisRespiratoryMixed,
		Band:   Alkalemia,
		When:   func(p, h float64) bool { return hypocapnic(p) && highHCO3(h) },
		Result: Result{MixedAlkalosis, Purple},
	},
	{
		ID:     RuleAlkalosisRespiratoryUncompensated,
		Band:   Alkalemia,
		When:   func(p, _ float64) bool { return hypocapnic(p) },
		Result: Result{UncompensatedRespiratoryAlkalosis, Blue},
	},
	{
		ID:     RuleAlkalosisMetabolicPartial,
		Band:   Alkalemia,
		When:   func(p, h float64) bool { return highHCO3(h) && hypercapnic(p) },
		Result: Result{PartiallyCompensatedMetabolicAlkalosis, Cyan},
	},
	{
		ID:     RuleAlkalosisMetabolicMixed,
		Band:   Alkalemia,
		When:   func(p, h float64) bool { return highHCO3(h) && hypocapnic(p) },
		Result: Result{MixedAlkalosis, Purple},
	},
	{
		ID:     RuleAlkalosisMetabolicUncompensated,
		Band:   Alkalemia,
		When:   func(_, h float64) bool { return highHCO3(h) },
		Result: Result{UncompensatedMetabolicAlkalosis, Blue},
	},
	{ID: RuleAlkalosisUndefined, Band: Alkalemia, When: always, Result: UndefinedResult},

	// Normal pH.
	{
		ID:     RuleNormal,
		Band:   NormalPH,
		When:   func(p, h float64) bool { return normocapnic(p) && normalHCO3(h) },
		Result: Result{Normal, Green},
	},
	{ID: RuleNormalUndefined, Band: NormalPH, When: always, Result: UndefinedResult},
}

// Rules returns a copy of the classification table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(ruleTable))
	copy(out, ruleTable)
	return out
}

// RuleByID looks up a rule of the table.
func RuleByID(id string) (Rule, bool) {
	for _, r := range ruleTable {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}
