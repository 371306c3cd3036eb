package abg

// Match is the outcome of Evaluate: the table row that fired and its result.
type Match struct {
	Rule   string
	Result Result
}

// Evaluate runs the classification table against a reading and reports
// which rule matched. Non-finite input yields RuleInvalid with
// UndefinedResult. The supplied pH is trusted even when it disagrees with
// PaCO2 and HCO3.
func Evaluate(ph, paco2, hco3 float64) Match {
	if !finite(ph, paco2, hco3) {
		return Match{Rule: RuleInvalid, Result: UndefinedResult}
	}
	band := Band(ph)
	for i := range ruleTable {
		r := &ruleTable[i]
		if r.Band == band && r.When(paco2, hco3) {
			return Match{Rule: r.ID, Result: r.Result}
		}
	}
	// Every band ends in a catch-all row; unreachable.
	return Match{Rule: RuleInvalid, Result: UndefinedResult}
}

// Classify maps a reading to its acid-base category and display color.
// It is total over float64: NaN and infinities classify as Undefined/Gray.
func Classify(ph, paco2, hco3 float64) Result {
	return Evaluate(ph, paco2, hco3).Result
}
