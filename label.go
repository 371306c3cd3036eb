package abg

import (
	"fmt"
	"strconv"
	"strings"
)

// Label names an acid-base disorder category.
type Label string

// The closed set of classification labels.
const (
	PartiallyCompensatedRespiratoryAcidosis  Label = "Partially Compensated Respiratory Acidosis"
	MixedAcidosis                            Label = "Mixed Acidosis"
	UncompensatedRespiratoryAcidosis         Label = "Uncompensated Respiratory Acidosis"
	PartiallyCompensatedMetabolicAcidosis    Label = "Partially Compensated Metabolic Acidosis"
	UncompensatedMetabolicAcidosis           Label = "Uncompensated Metabolic Acidosis"
	PartiallyCompensatedRespiratoryAlkalosis Label = "Partially Compensated Respiratory Alkalosis"
	MixedAlkalosis                           Label = "Mixed Alkalosis"
	UncompensatedRespiratoryAlkalosis        Label = "Uncompensated Respiratory Alkalosis"
	PartiallyCompensatedMetabolicAlkalosis   Label = "Partially Compensated Metabolic Alkalosis"
	UncompensatedMetabolicAlkalosis          Label = "Uncompensated Metabolic Alkalosis"
	Normal                                   Label = "Normal"
	Undefined                                Label = "Undefined"
)

// Labels returns every label in table order.
func Labels() []Label {
	return []Label{
		PartiallyCompensatedRespiratoryAcidosis,
		MixedAcidosis,
		UncompensatedRespiratoryAcidosis,
		PartiallyCompensatedMetabolicAcidosis,
		UncompensatedMetabolicAcidosis,
		PartiallyCompensatedRespiratoryAlkalosis,
		MixedAlkalosis,
		UncompensatedRespiratoryAlkalosis,
		PartiallyCompensatedMetabolicAlkalosis,
		UncompensatedMetabolicAlkalosis,
		Normal,
		Undefined,
	}
}

// String implements fmt.Stringer.
func (l Label) String() string { return string(l) }

// Color is the symbolic display color of a classification.
type Color uint8

// The closed set of display colors.
const (
	Gray Color = iota
	Yellow
	Red
	Orange
	Cyan
	Purple
	Blue
	Green
)

var colorNames = [...]string{
	Gray:   "Gray",
	Yellow: "Yellow",
	Red:    "Red",
	Orange: "Orange",
	Cyan:   "Cyan",
	Purple: "Purple",
	Blue:   "Blue",
	Green:  "Green",
}

// Colors returns the closed set of display colors.
func Colors() []Color {
	return []Color{Gray, Yellow, Red, Orange, Cyan, Purple, Blue, Green}
}

// String returns the color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "Color(" + strconv.Itoa(int(c)) + ")"
}

// ParseColor converts a color name (case-insensitive, "grey" accepted)
// into a Color.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "grey") {
		return Gray, true
	}
	for i, name := range colorNames {
		if strings.EqualFold(s, name) {
			return Color(i), true
		}
	}
	return Gray, false
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	v, ok := ParseColor(string(b))
	if !ok {
		return fmt.Errorf("abg: unknown color %q", b)
	}
	*c = v
	return nil
}

// Result is the outcome of a classification.
type Result struct {
	Label Label `json:"label"`
	Color Color `json:"color"`
}

// UndefinedResult is returned for inconsistent, boundary or non-finite
// inputs. It is a terminal classification, not an error.
var UndefinedResult = Result{Label: Undefined, Color: Gray}
