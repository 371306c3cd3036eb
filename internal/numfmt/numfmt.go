// Package numfmt formats the numbers printed on the acid-base map for a
// given locale.
package numfmt

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter prints fixed-point numbers with locale-specific separators.
// The zero value is not usable; call New.
type Formatter struct {
	p *message.Printer
}

// New returns a Formatter for tag. An undetermined tag formats as English.
func New(tag language.Tag) *Formatter {
	if tag == language.Und {
		tag = language.English
	}
	return &Formatter{p: message.NewPrinter(tag)}
}

// Fixed formats v with exactly prec fractional digits.
func (f *Formatter) Fixed(v float64, prec int) string {
	return f.p.Sprint(number.Decimal(v, number.Scale(prec)))
}

// Sprintf formats according to the locale of f.
func (f *Formatter) Sprintf(format string, args ...any) string {
	return f.p.Sprintf(format, args...)
}

// Parse parses a BCP 47 language tag such as "en" or "de-CH".
func Parse(s string) (language.Tag, error) {
	return language.Parse(s)
}
