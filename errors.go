package abg

import (
	"errors"
	"strconv"
)

// ErrInvalidInput is returned when a value lies outside the numeric domain
// of the Henderson-Hasselbalch relation: non-positive PaCO2 or HCO3, NaN,
// or an infinity.
var ErrInvalidInput = errors.New("abg: invalid input")

// InputError describes the offending field of an invalid input.
// It matches ErrInvalidInput under errors.Is.
type InputError struct {
	Field string
	Value float64
}

func (e *InputError) Error() string {
	return "abg: invalid " + e.Field + ": " + strconv.FormatFloat(e.Value, 'g', -1, 64)
}

// Is reports whether target is ErrInvalidInput.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}
