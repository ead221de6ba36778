package fuel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when a calculation input is not a finite,
// non-negative number, or when the normalized distance is zero.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidUnit is returned for a unit tag outside its closed set.
// It matches ErrInvalidInput as well.
var ErrInvalidUnit = fmt.Errorf("%w: invalid unit", ErrInvalidInput)

// decimalChars are the only characters a plain decimal number may contain.
// ParseFloat alone would also take hex floats, digit underscores and "Inf".
const decimalChars = "0123456789.eE+-"

// ParseValue parses the raw text of a numeric field. Surrounding spaces are
// ignored; anything else that is not a finite, non-negative decimal number is
// rejected with ErrInvalidInput.
func ParseValue(field, s string) (float64, error) {
	text := strings.TrimSpace(s)
	if strings.ContainsFunc(text, func(r rune) bool { return !strings.ContainsRune(decimalChars, r) }) {
		return 0, fmt.Errorf("%w: %s %q is not a decimal number", ErrInvalidInput, field, s)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidInput, field, s)
	}
	return v, checkValue(field, v)
}

func checkValue(field string, v float64) error {
	if !isFinite(v) {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, field)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, field)
	}
	return nil
}
