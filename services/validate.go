package services

import (
	"errors"
	"math"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var fullNamePattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// positiveID rejects an id that is present but zero. Threshold rules skip
// empty values, so Min alone would let an explicit 0 through.
func positiveID(msg string) validation.Rule {
	return validation.By(func(value interface{}) error {
		if id, ok := value.(*uint); ok && id != nil && *id == 0 {
			return errors.New(msg)
		}
		return nil
	})
}

// maxTwoDecimals rejects monetary values with more than two fractional
// digits. JSON numbers arrive as float64, so the check compares against the
// nearest cent with a small epsilon.
func maxTwoDecimals(msg string) validation.Rule {
	return validation.By(func(value interface{}) error {
		var v float64
		switch n := value.(type) {
		case float64:
			v = n
		case *float64:
			if n == nil {
				return nil
			}
			v = *n
		default:
			return nil
		}
		cents := v * 100
		if math.Abs(cents-math.Round(cents)) > 1e-6 {
			return errors.New(msg)
		}
		return nil
	})
}
