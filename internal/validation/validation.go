package validation

import (
	"strconv"
	"strings"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func NonNegativeInt(field string, val int, v Violations) {
	if val < 0 {
		v[field] = "must_be_non_negative"
	}
}

func MinInt(field string, val, minVal int, v Violations) {
	if val < minVal {
		v[field] = "below_minimum"
	}
}

// ParsePositiveFloat coerces a form string into a positive number, recording a
// violation when it fails to parse or is out of range.
func ParsePositiveFloat(field, raw string, v Violations) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		v[field] = "required"
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		v[field] = "not_a_number"
		return 0
	}
	if f <= 0 {
		v[field] = "must_be_positive"
		return 0
	}
	return f
}

// ParseNonNegativeInt coerces a form string into an integer >= 0.
func ParseNonNegativeInt(field, raw string, v Violations) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		v[field] = "required"
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		v[field] = "not_an_integer"
		return 0
	}
	if n < 0 {
		v[field] = "must_be_non_negative"
		return 0
	}
	return n
}
