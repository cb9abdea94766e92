package validation

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var (
	numericPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
	slugPattern    = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Primitive checks return a message on failure and "" when the value is
// acceptable. Empty input is acceptable — required-ness is decided by the
// caller, optional fields are coerced to absent before they reach here.

func NumericString(v string) string {
	if v == "" {
		return ""
	}
	if !numericPattern.MatchString(v) {
		return "Must be a valid number"
	}
	return ""
}

func PositiveNumericString(v string) string {
	if v == "" {
		return ""
	}
	if msg := NumericString(v); msg != "" {
		return msg
	}
	d, err := decimal.NewFromString(v)
	if err != nil || !d.IsPositive() {
		return "Must be greater than 0"
	}
	return ""
}

func SlugFormat(v string) string {
	if v == "" {
		return ""
	}
	if !slugPattern.MatchString(v) {
		return "Slug must be lowercase alphanumeric with hyphens"
	}
	return ""
}

// Percentage checks a decimal string lies in [0, 100].
func Percentage(v string) string {
	if v == "" {
		return ""
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return "Must be a valid number"
	}
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
		return "Must be between 0 and 100"
	}
	return ""
}
