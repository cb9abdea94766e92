package validation

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentBounds carries the cross-field verdicts for the min/max/target
// ordering rules. Empty string means no violation for that field.
type InvestmentBounds struct {
	MinError string
	MaxError string
}

// ValidateInvestmentBounds enforces min <= max, max <= target and
// min <= target over decimal strings. Absent values (empty strings or
// strings that do not parse) are skipped. When minInvestment violates both
// the max and the target rule, the max-rule message wins for MinError —
// rules are evaluated in order and the first failure per field sticks.
func ValidateInvestmentBounds(min, max, target string) InvestmentBounds {
	var result InvestmentBounds

	minVal, minOK := parseDecimal(min)
	maxVal, maxOK := parseDecimal(max)
	targetVal, targetOK := parseDecimal(target)

	if minOK && maxOK && minVal.GreaterThan(maxVal) {
		result.MinError = "Minimum investment cannot be greater than maximum investment"
	}
	if maxOK && targetOK && maxVal.GreaterThan(targetVal) {
		result.MaxError = "Maximum investment cannot exceed the target amount"
	}
	if minOK && targetOK && minVal.GreaterThan(targetVal) && result.MinError == "" {
		result.MinError = "Minimum investment cannot exceed the target amount"
	}
	return result
}

// DateOrder carries the per-field verdicts for the timeline ordering rules.
// Each field is judged independently — one violation never masks another.
type DateOrder struct {
	StartError   string
	EndError     string
	ExitError    string
	FundingError string
}

// ValidateDateOrder enforces start < end < exit (start < exit directly when
// end is absent) and fundingDeadline <= start. Nil dates are skipped.
func ValidateDateOrder(start, end, exit, fundingDeadline *time.Time) DateOrder {
	var result DateOrder

	if start != nil && end != nil && !start.Before(*end) {
		result.EndError = "End date must be after start date"
	}
	if end != nil && exit != nil && !end.Before(*exit) {
		result.ExitError = "Exit date must be after end date"
	}
	if start != nil && exit != nil && end == nil && !start.Before(*exit) {
		result.ExitError = "Exit date must be after start date"
	}
	if fundingDeadline != nil && start != nil && fundingDeadline.After(*start) {
		result.FundingError = "Funding deadline should be on or before the start date"
	}
	return result
}

// ValidatePenaltyRate checks the early-exit penalty lies in [0, 100].
func ValidatePenaltyRate(v string) string {
	if v == "" {
		return ""
	}
	d, ok := parseDecimal(v)
	if !ok || d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
		return "Penalty rate must be between 0 and 100"
	}
	return ""
}

// ValidateSlug wraps the slug-format primitive.
func ValidateSlug(v string) string {
	return SlugFormat(v)
}

func parseDecimal(v string) (decimal.Decimal, bool) {
	if v == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
