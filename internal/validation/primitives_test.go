package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty passes", "", ""},
		{"integer", "1000000", ""},
		{"decimal", "14.5", ""},
		{"leading zero decimal", "0.5", ""},
		{"negative rejected", "-5", "Must be a valid number"},
		{"thousands separator rejected", "1,000", "Must be a valid number"},
		{"currency prefix rejected", "₦5000", "Must be a valid number"},
		{"trailing dot rejected", "100.", "Must be a valid number"},
		{"plain text rejected", "ten", "Must be a valid number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NumericString(tt.input))
		})
	}
}

func TestPositiveNumericString(t *testing.T) {
	assert.Equal(t, "", PositiveNumericString(""))
	assert.Equal(t, "", PositiveNumericString("250000000"))
	assert.Equal(t, "", PositiveNumericString("0.01"))
	assert.Equal(t, "Must be greater than 0", PositiveNumericString("0"))
	assert.Equal(t, "Must be a valid number", PositiveNumericString("-100"))
}

func TestSlugFormat(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"", true},
		{"lekki-gardens-estate-phase-2", true},
		{"a", true},
		{"a1-b2", true},
		{"enugu-estate-1", true},
		{"Enugu_Estate", false},
		{"UPPER-case", false},
		{"double--hyphen", false},
		{"-leading", false},
		{"trailing-", false},
		{"under_score", false},
		{"with space", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			msg := SlugFormat(tt.input)
			if tt.ok {
				assert.Empty(t, msg)
			} else {
				assert.Equal(t, "Slug must be lowercase alphanumeric with hyphens", msg)
			}
		})
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, "", Percentage(""))
	assert.Equal(t, "", Percentage("0"))
	assert.Equal(t, "", Percentage("14.5"))
	assert.Equal(t, "", Percentage("100"))
	assert.Equal(t, "Must be between 0 and 100", Percentage("100.01"))
	assert.Equal(t, "Must be between 0 and 100", Percentage("-1"))
	assert.Equal(t, "Must be a valid number", Percentage("ten"))
}
