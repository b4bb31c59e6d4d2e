package sanitizer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trekcheck/trekcheck/pkg/sanitizer"
)

func TestLeadingInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "plain number", input: "1500", expected: 1500},
		{name: "surrounding whitespace", input: "  750 ", expected: 750},
		{name: "unit suffix", input: "1500 kg", expected: 1500},
		{name: "decimal is truncated", input: "1500.9", expected: 1500},
		{name: "explicit plus sign", input: "+42", expected: 42},
		{name: "negative number", input: "-5", expected: -5},
		{name: "empty string", input: "", expected: 0},
		{name: "only whitespace", input: "   ", expected: 0},
		{name: "not a number", input: "n/a", expected: 0},
		{name: "sign without digits", input: "-", expected: 0},
		{name: "digits after text", input: "kg 1500", expected: 0},
		{name: "overflow saturates", input: "99999999999999999999999", expected: math.MaxInt},
		{name: "negative overflow saturates", input: "-99999999999999999999999", expected: math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.LeadingInt(tt.input))
		})
	}
}

func TestNonNegativeInt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1200, sanitizer.NonNegativeInt("1200"))
	assert.Equal(t, 0, sanitizer.NonNegativeInt("-1200"))
	assert.Equal(t, 0, sanitizer.NonNegativeInt("geen"))
}
