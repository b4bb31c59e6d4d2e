package sanitizer

import (
	"math"
	"strings"
)

// LeadingInt parses the integer at the start of s and returns 0 when there is none.
//
// Leading whitespace and a single sign are accepted; parsing stops at the first
// non-digit, so "1500", "1500 kg" and "1500.9" all yield 1500. Empty or
// non-numeric input yields 0. Values that overflow int saturate at the
// respective bound.
func LeadingInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		d := int(c - '0')
		if n > (math.MaxInt-d)/10 {
			if negative {
				return math.MinInt
			}
			return math.MaxInt
		}
		n = n*10 + d
	}

	if negative {
		return -n
	}
	return n
}

// NonNegativeInt is LeadingInt with negative results mapped to 0.
func NonNegativeInt(s string) int {
	return ZeroIfNegative(LeadingInt(s))
}
