package validator

import "fmt"

// MinNum validates that value is not below min.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return bound(field, value >= min, "min", min, "must be at least %v")
}

// MaxNum validates that value does not exceed max.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return bound(field, value <= max, "max", max, "must be at most %v")
}

// bound builds a limit rule whose translation key and value are both named
// after the limit, e.g. validation.max with %{max}.
func bound(field string, ok bool, name string, limit any, format string) Rule {
	return Rule{
		Check: func() bool { return ok },
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf(format, limit),
			TranslationKey: "validation." + name,
			TranslationValues: map[string]any{
				"field": field,
				name:    limit,
			},
		},
	}
}
