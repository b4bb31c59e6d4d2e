package validator

import (
	"fmt"
	"strings"
)

// OneOfFold validates that value matches one of options, ignoring case and
// surrounding whitespace.
func OneOfFold(field, value string, options []string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			for _, opt := range options {
				if strings.EqualFold(v, opt) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %s", strings.Join(options, ", ")),
			TranslationKey: "validation.one_of",
			TranslationValues: map[string]any{
				"field":   field,
				"options": strings.Join(options, ", "),
			},
		},
	}
}
