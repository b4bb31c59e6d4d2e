package combination

import "errors"

var (
	ErrNilRegistry   = errors.New("combination: license registry is required")
	ErrNilTranslator = errors.New("combination: translator is required")
	ErrUnknownSchema = errors.New("combination: unknown schema")
)
