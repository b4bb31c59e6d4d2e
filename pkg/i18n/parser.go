package i18n

import "context"

// Parser turns the content of a translation file into translations keyed by
// language code.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)

	// SupportsFileExtension accepts the extension with or without a leading dot.
	SupportsFileExtension(ext string) bool
}
