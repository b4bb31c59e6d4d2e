package combination

import (
	"context"
	"embed"
	"log/slog"

	"github.com/trekcheck/trekcheck/pkg/i18n"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// NewTranslator loads the bundled locales (en, nl). Missing keys in lang fall
// back to defaultLang.
func NewTranslator(ctx context.Context, defaultLang string, log *slog.Logger) (*i18n.Translator, error) {
	opts := []i18n.Option{i18n.WithDefaultLanguage(defaultLang)}
	if log != nil {
		opts = append(opts, i18n.WithLogger(log), i18n.WithMissingTranslationsLogging(true))
	}
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), localeFS, "locales"), opts...)
}
