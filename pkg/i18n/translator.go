package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"sort"
	"strings"
)

// Translator renders translation keys for a set of languages.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads translations through adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, tr := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguageCode
		}
		if tr == nil {
			return nil, fmt.Errorf("%w for language %q", ErrNoTranslations, lang)
		}
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "translations loaded", "languages", t.SupportedLanguages())
	return t, nil
}

// DefaultLanguage returns the fallback language of the translator.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	langs := slices.Collect(maps.Keys(t.translations))
	sort.Strings(langs)
	return langs
}

// IsSupported reports whether translations were loaded for lang.
func (t *Translator) IsSupported(lang string) bool {
	_, ok := t.translations[lang]
	return ok
}

// HasTranslation reports whether lang itself defines key.
func (t *Translator) HasTranslation(lang, key string) bool {
	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookupString(langMap, key)
	return ok
}

// T translates key into lang, substituting %{name} placeholders from args
// given as name, value pairs. A key missing in lang is looked up in the
// default language, then falls back to the key itself when enabled.
func (t *Translator) T(lang, key string, args ...string) string {
	if tmpl, ok := t.lookup(lang, key); ok {
		return sprintf(tmpl, args)
	}
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// Td is T with an explicit default template for missing keys.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if tmpl, ok := t.lookup(lang, key); ok {
		return sprintf(tmpl, args)
	}
	return sprintf(defaultValue, args)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	if langMap, ok := t.translations[lang]; ok {
		if s, ok := lookupString(langMap, key); ok {
			return s, true
		}
	}
	if t.missingLogMode {
		t.logger.Warn("translation not found", "lang", lang, "key", key)
	}
	if lang == t.defaultLang {
		return "", false
	}
	if langMap, ok := t.translations[t.defaultLang]; ok {
		return lookupString(langMap, key)
	}
	return "", false
}

// lookupString walks a nested map with a dot-separated key.
func lookupString(m map[string]any, key string) (string, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		current, ok = val.(map[string]any)
		if !ok {
			return "", false
		}
	}
	return "", false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf substitutes %{name} placeholders. Unknown names are kept verbatim and
// an odd trailing argument is ignored.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// Args flattens values into name, value pairs sorted by name.
func Args(values map[string]any) []string {
	names := slices.Sorted(maps.Keys(values))
	args := make([]string, 0, len(names)*2)
	for _, name := range names {
		args = append(args, name, fmt.Sprint(values[name]))
	}
	return args
}
