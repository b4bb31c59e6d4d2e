package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// maxLangCodeLength follows the RFC 5646 recommendation.
const maxLangCodeLength = 35

// ExtractorConfig configures DefaultLangExtractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

type ExtractorOption func(*ExtractorConfig)

func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLanguages restricts results to langs.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor checks, in order, the "lang" cookie, the "lang" query
// parameter and the Accept-Language header. Explicit choices that do not match
// a supported language are skipped.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	config := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(config)
	}

	validate := func(lang string) string {
		lang = strings.TrimSpace(lang)
		if lang == "" || len(lang) > maxLangCodeLength {
			return ""
		}
		if len(config.SupportedLangs) == 0 {
			return strings.ToLower(lang)
		}
		return Match(config.SupportedLangs, lang)
	}

	return func(r *http.Request) string {
		if config.CookieName != "" {
			if cookie, err := r.Cookie(config.CookieName); err == nil {
				if lang := validate(cookie.Value); lang != "" {
					return lang
				}
			}
		}

		if config.QueryParamName != "" {
			if lang := validate(r.URL.Query().Get(config.QueryParamName)); lang != "" {
				return lang
			}
		}

		header := r.Header.Get("Accept-Language")
		if header == "" {
			return ""
		}
		if len(config.SupportedLangs) > 0 {
			return ParseAcceptLanguage(header, config.SupportedLangs, "")
		}
		tags, _, err := language.ParseAcceptLanguage(header)
		if err != nil || len(tags) == 0 {
			return ""
		}
		return validate(tags[0].String())
	}
}
