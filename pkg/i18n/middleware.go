package i18n

import "net/http"

// Middleware stores the language found by extr in the request context.
// A nil extr uses DefaultLangExtractor; an empty result stores fallback.
func Middleware(extr LangExtractor, fallback string) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}
	if fallback == "" {
		fallback = DefaultLanguage
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = fallback
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
