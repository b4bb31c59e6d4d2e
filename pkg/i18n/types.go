package i18n

import "net/http"

// LangExtractor returns the language requested by r, or "" when none is found.
type LangExtractor func(r *http.Request) string
