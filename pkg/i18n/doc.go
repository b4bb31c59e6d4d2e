// Package i18n translates message keys into localized text.
//
// Translations are nested maps keyed by language code, loaded once through a
// TranslationAdapter (an in-memory map or YAML files in an fs.FS) and looked
// up with dot-separated keys. Templates use named placeholders:
//
//	towing:
//	  weight:
//	    allowed: "Total weight (%{total}kg) is allowed for license %{class}"
//
//	msg := tr.T("en", "towing.weight.allowed", "total", "2100", "class", "B")
//
// Language negotiation is built on golang.org/x/text/language. Middleware
// stores the negotiated language in the request context, where
// GetLocale and LocaleFromContext pick it up.
//
// A Translator is immutable after construction and safe for concurrent use.
package i18n
