package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language can be negotiated.
const DefaultLanguage = "en"

// maxAcceptLanguageLength caps the header length handed to the parser.
const maxAcceptLanguageLength = 4096

// Match returns the entry of supported that best serves the desired language
// tags, or "" when none is a confident match. Regional variants match their
// base language (nl-BE matches nl).
func Match(supported []string, desired ...string) string {
	tags := make([]language.Tag, 0, len(desired))
	for _, d := range desired {
		if tag, err := language.Parse(strings.TrimSpace(d)); err == nil {
			tags = append(tags, tag)
		}
	}
	return matchTags(supported, tags)
}

// ParseAcceptLanguage negotiates an Accept-Language header against supported,
// honouring quality values. It returns defaultLang when nothing matches.
func ParseAcceptLanguage(header string, supported []string, defaultLang string) string {
	if header == "" || len(supported) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return defaultLang
	}
	if lang := matchTags(supported, tags); lang != "" {
		return lang
	}
	return defaultLang
}

func matchTags(supported []string, desired []language.Tag) string {
	if len(supported) == 0 || len(desired) == 0 {
		return ""
	}

	codes := make([]string, 0, len(supported))
	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		codes = append(codes, strings.ToLower(s))
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return ""
	}

	_, idx, conf := language.NewMatcher(tags).Match(desired...)
	if conf < language.High {
		return ""
	}
	return codes[idx]
}
