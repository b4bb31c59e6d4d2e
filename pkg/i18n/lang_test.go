package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trekcheck/trekcheck/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "nl"}

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"empty header", "", "nl"},
		{"exact match", "en", "en"},
		{"regional variant", "nl-BE", "nl"},
		{"quality ordering", "en;q=0.4, nl;q=0.9", "nl"},
		{"skips unsupported", "fr-FR, fr;q=0.9, en;q=0.5", "en"},
		{"nothing supported", "fr, de", "nl"},
		{"malformed", ";;;", "nl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, i18n.ParseAcceptLanguage(tt.header, supported, "nl"))
		})
	}

	t.Run("no supported languages", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "en", i18n.ParseAcceptLanguage("nl", nil, "en"))
	})

	t.Run("oversized header", func(t *testing.T) {
		t.Parallel()
		header := "en," + strings.Repeat("x", 5000)
		assert.Contains(t, supported, i18n.ParseAcceptLanguage(header, supported, "nl"))
	})
}

func TestMatch(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "nl"}
	assert.Equal(t, "nl", i18n.Match(supported, "NL"))
	assert.Equal(t, "en", i18n.Match(supported, "en-GB"))
	assert.Equal(t, "", i18n.Match(supported, "fr"))
	assert.Equal(t, "", i18n.Match(supported, "not a tag!"))
	assert.Equal(t, "", i18n.Match(nil, "en"))
}
