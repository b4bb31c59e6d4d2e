package i18n_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trekcheck/trekcheck/pkg/i18n"
)

func localeOf(t *testing.T, mw func(http.Handler) http.Handler, r *http.Request) string {
	t.Helper()

	var got string
	mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	})).ServeHTTP(httptest.NewRecorder(), r)
	return got
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	extr := i18n.DefaultLangExtractor(i18n.WithSupportedLanguages("en", "nl"))
	mw := i18n.Middleware(extr, "nl")

	t.Run("cookie wins", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/?lang=nl", nil)
		r.AddCookie(&http.Cookie{Name: "lang", Value: "en"})
		r.Header.Set("Accept-Language", "nl")
		assert.Equal(t, "en", localeOf(t, mw, r))
	})

	t.Run("query parameter", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/?lang=en-US", nil)
		r.Header.Set("Accept-Language", "nl")
		assert.Equal(t, "en", localeOf(t, mw, r))
	})

	t.Run("unsupported query falls through to header", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
		r.Header.Set("Accept-Language", "en")
		assert.Equal(t, "en", localeOf(t, mw, r))
	})

	t.Run("fallback when nothing matches", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "de")
		assert.Equal(t, "nl", localeOf(t, mw, r))
	})

	t.Run("default fallback", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, i18n.DefaultLanguage, localeOf(t, i18n.Middleware(nil, ""), r))
	})
}

func TestDefaultLangExtractor_Unrestricted(t *testing.T) {
	t.Parallel()

	extr := i18n.DefaultLangExtractor(i18n.WithQueryParamName("locale"), i18n.WithCookieName("ui_lang"))

	r := httptest.NewRequest(http.MethodGet, "/?locale=DE", nil)
	assert.Equal(t, "de", extr(r))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Language", "fr-CA;q=0.8, en")
	assert.Equal(t, "en", extr(r))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", extr(r))
}
