package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trekcheck/trekcheck/pkg/i18n"
)

func TestLocaleContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, ok := i18n.LocaleFromContext(ctx)
	assert.False(t, ok)
	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(ctx))

	ctx = i18n.SetLocale(ctx, "nl")
	lang, ok := i18n.LocaleFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "nl", lang)
	assert.Equal(t, "nl", i18n.GetLocale(ctx))

	_, ok = i18n.LocaleFromContext(i18n.SetLocale(ctx, ""))
	assert.False(t, ok)
}
