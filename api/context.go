package api

import (
	"context"

	"github.com/rpupo63/portfolio-backend/models"
)

type keyType string

const (
	localeKey keyType = "locale"
)

// ctxWithLocale adds the request locale to the context
func ctxWithLocale(ctx context.Context, locale models.Locale) context.Context {
	return context.WithValue(ctx, localeKey, locale)
}

// ctxGetLocale returns the request locale, or the default locale when the
// locale middleware did not run
func ctxGetLocale(ctx context.Context) models.Locale {
	if locale, ok := ctx.Value(localeKey).(models.Locale); ok {
		return locale
	}
	return models.DefaultLocale
}
