package i18n

import (
	"net/http"
	"strings"
	"time"

	"github.com/rpupo63/portfolio-backend/models"
	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter used to select a locale.
	LangParam = "lang"
	// LangCookieName stores the visitor's locale preference.
	LangCookieName = "lang"
)

// supportedTags is indexed like models.SupportedLocales.
var supportedTags = []language.Tag{language.English, language.Arabic}

var tagMatcher = language.NewMatcher(supportedTags)

// Tag returns the BCP 47 tag for a locale.
func Tag(locale models.Locale) language.Tag {
	if locale == models.LocaleAR {
		return language.Arabic
	}
	return language.English
}

// ParseLocale accepts any BCP 47 tag whose base language is supported, so
// "ar-SA" and "EN_us" both resolve.
func ParseLocale(value string) (models.Locale, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return models.DefaultLocale, false
	}
	if locale, ok := models.LookupLocale(value); ok {
		return locale, true
	}

	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return models.DefaultLocale, false
	}
	base, confidence := tag.Base()
	if confidence != language.Exact {
		return models.DefaultLocale, false
	}
	return models.LookupLocale(base.String())
}

// NormalizeLocale coerces unknown values to the default locale.
func NormalizeLocale(value string) models.Locale {
	locale, _ := ParseLocale(value)
	return locale
}

// Negotiate picks the best supported locale for an Accept-Language header.
func Negotiate(acceptLanguage string) models.Locale {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return models.DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return models.DefaultLocale
	}
	_, index, confidence := tagMatcher.Match(tags...)
	if confidence == language.No {
		return models.DefaultLocale
	}
	return models.SupportedLocales[index]
}

// FromRequest determines the locale for a request with no locale in its path.
// The bool reports whether the choice came from the query parameter and
// should be persisted as a cookie.
func FromRequest(r *http.Request) (models.Locale, bool) {
	if r == nil {
		return models.DefaultLocale, false
	}

	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if locale, ok := ParseLocale(value); ok {
			return locale, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if locale, ok := ParseLocale(cookie.Value); ok {
			return locale, false
		}
	}

	return Negotiate(r.Header.Get("Accept-Language")), false
}

// SetLocaleCookie persists the selected locale on the response.
func SetLocaleCookie(w http.ResponseWriter, locale models.Locale) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    locale.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
