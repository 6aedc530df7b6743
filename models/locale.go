package models

import (
	"fmt"
	"strings"
)

// Locale is one of the languages the portfolio is published in.
// The zero value is English, which is also the default locale.
type Locale uint8

const (
	LocaleEN Locale = iota
	LocaleAR
)

// DefaultLocale is used whenever a request names no supported locale.
const DefaultLocale = LocaleEN

// SupportedLocales lists every locale in display order.
var SupportedLocales = []Locale{LocaleEN, LocaleAR}

func (l Locale) String() string {
	switch l {
	case LocaleAR:
		return "ar"
	default:
		return "en"
	}
}

// Dir returns the text direction used when rendering the locale.
func (l Locale) Dir() string {
	if l == LocaleAR {
		return "rtl"
	}
	return "ltr"
}

// LookupLocale maps an exact locale code to a Locale.
func LookupLocale(code string) (Locale, bool) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "en":
		return LocaleEN, true
	case "ar":
		return LocaleAR, true
	}
	return DefaultLocale, false
}

func (l Locale) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Locale) UnmarshalText(text []byte) error {
	parsed, ok := LookupLocale(string(text))
	if !ok {
		return fmt.Errorf("unsupported locale %q", string(text))
	}
	*l = parsed
	return nil
}

// Localized holds one value per supported locale.
type Localized[T any] struct {
	EN T `json:"en"`
	AR T `json:"ar"`
}

// For returns the value for the locale.
func (l Localized[T]) For(locale Locale) T {
	if locale == LocaleAR {
		return l.AR
	}
	return l.EN
}
