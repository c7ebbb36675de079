package i18n

import "strings"

// Locale identifies which language variant of a record field to resolve.
// The empty value is the default (base) language.
type Locale string

const (
	LocaleDefault Locale = ""
	LocaleEN      Locale = "en"
	LocaleBE      Locale = "be"
)

// ParseLocale folds a raw language code into a supported Locale. Unknown
// codes resolve to the default language rather than erroring so a bad query
// parameter never breaks a page.
func ParseLocale(code string) Locale {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "en":
		return LocaleEN
	case "be":
		return LocaleBE
	default:
		return LocaleDefault
	}
}

// Locales lists every supported locale, default first.
func Locales() []Locale {
	return []Locale{LocaleDefault, LocaleEN, LocaleBE}
}
