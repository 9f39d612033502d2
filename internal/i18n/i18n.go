// Package i18n carries the locale content the backend itself needs: the
// localized event details used when generating calendar files. The page-facing
// dictionaries live in the frontend; only the events section is duplicated here.
package i18n

type Locale string

const (
	LocaleRO Locale = "ro"
	LocaleHU Locale = "hu"
	LocaleEN Locale = "en"
	LocaleDE Locale = "de"
	LocaleFR Locale = "fr"
)

const DefaultLocale = LocaleRO

var Locales = []Locale{LocaleRO, LocaleHU, LocaleEN, LocaleDE, LocaleFR}

type EventContent struct {
	Title       string
	Time        string
	Description string
	Location    string
	Address     string
}

type Dictionary struct {
	CalendarEventPrefix string
	SectionDate         string
	Ceremony            EventContent
	Celebration         EventContent
}

// Get returns the dictionary for loc, falling back to the default locale
// when the tag is unknown.
func Get(loc Locale) Dictionary {
	if d, ok := dictionaries[loc]; ok {
		return d
	}
	return dictionaries[DefaultLocale]
}

// Valid reports whether loc is one of the supported locale tags.
func Valid(loc Locale) bool {
	_, ok := dictionaries[loc]
	return ok
}
