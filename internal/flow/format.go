package flow

import (
	"fmt"
	"strings"
	"time"
)

// DefaultLocale is used when the configured locale is empty or unknown.
const DefaultLocale = "en"

var (
	spanishMonths = [12]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	}
	// genitive forms, as used after a day number
	russianMonths = [12]string{
		"января", "февраля", "марта", "апреля", "мая", "июня",
		"июля", "августа", "сентября", "октября", "ноября", "декабря",
	}
)

// FormatDate renders t as a long-form date with hours and minutes in the
// given locale ("en", "es", "ru"; region suffixes such as "es-ES" are
// accepted). The zero time renders as "".
func FormatDate(t time.Time, locale string) string {
	if t.IsZero() {
		return ""
	}

	switch baseLanguage(locale) {
	case "es":
		return fmt.Sprintf("%d de %s de %d, %02d:%02d",
			t.Day(), spanishMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
	case "ru":
		return fmt.Sprintf("%d %s %d г., %02d:%02d",
			t.Day(), russianMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
	default:
		return fmt.Sprintf("%s %d, %d, %02d:%02d",
			t.Month(), t.Day(), t.Year(), t.Hour(), t.Minute())
	}
}

// SupportedLocale reports whether FormatDate has a dedicated layout for locale.
func SupportedLocale(locale string) bool {
	switch baseLanguage(locale) {
	case "en", "es", "ru":
		return true
	}
	return false
}

func baseLanguage(locale string) string {
	l := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(l, "-_"); i >= 0 {
		l = l[:i]
	}
	if l == "" {
		return DefaultLocale
	}
	return l
}
