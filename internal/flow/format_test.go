package flow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	at := time.Date(2024, time.March, 6, 8, 5, 0, 0, time.UTC)

	tests := []struct {
		locale string
		want   string
	}{
		{locale: "en", want: "March 6, 2024, 08:05"},
		{locale: "", want: "March 6, 2024, 08:05"},
		{locale: "es-ES", want: "6 de marzo de 2024, 08:05"},
		{locale: "ru_RU", want: "6 марта 2024 г., 08:05"},
		{locale: "de", want: "March 6, 2024, 08:05"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(at, tt.locale))
		})
	}
}

func TestFormatDate_ZeroTime(t *testing.T) {
	assert.Empty(t, FormatDate(time.Time{}, "en"))
}

func TestSupportedLocale(t *testing.T) {
	assert.True(t, SupportedLocale("es-ES"))
	assert.True(t, SupportedLocale(""))
	assert.False(t, SupportedLocale("fr"))
}
