package config

import "time"

// Built-in defaults.
const (
	DefaultHTTPAddress    = "https://localhost:8443"
	DefaultRequestTimeout = 15 * time.Second
	DefaultStorageDriver  = "sqlite"
	DefaultDSN            = "notes-client.db"
	DefaultSessionFile    = "notes-session.json"
	DefaultLocale         = "en"
	DefaultStartPage      = "notes"
	DefaultLogLevel       = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Locale:    DefaultLocale,
			StartPage: DefaultStartPage,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: Duration(DefaultRequestTimeout),
		},
		Storage: Storage{
			Driver: DefaultStorageDriver,
			DB:     DB{DSN: DefaultDSN},
			File:   File{Path: DefaultSessionFile},
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}
