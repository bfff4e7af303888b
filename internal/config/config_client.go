package config

import (
	"fmt"
	"time"
)

// ClientApp holds presentation settings.
type ClientApp struct {
	// Locale selects the note date format.
	Locale string
	// StartPage is "auth" or "notes".
	StartPage string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the notes API base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for every outbound request.
	RequestTimeout time.Duration
	// InsecureSkipVerify disables server certificate checks.
	InsecureSkipVerify bool
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database path.
	DSN string
}

// ClientFile contains the JSON file store settings.
type ClientFile struct {
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Driver is "sqlite" or "file".
	Driver string
	// DB holds local database settings.
	DB ClientDB
	// File holds JSON file settings.
	File ClientFile
}

// ClientLog holds the log file settings.
type ClientLog struct {
	Path  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains presentation settings.
	App ClientApp
	// Adapter contains the notes API address and transport settings.
	Adapter ClientAdapter
	// Storage contains session store settings.
	Storage ClientStorage
	// Log contains log file settings.
	Log ClientLog
}

// GetClientConfig builds and validates the client config from defaults, the
// config file, environment and args (without the program name).
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.Client()
	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

// Client maps the merged structured config onto the client view.
func (cfg *StructuredConfig) Client() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Locale:    cfg.App.Locale,
			StartPage: cfg.App.StartPage,
		},
		Adapter: ClientAdapter{
			HTTPAddress:        cfg.Adapter.HTTPAddress,
			RequestTimeout:     time.Duration(cfg.Adapter.RequestTimeout),
			InsecureSkipVerify: cfg.Adapter.InsecureSkipVerify,
		},
		Storage: ClientStorage{
			Driver: cfg.Storage.Driver,
			DB:     ClientDB{DSN: cfg.Storage.DB.DSN},
			File:   ClientFile{Path: cfg.Storage.File.Path},
		},
		Log: ClientLog{
			Path:  cfg.Log.Path,
			Level: cfg.Log.Level,
		},
	}
}
