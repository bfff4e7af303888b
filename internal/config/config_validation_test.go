package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return defaultConfig().Client()
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{"defaults are valid", func(cfg *ClientConfig) {}, nil},
		{"empty address", func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = " " }, ErrInvalidAdapterConfigs},
		{"zero timeout", func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"negative timeout", func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = -time.Second }, ErrInvalidAdapterConfigs},
		{"empty dsn", func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"memory dsn", func(cfg *ClientConfig) { cfg.Storage.DB.DSN = ":memory:" }, ErrInvalidStorageConfigs},
		{"file driver without path", func(cfg *ClientConfig) {
			cfg.Storage.Driver = "file"
			cfg.Storage.File.Path = ""
		}, ErrInvalidStorageConfigs},
		{"file driver ignores dsn", func(cfg *ClientConfig) {
			cfg.Storage.Driver = "file"
			cfg.Storage.DB.DSN = ""
		}, nil},
		{"unknown driver", func(cfg *ClientConfig) { cfg.Storage.Driver = "redis" }, ErrInvalidStorageConfigs},
		{"unknown page", func(cfg *ClientConfig) { cfg.App.StartPage = "home" }, ErrInvalidAppConfigs},
		{"unknown log level", func(cfg *ClientConfig) { cfg.Log.Level = "loud" }, ErrInvalidLogConfigs},
		{"upper case log level", func(cfg *ClientConfig) { cfg.Log.Level = "DEBUG" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
