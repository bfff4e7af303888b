// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging defaults, a config
// file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//   - json/yaml — keys used in the config file.
type StructuredConfig struct {
	// App holds presentation settings.
	App App `envPrefix:"APP_" json:"app" yaml:"app"`

	// Adapter holds the notes API address and transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_" json:"adapter" yaml:"adapter"`

	// Storage holds the local session store settings.
	Storage Storage `envPrefix:"STORAGE_" json:"storage" yaml:"storage"`

	// Log holds the log file settings.
	Log Log `envPrefix:"LOG_" json:"log" yaml:"log"`

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Populated via NOTES_CONFIG or the -c / -config flag; never read from
	// the file itself.
	ConfigFilePath string `env:"CONFIG" json:"-" yaml:"-"`
}

// App holds presentation settings.
type App struct {
	// Locale selects the date format of the note list ("en", "es", "ru",
	// region suffixes allowed).
	// Env: NOTES_APP_LOCALE
	Locale string `env:"LOCALE" json:"locale" yaml:"locale"`

	// StartPage is the page opened first: "auth" or "notes".
	// Env: NOTES_APP_START_PAGE
	StartPage string `env:"START_PAGE" json:"start_page" yaml:"start_page"`
}

// Adapter holds the notes API connection settings.
type Adapter struct {
	// HTTPAddress is the base URL of the notes API
	// (e.g. "https://localhost:8443"). A missing scheme means https.
	// Env: NOTES_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" json:"http_address" yaml:"http_address"`

	// RequestTimeout bounds every API call (e.g. "15s").
	// Env: NOTES_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout Duration `env:"REQUEST_TIMEOUT" json:"request_timeout" yaml:"request_timeout"`

	// InsecureSkipVerify accepts self-signed server certificates.
	// Env: NOTES_ADAPTER_INSECURE_SKIP_VERIFY
	InsecureSkipVerify bool `env:"INSECURE_SKIP_VERIFY" json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
}

// Storage groups the local store settings.
type Storage struct {
	// Driver is "sqlite" or "file".
	// Env: NOTES_STORAGE_DRIVER
	Driver string `env:"DRIVER" json:"driver" yaml:"driver"`

	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_" json:"db" yaml:"db"`

	// File holds the JSON file store settings.
	File File `envPrefix:"FILE_" json:"file" yaml:"file"`
}

// DB holds connection settings for the SQLite store.
type DB struct {
	// DSN is the SQLite database path.
	// Env: NOTES_STORAGE_DB_DSN
	DSN string `env:"DSN" json:"dsn" yaml:"dsn"`
}

// File holds settings for the JSON file store.
type File struct {
	// Path of the JSON document.
	// Env: NOTES_STORAGE_FILE_PATH
	Path string `env:"PATH" json:"path" yaml:"path"`
}

// Log holds the client log settings.
type Log struct {
	// Path of the log file. Empty means logs/notes-client.log next to the
	// executable.
	// Env: NOTES_LOG_PATH
	Path string `env:"PATH" json:"path" yaml:"path"`

	// Level is a zerolog level name.
	// Env: NOTES_LOG_LEVEL
	Level string `env:"LEVEL" json:"level" yaml:"level"`
}

// Duration is a time.Duration that decodes from "1h30m"-style strings in
// JSON and YAML, and from numbers of nanoseconds in JSON.
type Duration time.Duration

// GetStructuredConfig loads and merges the configuration from all sources.
// args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
