package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
)

// choice is a string flag restricted to a fixed set of values.
// It implements the flag.Value interface.
type choice struct {
	allowed []string
	value   string
}

func newChoice(allowed ...string) *choice {
	return &choice{allowed: allowed}
}

func (c *choice) String() string {
	if c == nil {
		return ""
	}
	return c.value
}

func (c *choice) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(c.allowed, s) {
		return fmt.Errorf("must be one of %s", strings.Join(c.allowed, ", "))
	}
	c.value = s
	return nil
}

// ParseFlags parses the client command line. args excludes the program name.
//
// Flags:
//
//	-a notes API base URL (e.g. https://localhost:8443)
//	-t request timeout (e.g. "15s")
//	-k skip TLS certificate verification
//	-d SQLite database path
//	-s storage driver: sqlite or file
//	-session-file JSON session file path (file driver)
//	-log-file log file path
//	-log-level log level
//	-locale date locale (en, es, ru)
//	-page start page: auth or notes
//	-c/-config JSON or YAML config file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("notes-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		address     string
		timeout     Duration
		insecure    bool
		dsn         string
		sessionFile string
		logFile     string
		logLevel    string
		locale      string
		configPath  string
	)
	driver := newChoice("sqlite", "file")
	page := newChoice("auth", "notes")

	fs.StringVar(&address, "a", "", "Notes API base URL")
	fs.Var(&timeout, "t", "Request timeout (e.g., 15s)")
	fs.BoolVar(&insecure, "k", false, "Skip TLS certificate verification")
	fs.StringVar(&dsn, "d", "", "SQLite database path")
	fs.Var(driver, "s", "Storage driver: sqlite or file")
	fs.StringVar(&sessionFile, "session-file", "", "JSON session file path")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&locale, "locale", "", "Date locale (en, es, ru)")
	fs.Var(page, "page", "Start page: auth or notes")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Locale:    locale,
			StartPage: page.value,
		},
		Adapter: Adapter{
			HTTPAddress:        address,
			RequestTimeout:     timeout,
			InsecureSkipVerify: insecure,
		},
		Storage: Storage{
			Driver: driver.value,
			DB:     DB{DSN: dsn},
			File:   File{Path: sessionFile},
		},
		Log: Log{
			Path:  logFile,
			Level: logLevel,
		},
		ConfigFilePath: configPath,
	}, nil
}
