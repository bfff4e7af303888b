package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"dario.cat/mergo"
)

// Defaults of the development notes API.
const (
	DefaultServerAddress  = "localhost:8080"
	DefaultServerTokenTTL = time.Hour
)

// ServerConfig configures the in-memory notes API started by cmd/notes-api.
type ServerConfig struct {
	// HTTPAddress is the listen address.
	// Env: NOTES_API_ADDRESS
	HTTPAddress string `env:"API_ADDRESS"`

	// TokenTTL is the lifetime of issued bearer tokens.
	// Env: NOTES_API_TOKEN_TTL
	TokenTTL Duration `env:"API_TOKEN_TTL"`

	// LogLevel is a zerolog level name.
	// Env: NOTES_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// GetServerConfig merges defaults, environment and args (without the program
// name), later sources winning.
func GetServerConfig(args []string) (*ServerConfig, error) {
	envCfg := &ServerConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagsCfg, err := parseServerFlags(args)
	if err != nil {
		return nil, err
	}

	cfg := &ServerConfig{
		HTTPAddress: DefaultServerAddress,
		TokenTTL:    Duration(DefaultServerTokenTTL),
		LogLevel:    DefaultLogLevel,
	}
	for _, src := range []*ServerConfig{envCfg, flagsCfg} {
		if err = mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseServerFlags(args []string) (*ServerConfig, error) {
	fs := flag.NewFlagSet("notes-api", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &ServerConfig{}
	fs.StringVar(&cfg.HTTPAddress, "a", "", "Listen address (host:port)")
	fs.Var(&cfg.TokenTTL, "ttl", "Token lifetime (e.g., 1h)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	return cfg, nil
}

func (cfg *ServerConfig) validate() error {
	var errs []error
	if strings.TrimSpace(cfg.HTTPAddress) == "" {
		errs = append(errs, errors.New("empty listen address"))
	}
	if cfg.TokenTTL <= 0 {
		errs = append(errs, errors.New("token ttl must be positive"))
	}
	if level := strings.ToLower(cfg.LogLevel); level != "" && !slices.Contains(logLevels, level) {
		errs = append(errs, fmt.Errorf("%w: unknown level %q", ErrInvalidLogConfigs, cfg.LogLevel))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}
	return nil
}
