package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_Precedence verifies defaults < file < env < flags.
func TestBuild_Precedence(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.file = &StructuredConfig{
		Adapter: Adapter{HTTPAddress: "https://file:8443", RequestTimeout: Duration(time.Second)},
		App:     App{Locale: "es"},
	}
	b.env = &StructuredConfig{Adapter: Adapter{HTTPAddress: "https://env:8443"}}
	b.flags = &StructuredConfig{App: App{StartPage: "auth"}}

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "https://env:8443", cfg.Adapter.HTTPAddress)
	assert.Equal(t, Duration(time.Second), cfg.Adapter.RequestTimeout)
	assert.Equal(t, "es", cfg.App.Locale)
	assert.Equal(t, "auth", cfg.App.StartPage)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
}

func TestWithFile_FlagPathWinsOverEnv(t *testing.T) {
	envFile := writeTempConfig(t, "env.json", `{"app":{"locale":"ru"}}`)
	flagFile := writeTempConfig(t, "flag.yaml", "app:\n  locale: es\n")

	b := newConfigBuilder()
	b.env = &StructuredConfig{ConfigFilePath: envFile}
	b.flags = &StructuredConfig{ConfigFilePath: flagFile}

	cfg, err := b.withFile().build()
	require.NoError(t, err)
	assert.Equal(t, "es", cfg.App.Locale)
}

func TestWithFile_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.flags = &StructuredConfig{ConfigFilePath: filepath.Join(t.TempDir(), "nope.json")}

	_, err := b.withFile().build()
	require.Error(t, err)
}

// ── GetClientConfig ──────────────────────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.False(t, cfg.Adapter.InsecureSkipVerify)
	assert.Equal(t, DefaultStorageDriver, cfg.Storage.Driver)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultStartPage, cfg.App.StartPage)
	assert.Equal(t, DefaultLocale, cfg.App.Locale)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestGetClientConfig_AllSources(t *testing.T) {
	file := writeTempConfig(t, "client.yml", `
adapter:
  http_address: https://file.example:8443
  request_timeout: 3s
storage:
  driver: file
  file:
    path: /tmp/session.json
log:
  level: debug
`)
	t.Setenv("NOTES_ADAPTER_INSECURE_SKIP_VERIFY", "true")
	t.Setenv("NOTES_APP_LOCALE", "ru")

	cfg, err := GetClientConfig([]string{"-c", file, "-page", "auth", "-t", "7s"})
	require.NoError(t, err)

	assert.Equal(t, "https://file.example:8443", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.True(t, cfg.Adapter.InsecureSkipVerify)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/session.json", cfg.Storage.File.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "ru", cfg.App.Locale)
	assert.Equal(t, "auth", cfg.App.StartPage)
}

func TestGetClientConfig_InvalidFlag(t *testing.T) {
	_, err := GetClientConfig([]string{"-page", "settings"})
	require.Error(t, err)
}

func TestGetClientConfig_InvalidEnv(t *testing.T) {
	t.Setenv("NOTES_ADAPTER_REQUEST_TIMEOUT", "soon")

	_, err := GetClientConfig(nil)
	require.Error(t, err)
}

func TestGetClientConfig_ValidationFails(t *testing.T) {
	t.Setenv("NOTES_STORAGE_DB_DSN", ":memory:")

	_, err := GetClientConfig(nil)
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
