package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestCloseStorages_LogsCloseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	log, err := logger.NewClientLogger("notes-client", path, "info")
	require.NoError(t, err)

	closeStorages(closerFunc(func() error { return errors.New("database is locked") }), log)
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "failed to close storages")
	assert.Contains(t, string(data), "database is locked")
}

func TestCloseStorages_QuietOnSuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	log, err := logger.NewClientLogger("notes-client", path, "info")
	require.NoError(t, err)

	closed := false
	closeStorages(closerFunc(func() error { closed = true; return nil }), log)
	require.NoError(t, log.Close())

	assert.True(t, closed)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "failed to close storages")
}
