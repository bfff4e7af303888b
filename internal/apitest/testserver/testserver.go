// Package testserver runs an [apitest.API] behind an httptest listener.
package testserver

import (
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/apitest"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// New starts an [apitest.API] on a local listener that is closed when tb ends.
func New(tb testing.TB, logger *logger.Logger, opts ...apitest.Option) (*apitest.API, *httptest.Server) {
	tb.Helper()

	a := apitest.New(logger, opts...)
	srv := httptest.NewServer(a)
	tb.Cleanup(srv.Close)

	return a, srv
}
