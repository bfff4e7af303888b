package testserver

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ServesOverHTTP(t *testing.T) {
	_, srv := New(t, logger.Nop())

	resp, err := http.Get(srv.URL + "/api/notes")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
