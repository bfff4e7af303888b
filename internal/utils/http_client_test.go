package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticID string

func (s staticID) Generate() string { return string(s) }

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestHTTPClient_WithRequestID(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get(RequestIDHeader))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient().WithRequestID(staticID("req-1"))
	client.SetBaseURL(srv.URL)

	_, err := client.R().Get("/")
	require.NoError(t, err)
	_, err = client.R().SetHeader(RequestIDHeader, "caller-set").Get("/")
	require.NoError(t, err)

	assert.Equal(t, []string{"req-1", "caller-set"}, got)
}

func TestHTTPClient_WithInsecureTLS(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := NewHTTPClient().R().Get(srv.URL)
	require.Error(t, err, "self-signed certificate must be rejected by default")

	resp, err := NewHTTPClient().WithInsecureTLS(true).R().Get(srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}
