package utils

import (
	"crypto/tls"

	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient().WithRequestID(utils.NewUUIDGenerator())
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// IDGenerator produces unique request identifiers.
type IDGenerator interface {
	Generate() string
}

// WithRequestID registers a hook that stamps every outgoing request with a
// fresh [RequestIDHeader] value unless the caller already set one.
func (c *HTTPClient) WithRequestID(gen IDGenerator) *HTTPClient {
	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) == "" {
			r.SetHeader(RequestIDHeader, gen.Generate())
		}
		return nil
	})
	return c
}

// WithInsecureTLS disables server certificate verification when skip is
// true. Used against development servers with self-signed certificates.
func (c *HTTPClient) WithInsecureTLS(skip bool) *HTTPClient {
	if skip {
		c.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec
	}
	return c
}
