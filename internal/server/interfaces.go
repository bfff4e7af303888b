package server

import "context"

// Server defines the lifecycle contract of the notes API server.
//
// Run blocks until ctx is cancelled or the listener fails, then drains
// in-flight requests before returning.
type Server interface {
	// Run starts serving requests and blocks until the server stops.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}
