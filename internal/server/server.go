package server

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	address    string
	ready      chan net.Addr
	logger     *logger.Logger
}

// NewServer returns a Server that exposes handler on address.
func NewServer(handler http.Handler, address string, logger *logger.Logger) (Server, error) {
	if handler == nil {
		return nil, errNoHandler
	}
	logger.Info().Str("address", address).Msg("creating notes api server...")

	return &server{
		httpServer: newHTTPServer(handler, address, logger),
		address:    address,
		ready:      make(chan net.Addr, 1),
		logger:     logger,
	}, nil
}

func (s *server) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.address, err)
	}
	s.ready <- l.Addr()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", l.Addr().String()).Msg("launching HTTP server")
		errCh <- s.httpServer.serve(l)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err = s.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return <-errCh
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.shutdown(ctx)
}
