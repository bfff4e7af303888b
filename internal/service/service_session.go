package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

type sessionService struct {
	store   store.KeyValueStore
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewSessionService(kv store.KeyValueStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) SessionService {
	return &sessionService{store: kv, adapter: serverAdapter, logger: logger}
}

func (s *sessionService) Restore(ctx context.Context) (bool, error) {
	token, err := s.store.Get(ctx, store.TokenKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		s.adapter.SetToken("")
		return false, nil
	}
	if err != nil {
		s.adapter.SetToken("")
		return false, fmt.Errorf("read session token: %w", err)
	}

	token = strings.TrimSpace(token)
	s.adapter.SetToken(token)
	return token != "", nil
}

func (s *sessionService) Save(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	if err := s.store.Set(ctx, store.TokenKey, token); err != nil {
		s.logger.Err(err).Str("func", "sessionService.Save").Msg("failed to persist session token")
		return fmt.Errorf("persist session token: %w", err)
	}

	s.adapter.SetToken(token)
	s.logger.Debug().Msg("session started")
	return nil
}

func (s *sessionService) Clear(ctx context.Context) error {
	s.adapter.SetToken("")

	if err := s.store.Delete(ctx, store.TokenKey); err != nil {
		s.logger.Err(err).Str("func", "sessionService.Clear").Msg("failed to remove session token")
		return fmt.Errorf("remove session token: %w", err)
	}

	s.logger.Debug().Msg("session cleared")
	return nil
}
