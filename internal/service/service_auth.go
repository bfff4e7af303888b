package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type authService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) AuthService {
	return &authService{adapter: serverAdapter, logger: logger}
}

func (a *authService) Register(ctx context.Context, creds models.Credentials) error {
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		return ErrCredentialsRequired
	}

	if err := a.adapter.Register(ctx, creds); err != nil {
		a.logger.Err(err).
			Str("func", "authService.Register").
			Str("username", creds.Username).
			Msg("registration rejected")
		return mapAdapterError(err)
	}

	a.logger.Info().Str("username", creds.Username).Msg("user registered")
	return nil
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (string, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		return "", ErrCredentialsRequired
	}

	resp, err := a.adapter.Login(ctx, creds)
	if err != nil {
		a.logger.Err(err).
			Str("func", "authService.Login").
			Str("username", creds.Username).
			Msg("login rejected")
		return "", mapLoginError(err)
	}

	a.logger.Info().
		Str("username", creds.Username).
		Str("user_id", resp.UserID).
		Msg("user logged in")
	return resp.Token, nil
}
