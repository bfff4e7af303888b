// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain so the server
// message remains reachable through [UserMessage].
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNoteNotFound, err)
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrUserAlreadyExists, err)
	case errors.Is(err, adapter.ErrServerUnreachable):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}

// mapLoginError is mapAdapterError for the login call, where 401 and 400
// mean bad credentials rather than an expired session.
func mapLoginError(err error) error {
	if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrBadRequest) {
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	return mapAdapterError(err)
}

// UserMessage returns the text to show for err: the server's own message
// when it sent one, a fixed text when the server was unreachable, and ""
// otherwise so the caller can use its fallback.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := adapter.MessageFrom(err); msg != "" {
		return msg
	}
	if errors.Is(err, ErrServerUnavailable) {
		return app.MsgServerUnavailable
	}
	return ""
}
