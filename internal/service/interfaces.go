// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the notes client's use cases. Services sit between
// the controller and the transport/storage layers: they translate adapter
// and store errors into the domain errors of errors.go and own the session
// lifecycle.
package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService talks to the auth endpoints.
type AuthService interface {
	// Register creates an account. It does not log in.
	Register(ctx context.Context, creds models.Credentials) error

	// Login exchanges credentials for a token. The session is not started;
	// pass the token to [SessionService.Save] for that.
	Login(ctx context.Context, creds models.Credentials) (string, error)
}

// SessionService owns the stored session token.
type SessionService interface {
	// Restore loads the stored token, if any, into the transport layer and
	// reports whether one was found.
	Restore(ctx context.Context) (bool, error)

	// Save persists token and starts using it for API calls.
	Save(ctx context.Context, token string) error

	// Clear forgets the token. The transport layer stops sending it even
	// when the store cannot be updated.
	Clear(ctx context.Context) error
}

// NotesService performs note CRUD for the signed-in user.
type NotesService interface {
	List(ctx context.Context) ([]models.Note, error)
	Create(ctx context.Context, in models.NoteInput) (models.Note, error)
	Update(ctx context.Context, id string, in models.NoteInput) (models.Note, error)
	Delete(ctx context.Context, id string) error
}
