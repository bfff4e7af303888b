// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the notes API.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx answers are returned as [*ResponseError] values that unwrap to the
// sentinels in errors.go, so callers can use [errors.Is] for status handling
// (e.g. [ErrUnauthorized] for 401) and [MessageFrom] to show the server's
// message. Failures to reach the server wrap [ErrServerUnreachable].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the notes API. Implementations are
// responsible for serialisation, the Authorization header and mapping
// transport errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. An empty token disables the header.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none is set.
	Token() string

	// Register creates an account. The server answers 201 on success and
	// 409 when the username is taken.
	Register(ctx context.Context, creds models.Credentials) error

	// Login exchanges credentials for a bearer token. The token is returned,
	// not stored: the caller decides when the session starts.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// ListNotes returns every note of the authenticated user in server order.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// CreateNote stores a new note and returns the server's record.
	CreateNote(ctx context.Context, in models.NoteInput) (models.Note, error)

	// UpdateNote replaces title and content of note id.
	UpdateNote(ctx context.Context, id string, in models.NoteInput) (models.Note, error)

	// DeleteNote removes note id.
	DeleteNote(ctx context.Context, id string) error
}
