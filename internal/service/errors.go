package service

import "errors"

var (
	// ErrSessionExpired is a 401 answer to an authenticated call.
	ErrSessionExpired = errors.New("session expired")
	// ErrInvalidCredentials is a rejected login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserAlreadyExists is a registration with a taken username.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrNoteNotFound is an update or delete of a missing note.
	ErrNoteNotFound = errors.New("note not found")
	// ErrServerUnavailable means the API could not be reached.
	ErrServerUnavailable = errors.New("server unavailable")

	ErrCredentialsRequired = errors.New("username and password are required")
	ErrTitleRequired       = errors.New("note title is required")
	ErrEmptyToken          = errors.New("empty session token")
	ErrNoteIDRequired      = errors.New("note id is required")
)
