package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Field names accepted by [NotesValidator].
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldTitle    = "title"
)

// MaxTitleLength is the longest title, in runes, the API stores.
const MaxTitleLength = 256

// NotesValidator validates [models.Credentials] and [models.NoteInput].
type NotesValidator struct{}

func NewNotesValidator() Validator {
	return &NotesValidator{}
}

func (v *NotesValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.NoteInput:
		return v.validateNoteInput(value, fields...)
	case *models.NoteInput:
		return v.validateNoteInput(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NotesValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(creds.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NotesValidator) validateNoteInput(in models.NoteInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			title := strings.TrimSpace(in.Title)
			if title == "" {
				return ErrEmptyTitle
			}
			if utf8.RuneCountInString(title) > MaxTitleLength {
				return ErrTitleTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
