// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flow

import "github.com/MKhiriev/go-notes-keeper/models"

// Effect is work the runtime performs after a transition. Effects returned
// by one transition must run in order.
type Effect interface {
	effect()
}

// StoreToken persists the session token.
type StoreToken struct {
	Token string
}

// ClearToken removes the session token.
type ClearToken struct{}

// Navigate loads Page. The runtime answers with a [Boot] event.
type Navigate struct {
	Page Page
}

// RequestLogin calls the login endpoint.
type RequestLogin struct {
	Credentials models.Credentials
}

// RequestRegister calls the registration endpoint.
type RequestRegister struct {
	Credentials models.Credentials
}

// LoadNotes fetches the full note collection. Session, here and in the
// other notes effects, must be copied into the outcome event.
type LoadNotes struct {
	Session uint64
}

// CreateNote posts a new note.
type CreateNote struct {
	Session uint64
	Input   models.NoteInput
}

// UpdateNote replaces title and content of note ID.
type UpdateNote struct {
	Session uint64
	ID      string
	Input   models.NoteInput
}

// DeleteNote removes note ID.
type DeleteNote struct {
	Session uint64
	ID      string
}

// FocusTitle moves input focus to the editor title field.
type FocusTitle struct{}

func (StoreToken) effect()      {}
func (ClearToken) effect()      {}
func (Navigate) effect()        {}
func (RequestLogin) effect()    {}
func (RequestRegister) effect() {}
func (LoadNotes) effect()       {}
func (CreateNote) effect()      {}
func (UpdateNote) effect()      {}
func (DeleteNote) effect()      {}
func (FocusTitle) effect()      {}
