// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flow

import "github.com/MKhiriev/go-notes-keeper/models"

// Event is an input of [Transition]: either a user action or the outcome of
// an [Effect].
type Event interface {
	event()
}

// Boot is a page load. HasToken reports whether a session token is stored.
type Boot struct {
	Page     Page
	HasToken bool
}

// TabSelected switches the auth page form.
type TabSelected struct {
	Tab Tab
}

// LoginSubmitted is a submit of the login form.
type LoginSubmitted struct {
	Username string
	Password string
}

// LoginSucceeded carries the token returned by the auth API.
type LoginSucceeded struct {
	Token string
}

// SessionStored reports that the token from [LoginSucceeded] was persisted.
type SessionStored struct{}

// SessionStoreFailed reports that the token could not be persisted.
type SessionStoreFailed struct{}

// LoginFailed carries the server message; empty means use the fallback.
type LoginFailed struct {
	Message string
}

// RegisterSubmitted is a submit of the registration form.
type RegisterSubmitted struct {
	Username string
	Password string
	Confirm  string
}

// RegisterSucceeded carries the registered username for pre-filling the
// login form.
type RegisterSucceeded struct {
	Username string
}

// RegisterFailed carries the server message; empty means use the fallback.
type RegisterFailed struct {
	Message string
}

// NotesLoaded replaces the note cache.
type NotesLoaded struct {
	Session uint64
	Notes   []models.Note
}

// NotesLoadFailed is a non-401 failure of the list call.
type NotesLoadFailed struct {
	Session uint64
}

// Unauthorized is a 401 answer to any authenticated call.
type Unauthorized struct {
	Session uint64
}

// FilterChanged is a keystroke in the search field.
type FilterChanged struct {
	Term string
}

// NewNoteRequested opens an empty editor.
type NewNoteRequested struct{}

// NoteOpened opens the editor on an existing note.
type NoteOpened struct {
	Note models.Note
}

// SaveRequested carries the raw editor input.
type SaveRequested struct {
	Title   string
	Content string
}

type SaveSucceeded struct {
	Session uint64
}

type SaveFailed struct {
	Session uint64
}

// EditorClosed hides the editor without saving.
type EditorClosed struct{}

// DeleteRequested asks for confirmation to delete the note in the editor.
type DeleteRequested struct{}

// DeleteConfirmed is the answer to the confirmation prompt.
type DeleteConfirmed struct {
	Accepted bool
}

type DeleteSucceeded struct {
	Session uint64
}

type DeleteFailed struct {
	Session uint64
}

// LogoutRequested drops the session.
type LogoutRequested struct{}

// AlertDismissed closes the alert box.
type AlertDismissed struct{}

func (Boot) event()               {}
func (TabSelected) event()        {}
func (LoginSubmitted) event()     {}
func (LoginSucceeded) event()     {}
func (SessionStored) event()      {}
func (SessionStoreFailed) event() {}
func (LoginFailed) event()        {}
func (RegisterSubmitted) event()  {}
func (RegisterSucceeded) event()  {}
func (RegisterFailed) event()     {}
func (NotesLoaded) event()        {}
func (NotesLoadFailed) event()    {}
func (Unauthorized) event()       {}
func (FilterChanged) event()      {}
func (NewNoteRequested) event()   {}
func (NoteOpened) event()         {}
func (SaveRequested) event()      {}
func (SaveSucceeded) event()      {}
func (SaveFailed) event()         {}
func (EditorClosed) event()       {}
func (DeleteRequested) event()    {}
func (DeleteConfirmed) event()    {}
func (DeleteSucceeded) event()    {}
func (DeleteFailed) event()       {}
func (LogoutRequested) event()    {}
func (AlertDismissed) event()     {}

// sessionBound is implemented by outcomes of notes requests. Session is the
// [State.Session] the request was issued in.
type sessionBound interface {
	issuedIn() uint64
}

func (e NotesLoaded) issuedIn() uint64     { return e.Session }
func (e NotesLoadFailed) issuedIn() uint64 { return e.Session }
func (e Unauthorized) issuedIn() uint64    { return e.Session }
func (e SaveSucceeded) issuedIn() uint64   { return e.Session }
func (e SaveFailed) issuedIn() uint64      { return e.Session }
func (e DeleteSucceeded) issuedIn() uint64 { return e.Session }
func (e DeleteFailed) issuedIn() uint64    { return e.Session }
