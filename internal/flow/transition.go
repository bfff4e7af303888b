// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flow

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// Transition applies ev to s and returns the next state and the effects to
// run, in order. Events that do not belong to the current page (for example
// a late network answer after navigation) leave the state unchanged, and so
// do outcomes of requests issued before the last [Boot].
func Transition(s State, ev Event) (State, []Effect) {
	next := s.clone()

	switch ev := ev.(type) {
	case Boot:
		return boot(next, ev)
	case LogoutRequested:
		next.Page = PageAuth
		return next, []Effect{ClearToken{}, Navigate{Page: PageAuth}}
	}

	switch next.Page {
	case PageAuth:
		return authTransition(next, ev)
	case PageNotes:
		return notesTransition(next, ev)
	}

	return next, nil
}

func boot(s State, ev Boot) (State, []Effect) {
	next := NewState(ev.Page, s.Locale)
	next.Session = s.Session + 1

	switch ev.Page {
	case PageAuth:
		if ev.HasToken {
			next.Page = PageNotes
			return next, []Effect{Navigate{Page: PageNotes}}
		}
	case PageNotes:
		if !ev.HasToken {
			next.Page = PageAuth
			return next, []Effect{Navigate{Page: PageAuth}}
		}
		next.Loading = true
		return next, []Effect{LoadNotes{Session: next.Session}}
	}

	return next, nil
}

func authTransition(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case TabSelected:
		s.Tab = ev.Tab

	case LoginSubmitted:
		if s.Submitting {
			return s, nil
		}
		s.LoginError = ""
		username := strings.TrimSpace(ev.Username)
		if username == "" || ev.Password == "" {
			s.LoginError = app.MsgCredentialsRequired
			return s, nil
		}
		s.Submitting = true
		return s, []Effect{RequestLogin{Credentials: models.Credentials{
			Username: username,
			Password: ev.Password,
		}}}

	case LoginSucceeded:
		token := strings.TrimSpace(ev.Token)
		if token == "" {
			s.Submitting = false
			s.LoginError = app.MsgLoginFailed
			return s, nil
		}
		return s, []Effect{StoreToken{Token: token}}

	case SessionStored:
		s.Submitting = false
		s.Page = PageNotes
		return s, []Effect{Navigate{Page: PageNotes}}

	case SessionStoreFailed:
		s.Submitting = false
		s.LoginError = app.MsgSessionNotSaved

	case LoginFailed:
		s.Submitting = false
		s.LoginError = messageOr(ev.Message, app.MsgLoginFailed)

	case RegisterSubmitted:
		if s.Submitting {
			return s, nil
		}
		s.RegisterError = ""
		username := strings.TrimSpace(ev.Username)
		if username == "" || ev.Password == "" {
			s.RegisterError = app.MsgCredentialsRequired
			return s, nil
		}
		if ev.Password != ev.Confirm {
			s.RegisterError = app.MsgPasswordsDoNotMatch
			return s, nil
		}
		s.Submitting = true
		return s, []Effect{RequestRegister{Credentials: models.Credentials{
			Username: username,
			Password: ev.Password,
		}}}

	case RegisterSucceeded:
		s.Submitting = false
		s.RegisterError = ""
		s.LoginError = ""
		s.Tab = TabLogin
		s.LoginUsername = ev.Username

	case RegisterFailed:
		s.Submitting = false
		s.RegisterError = messageOr(ev.Message, app.MsgRegistrationFailed)
	}

	return s, nil
}

func notesTransition(s State, ev Event) (State, []Effect) {
	if res, ok := ev.(sessionBound); ok && res.issuedIn() != s.Session {
		return s, nil
	}

	switch ev := ev.(type) {
	case NotesLoaded:
		s.Loading = false
		s.Notes = slices.Clone(ev.Notes)
		s.render()

	case NotesLoadFailed:
		s.Loading = false
		s.Alert = app.MsgLoadNotesFailed

	case Unauthorized:
		s.Page = PageAuth
		return s, []Effect{ClearToken{}, Navigate{Page: PageAuth}}

	case FilterChanged:
		s.Filter = ev.Term
		s.render()

	case NewNoteRequested:
		s.Draft = Draft{}
		s.ShowDelete = false
		s.Confirming = false
		s.Panel = PanelEditor
		return s, []Effect{FocusTitle{}}

	case NoteOpened:
		s.Draft = Draft{
			NoteID:  ev.Note.ID,
			Title:   ev.Note.Title,
			Content: ev.Note.Content,
		}
		s.ShowDelete = true
		s.Confirming = false
		s.Panel = PanelEditor

	case SaveRequested:
		if s.Panel != PanelEditor || s.Saving || s.Deleting {
			return s, nil
		}
		s.Draft.Title = ev.Title
		s.Draft.Content = ev.Content

		input := models.NoteInput{
			Title:   strings.TrimSpace(ev.Title),
			Content: strings.TrimSpace(ev.Content),
		}
		if input.Title == "" {
			s.Alert = app.MsgTitleRequired
			return s, nil
		}

		s.Saving = true
		if s.Draft.IsNew() {
			return s, []Effect{CreateNote{Session: s.Session, Input: input}}
		}
		return s, []Effect{UpdateNote{Session: s.Session, ID: s.Draft.NoteID, Input: input}}

	case SaveSucceeded:
		s.Saving = false
		s.Panel = PanelList
		s.Loading = true
		return s, []Effect{LoadNotes{Session: s.Session}}

	case SaveFailed:
		s.Saving = false
		s.Alert = app.MsgSaveNoteFailed

	case EditorClosed:
		s.Panel = PanelList
		s.Confirming = false

	case DeleteRequested:
		if s.Panel != PanelEditor || s.Draft.IsNew() || s.Saving || s.Deleting {
			return s, nil
		}
		s.Confirming = true

	case DeleteConfirmed:
		if !s.Confirming || s.Deleting {
			return s, nil
		}
		s.Confirming = false
		if !ev.Accepted {
			return s, nil
		}
		s.Deleting = true
		return s, []Effect{DeleteNote{Session: s.Session, ID: s.Draft.NoteID}}

	case DeleteSucceeded:
		s.Deleting = false
		s.Panel = PanelList
		s.Loading = true
		return s, []Effect{LoadNotes{Session: s.Session}}

	case DeleteFailed:
		s.Deleting = false
		s.Alert = app.MsgDeleteNoteFailed

	case AlertDismissed:
		s.Alert = ""
	}

	return s, nil
}

func messageOr(msg, fallback string) string {
	if strings.TrimSpace(msg) == "" {
		return fallback
	}
	return msg
}
