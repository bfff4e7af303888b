// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the state
// machine, the controller and the terminal UI.
//
// Keeping them in one place keeps the wording consistent between inline form
// errors, alerts and the status line.
package app

const (
	// MsgLoginFailed is shown when a login attempt fails and the server gave
	// no message of its own.
	MsgLoginFailed = "Login failed"

	// MsgRegistrationFailed is the registration counterpart of MsgLoginFailed.
	MsgRegistrationFailed = "Registration failed"

	// MsgCredentialsRequired is shown when username or password is blank.
	MsgCredentialsRequired = "Username and password are required"

	// MsgPasswordsDoNotMatch is shown when the two registration passwords
	// differ. No request is sent.
	MsgPasswordsDoNotMatch = "Passwords do not match"

	// MsgSessionNotSaved is shown when the server accepted the login but the
	// token could not be written to the local store.
	MsgSessionNotSaved = "Could not save the session"

	// MsgLoadNotesFailed is the alert for a failed list call.
	MsgLoadNotesFailed = "Could not load notes"

	// MsgTitleRequired is the alert for saving a note with a blank title.
	MsgTitleRequired = "Title is required"

	// MsgSaveNoteFailed is the alert for a failed create or update.
	MsgSaveNoteFailed = "Could not save the note"

	// MsgDeleteNoteFailed is the alert for a failed delete.
	MsgDeleteNoteFailed = "Could not delete the note"

	// MsgConfirmDelete is the confirmation prompt before deleting.
	MsgConfirmDelete = "Are you sure you want to delete this note?"

	// MsgNoNotes is rendered in place of an empty list.
	MsgNoNotes = "No notes available"

	// MsgRegistered is the status line after a successful registration.
	MsgRegistered = "Account created, please log in"

	// MsgServerUnavailable replaces raw dial and timeout errors.
	MsgServerUnavailable = "Network is down or the server is unavailable"
)
