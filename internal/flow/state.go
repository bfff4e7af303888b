// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flow

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Page is one of the two top-level screens.
type Page int

const (
	// PageAuth shows the login and registration forms.
	PageAuth Page = iota
	// PageNotes shows the note list and the editor.
	PageNotes
)

func (p Page) String() string {
	switch p {
	case PageAuth:
		return "auth"
	case PageNotes:
		return "notes"
	default:
		return fmt.Sprintf("page(%d)", int(p))
	}
}

// ParsePage converts "auth" or "notes" into a [Page].
func ParsePage(s string) (Page, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auth":
		return PageAuth, nil
	case "notes", "":
		return PageNotes, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPage, s)
	}
}

// Tab selects the visible form on the auth page.
type Tab int

const (
	TabLogin Tab = iota
	TabRegister
)

func (t Tab) String() string {
	if t == TabRegister {
		return "register"
	}
	return "login"
}

// Panel is the visible panel on the notes page.
type Panel int

const (
	PanelList Panel = iota
	PanelEditor
)

// Draft is the transient editor content. An empty NoteID means the editor
// creates a new note on save.
type Draft struct {
	NoteID  string
	Title   string
	Content string
}

// IsNew reports whether saving the draft creates a note.
func (d Draft) IsNew() bool {
	return d.NoteID == ""
}

// Entry is one rendered line of the note list.
type Entry struct {
	Note models.Note
	// Date is the localized long form of Note.UpdatedAt.
	Date string
}

// State is everything the UI renders. It is a value: [Transition] never
// mutates the state it receives.
type State struct {
	Page   Page
	Locale string

	// Session counts page loads. Outcomes of requests issued under an
	// older value are dropped.
	Session uint64

	// auth page
	Tab           Tab
	LoginError    string
	RegisterError string
	LoginUsername string
	Submitting    bool

	// notes page
	Panel      Panel
	Draft      Draft
	ShowDelete bool
	Confirming bool
	Saving     bool
	Deleting   bool
	Loading    bool
	Notes      []models.Note
	Filter     string
	Visible    []Entry

	// Alert is a blocking message on the notes page, cleared by
	// [AlertDismissed].
	Alert string
}

// NewState returns the freshly loaded state of page.
func NewState(page Page, locale string) State {
	return State{
		Page:   page,
		Locale: locale,
		Tab:    TabLogin,
		Panel:  PanelList,
	}
}

// EditorOpen reports whether the editor panel is visible.
func (s State) EditorOpen() bool {
	return s.Page == PageNotes && s.Panel == PanelEditor
}

func (s State) clone() State {
	s.Notes = slices.Clone(s.Notes)
	s.Visible = slices.Clone(s.Visible)
	return s
}

// render rebuilds Visible from the cache and the current filter.
func (s *State) render() {
	matched := FilterNotes(s.Notes, s.Filter)
	visible := make([]Entry, 0, len(matched))
	for _, n := range matched {
		visible = append(visible, Entry{
			Note: n,
			Date: FormatDate(n.UpdatedAt.Local(), s.Locale),
		})
	}
	s.Visible = visible
}
