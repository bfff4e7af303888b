package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/flow"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	editorWidth  = 60
	editorHeight = 10
)

type editorForm struct {
	title   textinput.Model
	content textarea.Model
}

func newEditorForm() editorForm {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200
	title.Width = editorWidth

	content := textarea.New()
	content.Placeholder = "write your note..."
	content.ShowLineNumbers = false
	content.CharLimit = 0
	content.SetWidth(editorWidth)
	content.SetHeight(editorHeight)

	return editorForm{title: title, content: content}
}

func (e *editorForm) setWidth(w int) {
	w -= 8
	if w > editorWidth {
		w = editorWidth
	}
	if w < 20 {
		w = 20
	}
	e.title.Width = w
	e.content.SetWidth(w)
}

func (e *editorForm) load(d flow.Draft) {
	e.title.SetValue(d.Title)
	e.content.SetValue(d.Content)
}

func (e *editorForm) focusTitle() tea.Cmd {
	e.content.Blur()
	return e.title.Focus()
}

func (e *editorForm) toggleFocus() tea.Cmd {
	if e.title.Focused() {
		e.title.Blur()
		return e.content.Focus()
	}
	return e.focusTitle()
}

func (e *editorForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if e.content.Focused() {
		e.content, cmd = e.content.Update(msg)
		return cmd
	}
	e.title, cmd = e.title.Update(msg)
	return cmd
}

func (e *editorForm) view(s flow.State, spin, status string) string {
	var b strings.Builder

	b.WriteString("Title\n")
	b.WriteString(e.title.View())
	b.WriteString("\n\nContent\n")
	b.WriteString(e.content.View())
	b.WriteString("\n")

	if s.Saving {
		b.WriteString("\n" + spin + " Saving...\n")
	}
	if status != "" {
		b.WriteString("\n" + status + "\n")
	}

	heading := "NOTES │ NEW NOTE"
	if !s.Draft.IsNew() {
		heading = "NOTES │ EDIT NOTE"
	}
	hotKeys := "ctrl+s: save │ esc: close │ tab: next field │ ctrl+y: copy"
	if s.ShowDelete {
		hotKeys += " │ ctrl+d: delete"
	}

	return renderPage(heading, strings.TrimRight(b.String(), "\n"), hotKeys)
}
