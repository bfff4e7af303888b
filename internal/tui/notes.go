package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/flow"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const listTitleWidth = 40

type notesList struct {
	search textinput.Model
	cursor int
}

func newNotesList() notesList {
	search := textinput.New()
	search.Placeholder = "search notes"
	search.Prompt = "/ "
	search.Width = 40
	return notesList{search: search}
}

func (l *notesList) reset() {
	l.search.SetValue("")
	l.search.Blur()
	l.cursor = 0
}

func (l *notesList) searching() bool {
	return l.search.Focused()
}

func (l *notesList) focusSearch() tea.Cmd {
	return l.search.Focus()
}

func (l *notesList) blurSearch() {
	l.search.Blur()
}

func (l *notesList) updateSearch(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.search, cmd = l.search.Update(msg)
	return cmd
}

func (l *notesList) move(down bool, n int) {
	if down {
		l.cursor++
	} else {
		l.cursor--
	}
	l.clamp(n)
}

func (l *notesList) clamp(n int) {
	if l.cursor >= n {
		l.cursor = n - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

func (l *notesList) selected(visible []flow.Entry) (flow.Entry, bool) {
	if l.cursor < 0 || l.cursor >= len(visible) {
		return flow.Entry{}, false
	}
	return visible[l.cursor], true
}

func (l *notesList) view(s flow.State, spin, status string) string {
	var b strings.Builder

	b.WriteString(l.search.View())
	b.WriteString("\n\n")

	switch {
	case s.Loading && len(s.Notes) == 0:
		b.WriteString(spin + " Loading...\n")
	case len(s.Visible) == 0:
		b.WriteString(app.MsgNoNotes + "\n")
	default:
		for i, entry := range s.Visible {
			line := fmt.Sprintf("%-*s  %s", listTitleWidth, fitText(entry.Note.Title, listTitleWidth), dateStyle.Render(entry.Date))
			if i == l.cursor {
				b.WriteString(cursorStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
			if preview := firstLine(entry.Note.Content); preview != "" {
				b.WriteString("    " + helpStyle.Render(fitText(preview, listTitleWidth+20)) + "\n")
			}
		}
		if s.Loading {
			b.WriteString("\n" + spin + " Refreshing...\n")
		}
	}

	if status != "" {
		b.WriteString("\n" + status + "\n")
	}

	return renderPage("NOTES", strings.TrimRight(b.String(), "\n"),
		"n: new │ enter: open │ /: search │ l: log out │ q: quit")
}
