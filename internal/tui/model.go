package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/controller"
	"github.com/MKhiriev/go-notes-keeper/internal/flow"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// rootModel routes input to the page the controller is on and turns
// controller effects into commands.
type rootModel struct {
	ctx       context.Context
	ctrl      *controller.Controller
	start     flow.Page
	buildInfo models.AppBuildInfo

	auth    authForm
	notes   notesList
	editor  editorForm
	spinner spinner.Model

	booted        bool
	showBuildInfo bool
	status        string
}

func newRootModel(ctx context.Context, ctrl *controller.Controller, start flow.Page, buildInfo models.AppBuildInfo) *rootModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &rootModel{
		ctx:       ctx,
		ctrl:      ctrl,
		start:     start,
		buildInfo: buildInfo,
		auth:      newAuthForm(),
		notes:     newNotesList(),
		editor:    newEditorForm(),
		spinner:   s,
	}
}

func (m *rootModel) Init() tea.Cmd {
	ctx, ctrl, page := m.ctx, m.ctrl, m.start
	return tea.Batch(
		m.spinner.Tick,
		textinput.Blink,
		func() tea.Msg { return eventsMsg{ctrl.Load(ctx, page)} },
	)
}

func (m *rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventsMsg:
		return m, m.dispatch(msg...)

	case tea.WindowSizeMsg:
		m.editor.setWidth(msg.Width)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case copiedMsg:
		if msg.err != nil {
			m.status = "Clipboard is not available"
		} else {
			m.status = "Note copied to clipboard"
		}
		return m, clearStatusLater()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, m.updateFocused(msg)
}

// dispatch applies evs in order and schedules the effects they produce.
func (m *rootModel) dispatch(evs ...flow.Event) tea.Cmd {
	var cmds []tea.Cmd

	for _, ev := range evs {
		before := m.ctrl.State()
		effects := m.ctrl.Apply(ev)
		cmds = append(cmds, m.sync(before, ev))

		remote := make([]flow.Effect, 0, len(effects))
		for _, eff := range effects {
			if _, ok := eff.(flow.FocusTitle); ok {
				cmds = append(cmds, m.editor.focusTitle())
				continue
			}
			remote = append(remote, eff)
		}
		cmds = append(cmds, m.execute(remote))
	}

	return tea.Batch(cmds...)
}

// execute runs effects in order off the UI loop and reports their outcomes
// as one message.
func (m *rootModel) execute(effects []flow.Effect) tea.Cmd {
	if len(effects) == 0 {
		return nil
	}

	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		out := make(eventsMsg, 0, len(effects))
		for _, eff := range effects {
			if ev := ctrl.Execute(ctx, eff); ev != nil {
				out = append(out, ev)
			}
		}
		return out
	}
}

// sync brings the input widgets in line with the state after ev.
func (m *rootModel) sync(before flow.State, ev flow.Event) tea.Cmd {
	after := m.ctrl.State()

	switch ev.(type) {
	case flow.Boot:
		m.booted = true
		m.status = ""
		if after.Page == flow.PageAuth {
			return m.auth.reset(after)
		}
		m.notes.reset()
		return nil

	case flow.RegisterSucceeded:
		m.status = app.MsgRegistered
		return tea.Batch(m.auth.prefillLogin(after.LoginUsername), clearStatusLater())

	case flow.NewNoteRequested, flow.NoteOpened:
		m.editor.load(after.Draft)
		return m.editor.focusTitle()
	}

	if before.Tab != after.Tab {
		return m.auth.showTab(after)
	}
	m.notes.clamp(len(after.Visible))

	return nil
}

func (m *rootModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.forceQuit) {
		return tea.Quit
	}
	if key.Matches(msg, keys.version) {
		m.showBuildInfo = !m.showBuildInfo
		return nil
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.enter) {
			m.showBuildInfo = false
		}
		return nil
	}
	if !m.booted {
		return nil
	}

	s := m.ctrl.State()
	if s.Page == flow.PageAuth {
		return m.authKey(msg, s)
	}
	return m.notesKey(msg, s)
}

func (m *rootModel) authKey(msg tea.KeyMsg, s flow.State) tea.Cmd {
	switch {
	case key.Matches(msg, keys.switchTab):
		next := flow.TabRegister
		if s.Tab == flow.TabRegister {
			next = flow.TabLogin
		}
		return m.dispatch(flow.TabSelected{Tab: next})
	case key.Matches(msg, keys.tab):
		return m.auth.focusNext(s.Tab)
	case key.Matches(msg, keys.backtab):
		return m.auth.focusPrev(s.Tab)
	case key.Matches(msg, keys.enter):
		return m.dispatch(m.auth.submit(s.Tab))
	}

	return m.auth.update(s.Tab, msg)
}

func (m *rootModel) notesKey(msg tea.KeyMsg, s flow.State) tea.Cmd {
	switch {
	case s.Alert != "":
		if key.Matches(msg, keys.esc, keys.enter) {
			return m.dispatch(flow.AlertDismissed{})
		}
		return nil

	case s.Confirming:
		switch {
		case key.Matches(msg, keys.yes):
			return m.dispatch(flow.DeleteConfirmed{Accepted: true})
		case key.Matches(msg, keys.no):
			return m.dispatch(flow.DeleteConfirmed{Accepted: false})
		}
		return nil

	case s.EditorOpen():
		return m.editorKey(msg, s)
	}

	return m.listKey(msg, s)
}

func (m *rootModel) editorKey(msg tea.KeyMsg, s flow.State) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		return m.dispatch(flow.EditorClosed{})
	case key.Matches(msg, keys.save):
		return m.dispatch(flow.SaveRequested{Title: m.editor.title.Value(), Content: m.editor.content.Value()})
	case key.Matches(msg, keys.delete):
		if s.ShowDelete {
			return m.dispatch(flow.DeleteRequested{})
		}
		return nil
	case key.Matches(msg, keys.copy):
		return copyToClipboard(m.editor.content.Value())
	case key.Matches(msg, keys.tab, keys.backtab):
		return m.editor.toggleFocus()
	}

	return m.editor.update(msg)
}

func (m *rootModel) listKey(msg tea.KeyMsg, s flow.State) tea.Cmd {
	if m.notes.searching() {
		switch {
		case key.Matches(msg, keys.esc, keys.enter):
			m.notes.blurSearch()
			return nil
		case msg.Type == tea.KeyUp || msg.Type == tea.KeyDown:
			m.notes.move(msg.Type == tea.KeyDown, len(s.Visible))
			return nil
		}

		cmd := m.notes.updateSearch(msg)
		if term := m.notes.search.Value(); term != s.Filter {
			return tea.Batch(cmd, m.dispatch(flow.FilterChanged{Term: term}))
		}
		return cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return tea.Quit
	case key.Matches(msg, keys.search):
		return m.notes.focusSearch()
	case key.Matches(msg, keys.up):
		m.notes.move(false, len(s.Visible))
	case key.Matches(msg, keys.down):
		m.notes.move(true, len(s.Visible))
	case key.Matches(msg, keys.enter):
		if entry, ok := m.notes.selected(s.Visible); ok {
			return m.dispatch(flow.NoteOpened{Note: entry.Note})
		}
	case key.Matches(msg, keys.newNote):
		return m.dispatch(flow.NewNoteRequested{})
	case key.Matches(msg, keys.logout):
		return m.dispatch(flow.LogoutRequested{})
	}

	return nil
}

// updateFocused forwards non-key messages such as cursor blinks.
func (m *rootModel) updateFocused(msg tea.Msg) tea.Cmd {
	s := m.ctrl.State()
	switch {
	case s.Page == flow.PageAuth:
		return m.auth.update(s.Tab, msg)
	case s.EditorOpen():
		return m.editor.update(msg)
	case m.notes.searching():
		return m.notes.updateSearch(msg)
	}
	return nil
}

func (m *rootModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}
	if !m.booted {
		return renderPage("NOTES", m.spinner.View()+" Loading...", "")
	}

	s := m.ctrl.State()
	if s.Page == flow.PageAuth {
		return m.auth.view(s, m.spinner.View(), m.status)
	}

	switch {
	case s.Alert != "":
		return renderAlert(s.Alert)
	case s.Confirming:
		return renderConfirm(s.Draft.Title)
	case s.EditorOpen():
		return m.editor.view(s, m.spinner.View(), m.status)
	}
	return m.notes.view(s, m.spinner.View(), m.status)
}

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
