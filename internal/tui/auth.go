// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/flow"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldUsername = iota
	fieldPassword
	fieldConfirm
)

// authForm holds the inputs of both auth tabs. The login tab uses the
// username and password fields; registration adds the confirmation.
type authForm struct {
	login    []textinput.Model
	register []textinput.Model
	focus    int
}

func newAuthForm() authForm {
	return authForm{
		login:    []textinput.Model{newUsernameInput(), newPasswordInput("password")},
		register: []textinput.Model{newUsernameInput(), newPasswordInput("password"), newPasswordInput("repeat password")},
	}
}

func newUsernameInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "username"
	in.CharLimit = 64
	in.Width = 40
	return in
}

func newPasswordInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

func (f *authForm) inputs(tab flow.Tab) []textinput.Model {
	if tab == flow.TabRegister {
		return f.register
	}
	return f.login
}

// reset empties every field, as on a fresh page load.
func (f *authForm) reset(s flow.State) tea.Cmd {
	for _, inputs := range [][]textinput.Model{f.login, f.register} {
		for i := range inputs {
			inputs[i].SetValue("")
		}
	}
	return f.showTab(s)
}

// showTab focuses the first field of the visible tab. Field values are
// left as typed.
func (f *authForm) showTab(s flow.State) tea.Cmd {
	f.focus = fieldUsername
	return f.refocus(s.Tab)
}

// prefillLogin puts the freshly registered username into the login form and
// focuses the password.
func (f *authForm) prefillLogin(username string) tea.Cmd {
	f.login[fieldUsername].SetValue(username)
	f.login[fieldPassword].SetValue("")
	f.focus = fieldPassword
	return f.refocus(flow.TabLogin)
}

func (f *authForm) focusNext(tab flow.Tab) tea.Cmd {
	f.focus = (f.focus + 1) % len(f.inputs(tab))
	return f.refocus(tab)
}

func (f *authForm) focusPrev(tab flow.Tab) tea.Cmd {
	n := len(f.inputs(tab))
	f.focus = (f.focus - 1 + n) % n
	return f.refocus(tab)
}

func (f *authForm) refocus(tab flow.Tab) tea.Cmd {
	for _, inputs := range [][]textinput.Model{f.login, f.register} {
		for i := range inputs {
			inputs[i].Blur()
		}
	}
	inputs := f.inputs(tab)
	if f.focus >= len(inputs) {
		f.focus = 0
	}
	return inputs[f.focus].Focus()
}

// submit builds the submit event of the visible tab. Validation is left to
// the state machine.
func (f *authForm) submit(tab flow.Tab) flow.Event {
	if tab == flow.TabRegister {
		return flow.RegisterSubmitted{
			Username: f.register[fieldUsername].Value(),
			Password: f.register[fieldPassword].Value(),
			Confirm:  f.register[fieldConfirm].Value(),
		}
	}
	return flow.LoginSubmitted{
		Username: f.login[fieldUsername].Value(),
		Password: f.login[fieldPassword].Value(),
	}
}

func (f *authForm) update(tab flow.Tab, msg tea.Msg) tea.Cmd {
	inputs := f.inputs(tab)
	var cmd tea.Cmd
	inputs[f.focus], cmd = inputs[f.focus].Update(msg)
	return cmd
}

func (f *authForm) view(s flow.State, spin, status string) string {
	var b strings.Builder

	loginTab, registerTab := "Login", "Register"
	if s.Tab == flow.TabRegister {
		registerTab = activeTabStyle.Render(registerTab)
	} else {
		loginTab = activeTabStyle.Render(loginTab)
	}
	b.WriteString(loginTab + "   " + registerTab + "\n\n")

	inputs := f.inputs(s.Tab)
	b.WriteString("Username  │ [" + inputs[fieldUsername].View() + "]\n")
	b.WriteString("Password  │ [" + inputs[fieldPassword].View() + "]\n")

	action, formErr := "Sign in", s.LoginError
	if s.Tab == flow.TabRegister {
		b.WriteString("Repeat    │ [" + inputs[fieldConfirm].View() + "]\n")
		action, formErr = "Create account", s.RegisterError
	}

	if s.Submitting {
		b.WriteString("\n[" + action + "] " + spin + "\n")
	} else {
		b.WriteString("\n[" + action + "]\n")
	}
	if formErr != "" {
		b.WriteString("\n" + errorStyle.Render(formErr) + "\n")
	}
	if status != "" {
		b.WriteString("\n" + status + "\n")
	}

	return renderPage("NOTES │ SIGN IN", strings.TrimRight(b.String(), "\n"),
		"ctrl+t: login/register │ tab: next field │ enter: submit")
}
