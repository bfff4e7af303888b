package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	switchTab key.Binding
	search    key.Binding
	logout    key.Binding
	newNote   key.Binding
	save      key.Binding
	delete    key.Binding
	copy      key.Binding
	version   key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	switchTab: key.NewBinding(key.WithKeys("ctrl+t")),
	search:    key.NewBinding(key.WithKeys("/")),
	logout:    key.NewBinding(key.WithKeys("l")),
	newNote:   key.NewBinding(key.WithKeys("n")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	delete:    key.NewBinding(key.WithKeys("ctrl+d")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	version:   key.NewBinding(key.WithKeys("f1")),
	yes:       key.NewBinding(key.WithKeys("y", "enter")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
