package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	quit      key.Binding
	forceQuit key.Binding
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	search    key.Binding
	expand    key.Binding
	reset     key.Binding
	info      key.Binding
	theme     key.Binding
	save      key.Binding
	copyDraft key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("ctrl+d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	search:    key.NewBinding(key.WithKeys("/")),
	expand:    key.NewBinding(key.WithKeys(" ", "space")),
	reset:     key.NewBinding(key.WithKeys("R")),
	info:      key.NewBinding(key.WithKeys("v")),
	theme:     key.NewBinding(key.WithKeys("t")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	copyDraft: key.NewBinding(key.WithKeys("ctrl+y")),
	yes:       key.NewBinding(key.WithKeys("y", "Y")),
	no:        key.NewBinding(key.WithKeys("n", "N", "esc")),
}
