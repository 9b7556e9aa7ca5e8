package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	search    key.Binding
	nearby    key.Binding
	bookmarks key.Binding
	all       key.Binding
	bookmark  key.Binding
	rate      key.Binding
	copy      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("l")),
	search:    key.NewBinding(key.WithKeys("/")),
	nearby:    key.NewBinding(key.WithKeys("n")),
	bookmarks: key.NewBinding(key.WithKeys("b")),
	all:       key.NewBinding(key.WithKeys("a")),
	bookmark:  key.NewBinding(key.WithKeys("b")),
	rate:      key.NewBinding(key.WithKeys("s")),
	copy:      key.NewBinding(key.WithKeys("c")),
}
