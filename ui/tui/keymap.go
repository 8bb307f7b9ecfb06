// Copyright (c) 2026 Passforge Team
// Passforge - password generation and strength analysis
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists the bindings of both tabs.
type KeyMap struct {
	Generate key.Binding
	Copy     key.Binding
	Favorite key.Binding
	Template key.Binding
	Reveal   key.Binding
	Tab      key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Generate, km.Copy, km.Template, km.Tab, km.Help, km.Quit}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Generate, km.Copy, km.Favorite},
		{km.Template, km.Reveal, km.Tab},
		{km.Help, km.Quit},
	}
}

// analyzeKeyMap exposes only the bindings that work while typing.
type analyzeKeyMap struct{ KeyMap }

func (km analyzeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Reveal, km.Tab, km.Quit}
}

func (km analyzeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Reveal, km.Tab, km.Quit}}
}

var (
	_ help.KeyMap = KeyMap{}
	_ help.KeyMap = analyzeKeyMap{}
)

var DefaultKeyMap = KeyMap{
	Generate: key.NewBinding(
		key.WithKeys("g", "enter", " "),
		key.WithHelp("g/enter", "generate"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	Favorite: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "favorite"),
	),
	Template: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "next template"),
	),
	Reveal: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "show/hide input"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch tab"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}
