// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rosterui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the staffdesk TUI.
type KeyMap struct {
	// List navigation (active when the list pane has focus).
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Focus switching between the list and form panes.
	FocusToggle key.Binding

	// List actions.
	Edit    key.Binding // Load the selected employee into the form.
	Delete  key.Binding // Open the delete confirmation modal.
	Refresh key.Binding // Force a re-fetch from the gateway.

	// Form actions.
	NextField       key.Binding // Move to the next form field.
	PreviousField   key.Binding // Move to the previous form field.
	Submit          key.Binding // Submit the draft (create or update).
	ToggleTransport key.Binding // Flip the transport allowance flag.
	OpenDropdown    key.Binding // Open the department selection dropdown.

	// Filter.
	FilterActivate key.Binding // Enter filter mode.
	Cancel         key.Binding // Clear filter / cancel edit / dismiss modal.

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "switch pane"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	NextField: key.NewBinding(
		key.WithKeys("down", "enter"),
		key.WithHelp("↓", "next field"),
	),
	PreviousField: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "save"),
	),
	ToggleTransport: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("Space", "toggle"),
	),
	OpenDropdown: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("Enter", "choose department"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
