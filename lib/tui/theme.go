// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for staffdesk's terminal UI. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Form field states.
	FieldLabel   lipgloss.Color // Labels next to input fields.
	FieldFocused lipgloss.Color // The field currently receiving input.
	FieldError   lipgloss.Color // Validation messages under a field.

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Status bar notices.
	NoticeWarn  lipgloss.Color
	NoticeError lipgloss.Color

	// Filter match highlighting.
	MatchBackground lipgloss.Color

	// Modal overlays (confirm dialog, dropdown menu).
	OverlayForeground lipgloss.Color
	OverlayBackground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed
// for 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	FieldLabel:   lipgloss.Color("245"),
	FieldFocused: lipgloss.Color("75"),  // blue
	FieldError:   lipgloss.Color("203"), // soft red

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	NoticeWarn:  lipgloss.Color("220"), // amber
	NoticeError: lipgloss.Color("196"), // bright red

	MatchBackground: lipgloss.Color("58"), // dark amber

	OverlayForeground: lipgloss.Color("252"),
	OverlayBackground: lipgloss.Color("237"),
}
