// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ConfirmModal is a centered yes/no dialog overlay. It is purely
// presentational: the owning model tracks whether the modal is open
// (a nil pointer means closed) and maps keys to accept or cancel. The
// modal carries no callbacks and no knowledge of what it confirms
// beyond the prompt text.
type ConfirmModal struct {
	// Title is the modal heading (e.g. "Delete employee").
	Title string

	// Prompt is the question shown in the modal body.
	Prompt string

	theme Theme
}

// NewConfirmModal creates a ConfirmModal with the given heading and
// question.
func NewConfirmModal(title, prompt string, theme Theme) ConfirmModal {
	return ConfirmModal{
		Title:  title,
		Prompt: prompt,
		theme:  theme,
	}
}

// Modal chrome: 2 columns border + 2 columns padding horizontal;
// 2 lines border + 1 title + 1 blank + 1 footer vertical around the
// prompt line.
const (
	confirmChromeWidth   = 4
	confirmMinInnerWidth = 24
	confirmMaxInnerWidth = 56
	confirmFooterText    = "Enter confirm  Esc cancel"
)

// Render produces the modal overlay lines and the centered anchor
// position (top-left corner in screen coordinates).
func (modal ConfirmModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	innerWidth := ansi.StringWidth(modal.Prompt)
	if titleWidth := ansi.StringWidth(modal.Title); titleWidth > innerWidth {
		innerWidth = titleWidth
	}
	if footerWidth := ansi.StringWidth(confirmFooterText); footerWidth > innerWidth {
		innerWidth = footerWidth
	}
	if innerWidth < confirmMinInnerWidth {
		innerWidth = confirmMinInnerWidth
	}
	if innerWidth > confirmMaxInnerWidth {
		innerWidth = confirmMaxInnerWidth
	}
	if maxInner := screenWidth - confirmChromeWidth; innerWidth > maxInner && maxInner > 0 {
		innerWidth = maxInner
	}

	bgStyle := lipgloss.NewStyle().
		Background(modal.theme.OverlayBackground)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.theme.HeaderForeground).
		Background(modal.theme.OverlayBackground)
	promptStyle := lipgloss.NewStyle().
		Foreground(modal.theme.OverlayForeground).
		Background(modal.theme.OverlayBackground)
	footerStyle := lipgloss.NewStyle().
		Foreground(modal.theme.FaintText).
		Background(modal.theme.OverlayBackground)

	prompt := modal.Prompt
	if ansi.StringWidth(prompt) > innerWidth {
		prompt = ansi.Truncate(prompt, innerWidth-1, "…")
	}

	innerLines := []string{
		padInner(titleStyle.Render(modal.Title), innerWidth, bgStyle),
		padInner(promptStyle.Render(prompt), innerWidth, bgStyle),
		bgStyle.Render(strings.Repeat(" ", innerWidth)),
		padInner(footerStyle.Render(confirmFooterText), innerWidth, bgStyle),
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.theme.BorderColor).
		Background(modal.theme.OverlayBackground)

	rendered := borderStyle.Render(strings.Join(innerLines, "\n"))
	resultLines := strings.Split(rendered, "\n")

	renderedWidth := 0
	if len(resultLines) > 0 {
		renderedWidth = ansi.StringWidth(resultLines[0])
	}
	anchorX, anchorY := CenterAnchor(screenWidth, screenHeight, renderedWidth, len(resultLines))
	return resultLines, anchorX, anchorY
}

// padInner pads styled content to the inner width with background-
// colored spaces.
func padInner(styledContent string, innerWidth int, bgStyle lipgloss.Style) string {
	contentWidth := ansi.StringWidth(styledContent)
	if contentWidth >= innerWidth {
		return styledContent
	}
	return styledContent + bgStyle.Render(strings.Repeat(" ", innerWidth-contentWidth))
}
