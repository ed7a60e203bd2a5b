// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rosterui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/staffdesk/lib/roster"
	"github.com/bureau-foundation/staffdesk/lib/tui"
)

// Fixed column widths for the employee table. The name column fills
// the remaining space so long names get the most room.
const (
	columnWidthPosition   = 18
	columnWidthEmail      = 26
	columnWidthSalary     = 12
	columnWidthHireDate   = 12
	columnWidthDepartment = 14

	// transportMarkerWidth is the two-character cell for the transport
	// allowance marker ("✓ " or "  ") at the start of each row.
	transportMarkerWidth = 2

	// minNameWidth keeps the name column readable on narrow terminals;
	// the salary and hire date columns are dropped before the name
	// shrinks below this.
	minNameWidth = 12
)

// ListRenderer handles the table-style rendering of employee rows
// within a given width. On narrow terminals the salary and hire date
// columns are dropped, then the department column, so the name and
// email always stay visible.
type ListRenderer struct {
	theme tui.Theme
	width int
}

// NewListRenderer creates a ListRenderer for the given width.
func NewListRenderer(theme tui.Theme, width int) ListRenderer {
	return ListRenderer{theme: theme, width: width}
}

// columnLayout reports which optional columns fit at the current
// width and how much space remains for the name.
type columnLayout struct {
	nameWidth      int
	showSalary     bool
	showHireDate   bool
	showDepartment bool
}

func (renderer ListRenderer) layout() columnLayout {
	layout := columnLayout{
		showSalary:     true,
		showHireDate:   true,
		showDepartment: true,
	}

	fixed := func() int {
		total := transportMarkerWidth + columnWidthPosition + columnWidthEmail
		if layout.showSalary {
			total += columnWidthSalary
		}
		if layout.showHireDate {
			total += columnWidthHireDate
		}
		if layout.showDepartment {
			total += columnWidthDepartment
		}
		return total
	}

	layout.nameWidth = renderer.width - fixed()
	if layout.nameWidth < minNameWidth {
		layout.showSalary = false
		layout.showHireDate = false
		layout.nameWidth = renderer.width - fixed()
	}
	if layout.nameWidth < minNameWidth {
		layout.showDepartment = false
		layout.nameWidth = renderer.width - fixed()
	}
	if layout.nameWidth < minNameWidth {
		layout.nameWidth = minNameWidth
	}
	return layout
}

// RenderHeader renders the column header row.
func (renderer ListRenderer) RenderHeader() string {
	layout := renderer.layout()

	headerStyle := lipgloss.NewStyle().
		Foreground(renderer.theme.HeaderForeground).
		Bold(true)

	var row strings.Builder
	row.WriteString(strings.Repeat(" ", transportMarkerWidth))
	row.WriteString(padCell("Name", layout.nameWidth))
	row.WriteString(padCell("Position", columnWidthPosition))
	row.WriteString(padCell("Email", columnWidthEmail))
	if layout.showSalary {
		row.WriteString(padCell("Salary", columnWidthSalary))
	}
	if layout.showHireDate {
		row.WriteString(padCell("Hired", columnWidthHireDate))
	}
	if layout.showDepartment {
		row.WriteString(padCell("Department", columnWidthDepartment))
	}

	return headerStyle.Width(renderer.width).MaxWidth(renderer.width).Render(row.String())
}

// RenderRow renders a single employee as a formatted table row. The
// selected flag controls highlight styling. matchPositions contains
// rune indices in the name that matched the current filter query;
// when non-empty those characters get the match highlight background.
func (renderer ListRenderer) RenderRow(employee roster.Employee, selected bool, matchPositions []int) string {
	layout := renderer.layout()

	marker := "  "
	if employee.TransportAllowance {
		marker = "✓ "
	}

	department := employee.DepartmentName
	if department == "" {
		department = employee.DepartmentID
	}

	name := truncateCell(employee.Name, layout.nameWidth)
	rest := padCell(truncateCell(employee.Position, columnWidthPosition), columnWidthPosition) +
		padCell(truncateCell(employee.Email, columnWidthEmail), columnWidthEmail)
	if layout.showSalary {
		rest += padCell(truncateCell(FormatSalary(employee.Salary), columnWidthSalary), columnWidthSalary)
	}
	if layout.showHireDate {
		rest += padCell(FormatHireDate(employee.HireDate), columnWidthHireDate)
	}
	if layout.showDepartment {
		rest += padCell(truncateCell(department, columnWidthDepartment), columnWidthDepartment)
	}

	if selected {
		baseStyle := lipgloss.NewStyle().
			Background(renderer.theme.SelectedBackground).
			Foreground(renderer.theme.SelectedForeground)

		var nameRendered string
		if len(matchPositions) > 0 {
			// The selection background already tints the row, so
			// matches use bold+underline instead of a second tint.
			highlightStyle := baseStyle.Bold(true).Underline(true)
			nameRendered = highlightName(padCell(name, layout.nameWidth), name, matchPositions, baseStyle, highlightStyle)
		} else {
			nameRendered = baseStyle.Bold(true).Render(padCell(name, layout.nameWidth))
		}

		row := baseStyle.Render(marker) + nameRendered + baseStyle.Render(rest)
		return baseStyle.Width(renderer.width).MaxWidth(renderer.width).Render(row)
	}

	nameStyle := lipgloss.NewStyle().Foreground(renderer.theme.NormalText)
	restStyle := lipgloss.NewStyle().Foreground(renderer.theme.FaintText)

	var nameRendered string
	if len(matchPositions) > 0 {
		highlightStyle := lipgloss.NewStyle().
			Foreground(renderer.theme.NormalText).
			Background(renderer.theme.MatchBackground)
		nameRendered = highlightName(padCell(name, layout.nameWidth), name, matchPositions, nameStyle, highlightStyle)
	} else {
		nameRendered = nameStyle.Render(padCell(name, layout.nameWidth))
	}

	row := restStyle.Render(marker) + nameRendered + restStyle.Render(rest)
	return lipgloss.NewStyle().Width(renderer.width).MaxWidth(renderer.width).Render(row)
}

// highlightName renders a padded name cell with character-level
// highlighting at the given rune positions. Positions index into the
// truncated (pre-padding) name. Consecutive runs of same-style
// characters are batched into a single Render call to keep ANSI
// output compact.
func highlightName(paddedName string, name string, positions []int, baseStyle, highlightStyle lipgloss.Style) string {
	positionSet := make(map[int]bool, len(positions))
	for _, position := range positions {
		positionSet[position] = true
	}

	nameLength := len([]rune(name))
	paddedRunes := []rune(paddedName)

	var result strings.Builder
	runStart := 0
	isHighlighted := nameLength > 0 && positionSet[0]

	for index := 1; index <= len(paddedRunes); index++ {
		// Characters past the name length (truncation ellipsis,
		// padding) are never highlighted.
		currentHighlighted := index < nameLength && positionSet[index]
		if currentHighlighted != isHighlighted || index == len(paddedRunes) {
			chunk := string(paddedRunes[runStart:index])
			if isHighlighted {
				result.WriteString(highlightStyle.Render(chunk))
			} else {
				result.WriteString(baseStyle.Render(chunk))
			}
			runStart = index
			isHighlighted = currentHighlighted
		}
	}

	return result.String()
}

// padCell pads text to the column width with trailing spaces, leaving
// one space of gutter. Text wider than the column is returned as-is;
// callers truncate first.
func padCell(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	return text + strings.Repeat(" ", width-textWidth)
}

// truncateCell truncates text to fit a column, reserving one space of
// gutter and ending with an ellipsis when cut.
func truncateCell(text string, width int) string {
	limit := width - 1
	if limit < 1 {
		return ""
	}
	if lipgloss.Width(text) <= limit {
		return text
	}
	runes := []rune(text)
	for length := len(runes) - 1; length >= 0; length-- {
		candidate := string(runes[:length])
		if lipgloss.Width(candidate) <= limit-1 {
			return candidate + "…"
		}
	}
	return "…"
}
