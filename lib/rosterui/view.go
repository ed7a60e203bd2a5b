// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rosterui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/staffdesk/lib/tui"
)

// Layout constants. The list pane takes the larger share since rows
// carry six columns; the form needs only label+input width.
const (
	listPaneRatio = 0.62
	minFormWidth  = 32

	// Rows per form field in the form pane: label, input, and an
	// error/spacer line.
	formFieldRows = 3

	// formTopRows is the number of rows above the first field: the
	// pane title and a blank line.
	formTopRows = 2
)

// listPaneWidth returns the width of the employee list pane.
func (model *Model) listPaneWidth() int {
	width := int(float64(model.width) * listPaneRatio)
	if model.width-width < minFormWidth {
		width = model.width - minFormWidth
	}
	if width < 0 {
		width = 0
	}
	return width
}

// listPageSize returns how many employee rows fit in the list
// viewport: total height minus the title bar, table header, filter
// line, and status bar.
func (model *Model) listPageSize() int {
	size := model.height - 4
	if size < 1 {
		return 1
	}
	return size
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "loading..."
	}

	listWidth := model.listPaneWidth()
	formWidth := model.width - listWidth

	bodyHeight := model.height - 2 // Title bar and status bar.
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	listPane := model.renderListPane(listWidth, bodyHeight)
	formPane := model.renderFormPane(formWidth, bodyHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top, listPane, formPane)

	view := model.renderTitleBar() + "\n" + body + "\n" + model.renderStatusBar()

	if model.dropdown != nil {
		view = tui.SpliceOverlay(view, model.dropdown.Render(model.theme), model.dropdown.AnchorX, model.dropdown.AnchorY)
	}
	if model.confirmModal != nil {
		lines, anchorX, anchorY := model.confirmModal.Render(model.width, model.height)
		view = tui.SpliceOverlay(view, lines, anchorX, anchorY)
	}

	return view
}

// renderTitleBar renders the top line: application name and employee
// count.
func (model *Model) renderTitleBar() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true)
	countStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText)

	title := titleStyle.Render(" staffdesk ")
	count := countStyle.Render(fmt.Sprintf("%d employees", model.store.Len()))
	if model.filter.Query != "" {
		count += countStyle.Render(fmt.Sprintf("  ·  %d shown", len(model.visible)))
	}

	line := title + " " + count
	return lipgloss.NewStyle().Width(model.width).MaxWidth(model.width).Render(line)
}

// renderListPane renders the filter line, table header, and employee
// rows for the current viewport.
func (model *Model) renderListPane(width, height int) string {
	renderer := NewListRenderer(model.theme, width)

	var lines []string
	lines = append(lines, model.renderFilterLine(width))
	lines = append(lines, renderer.RenderHeader())

	rowBudget := height - 2
	if rowBudget < 0 {
		rowBudget = 0
	}

	end := model.scrollOffset + rowBudget
	if end > len(model.visible) {
		end = len(model.visible)
	}
	for index := model.scrollOffset; index < end; index++ {
		match := model.visible[index]
		selected := index == model.cursor && model.focusRegion != FocusForm
		lines = append(lines, renderer.RenderRow(match.Employee, selected, match.Positions))
	}

	if len(model.visible) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
		message := "  no employees"
		if model.filter.Query != "" {
			message = "  no matches for " + model.filter.Query
		}
		lines = append(lines, emptyStyle.Render(message))
	}

	for len(lines) < height {
		lines = append(lines, "")
	}

	paneStyle := lipgloss.NewStyle().Width(width).MaxWidth(width).Height(height)
	return paneStyle.Render(strings.Join(lines[:height], "\n"))
}

// renderFilterLine renders the filter input row. Blank when no filter
// is active or set.
func (model *Model) renderFilterLine(width int) string {
	if !model.filter.Active && model.filter.Query == "" {
		return ""
	}

	style := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	prompt := " /" + model.filter.Query
	if model.focusRegion == FocusFilter {
		prompt += "▌"
	}
	return style.Width(width).MaxWidth(width).Render(prompt)
}

// renderFormPane renders the entry form: pane title, the six fields
// with focus and error styling, and the mode-appropriate submit hint.
func (model *Model) renderFormPane(width, height int) string {
	labelStyle := lipgloss.NewStyle().Foreground(model.theme.FieldLabel)
	focusedLabelStyle := lipgloss.NewStyle().Foreground(model.theme.FieldFocused).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	errorStyle := lipgloss.NewStyle().Foreground(model.theme.FieldError)
	titleStyle := lipgloss.NewStyle().Foreground(model.theme.HeaderForeground).Bold(true)

	formFocused := model.focusRegion == FocusForm || model.focusRegion == FocusDropdown

	title := " New employee"
	if model.form.Mode() == ModeEdit {
		title = " Edit employee"
	}

	var lines []string
	lines = append(lines, titleStyle.Render(title))
	lines = append(lines, "")

	draft := model.form.Draft()
	for field := Field(0); field < fieldCount; field++ {
		focused := formFocused && model.formFocus == field

		label := field.String()
		if focused {
			lines = append(lines, focusedLabelStyle.Render(" ▸ "+label))
		} else {
			lines = append(lines, labelStyle.Render("   "+label))
		}

		var value string
		switch field {
		case FieldName:
			value = draft.Name
		case FieldEmail:
			value = draft.Email
		case FieldPosition:
			value = draft.Position
		case FieldSalary:
			value = draft.Salary
		case FieldTransport:
			if draft.Transport {
				value = "[x] included"
			} else {
				value = "[ ] not included"
			}
		case FieldDepartment:
			value = model.departmentLabel(draft.DepartmentID)
		}
		if focused && isTextField(field) {
			value += "▌"
		}
		lines = append(lines, valueStyle.Render("   "+value))

		if message := model.form.FieldError(field); message != "" {
			lines = append(lines, errorStyle.Render("   "+message))
		} else {
			lines = append(lines, "")
		}
	}

	hintStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	hint := " C-s save  Esc discard"
	if model.form.Mode() == ModeEdit {
		hint = " C-s save changes  Esc discard (editing " + model.form.EditID() + ")"
	}
	lines = append(lines, hintStyle.Render(hint))

	for len(lines) < height {
		lines = append(lines, "")
	}

	paneStyle := lipgloss.NewStyle().Width(width).MaxWidth(width).Height(height)
	return paneStyle.Render(strings.Join(lines[:height], "\n"))
}

// departmentLabel returns the display name for a department ID, the
// raw ID when the list has not loaded yet, or a placeholder when no
// department is selected.
func (model *Model) departmentLabel(id string) string {
	if id == "" {
		return "(press Enter to choose)"
	}
	for _, department := range model.departments {
		if department.ID == id {
			return department.Name
		}
	}
	return id
}

// departmentFieldAnchor returns the screen position just below the
// department field's input line, where the dropdown overlay opens.
func (model *Model) departmentFieldAnchor() (int, int) {
	anchorX := model.listPaneWidth() + 3
	// One title-bar row, then the form pane's own top rows, then the
	// label and input rows of each field before the department.
	anchorY := 1 + formTopRows + int(FieldDepartment)*formFieldRows + 2
	return anchorX, anchorY
}

// renderStatusBar renders the bottom line: the active notice when one
// is set, otherwise the keyboard help for the focused region.
func (model *Model) renderStatusBar() string {
	if model.notice != "" {
		color := model.theme.HelpText
		switch {
		case model.noticeLevel >= slog.LevelError:
			color = model.theme.NoticeError
		case model.noticeLevel >= slog.LevelWarn:
			color = model.theme.NoticeWarn
		}
		style := lipgloss.NewStyle().Foreground(color)
		return style.Width(model.width).MaxWidth(model.width).Render(" " + model.notice)
	}

	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	var help string
	switch model.focusRegion {
	case FocusForm:
		help = " ↑/↓ field  Space toggle  Enter choose  C-s save  Esc discard  Tab list"
	case FocusConfirm:
		help = " Enter confirm  Esc cancel"
	case FocusDropdown:
		help = " j/k choose  Enter select  Esc dismiss"
	case FocusFilter:
		help = " type to filter  Enter keep  Esc clear"
	default:
		help = " j/k move  e edit  d delete  / filter  r refresh  Tab form  q quit"
	}
	return helpStyle.Width(model.width).MaxWidth(model.width).Render(help)
}
