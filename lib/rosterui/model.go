// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rosterui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/staffdesk/lib/roster"
	"github.com/bureau-foundation/staffdesk/lib/tui"
)

// Gateway is the persistence boundary the model talks to. Both the
// HTTP client and the fixture gateway in lib/roster satisfy it; tests
// substitute stubs.
type Gateway interface {
	ListEmployees(ctx context.Context) ([]roster.Employee, error)
	CreateEmployee(ctx context.Context, payload roster.EmployeePayload) (roster.Employee, error)
	UpdateEmployee(ctx context.Context, id string, payload roster.EmployeePayload) (roster.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
	ListDepartments(ctx context.Context) ([]roster.Department, error)
}

// FocusRegion identifies where keyboard input is routed.
type FocusRegion int

const (
	// FocusList means navigation keys move the employee list cursor.
	FocusList FocusRegion = iota
	// FocusForm means keystrokes go to the entry form.
	FocusForm
	// FocusFilter means keystrokes go to the list filter input.
	FocusFilter
	// FocusConfirm means the delete confirmation modal is open and
	// captures all input until confirmed or cancelled.
	FocusConfirm
	// FocusDropdown means the department dropdown overlay is open and
	// captures all input until a selection or dismissal.
	FocusDropdown
)

// gatewayTimeout bounds every gateway call issued from the event
// loop. A hung server should degrade to an error notice, not a UI
// that can never settle.
const gatewayTimeout = 15 * time.Second

// employeesLoadedMsg delivers the result of a list re-fetch.
type employeesLoadedMsg struct {
	employees []roster.Employee
	err       error
}

// departmentsLoadedMsg delivers the department list for the form's
// dropdown. Fetched once at startup.
type departmentsLoadedMsg struct {
	departments []roster.Department
	err         error
}

// submitResultMsg delivers the outcome of a create or update call.
// On success employee is the server-returned record.
type submitResultMsg struct {
	employee roster.Employee
	mode     FormMode
	err      error
}

// deleteResultMsg delivers the outcome of a delete call for the given
// employee ID.
type deleteResultMsg struct {
	id  string
	err error
}

// Model is the top-level bubbletea model for staffdesk: employee list
// on the left, entry form on the right, with modal overlays for the
// department dropdown and delete confirmation.
type Model struct {
	gateway Gateway
	logger  *slog.Logger
	theme   tui.Theme
	keys    KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// Authoritative employee collection and the revision of it we
	// last synchronized from the gateway. A mutation bumps the store
	// revision; when it moves past syncedRevision a re-fetch runs,
	// except for deletes, which adopt the optimistic local removal.
	store          *Store
	syncedRevision int64

	// Entry form state.
	form      FormModel
	formFocus Field

	// Department list for the form's dropdown, in fetch order.
	departments []roster.Department

	// List state. visible is the filtered view of the store snapshot.
	filter       FilterModel
	visible      []FilterMatch
	cursor       int
	scrollOffset int

	focusRegion FocusRegion
	priorFocus  FocusRegion // Saved focus when a modal or the filter opens.

	// Delete confirmation. Non-nil while the modal is open.
	confirmModal    *tui.ConfirmModal
	confirmTargetID string

	// Department dropdown overlay. Non-nil while open.
	dropdown *tui.DropdownOverlay

	// Status bar notice (gateway failures, submit feedback). Cleared
	// by logNoticeFadeMsg after a delay.
	notice      string
	noticeLevel slog.Level
}

// NewModel creates a Model connected to the given gateway. The logger
// receives a diagnostic for every gateway failure; pass a logger
// backed by TUILogHandler to surface those in the status bar.
func NewModel(gateway Gateway, logger *slog.Logger) Model {
	return Model{
		gateway: gateway,
		logger:  logger,
		theme:   tui.DefaultTheme,
		keys:    DefaultKeyMap,
		store:   NewStore(),
		form:    NewFormModel(),
		filter:  NewFilterModel(),
	}
}

// Store exposes the authoritative employee collection.
func (model *Model) Store() *Store {
	return model.store
}

// Init implements tea.Model. Loads the employee and department lists.
func (model Model) Init() tea.Cmd {
	return tea.Batch(model.refreshCmd(), model.loadDepartmentsCmd())
}

// refreshCmd fetches the full employee collection.
func (model Model) refreshCmd() tea.Cmd {
	gateway := model.gateway
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
		defer cancel()
		employees, err := gateway.ListEmployees(ctx)
		return employeesLoadedMsg{employees: employees, err: err}
	}
}

// loadDepartmentsCmd fetches the department list.
func (model Model) loadDepartmentsCmd() tea.Cmd {
	gateway := model.gateway
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
		defer cancel()
		departments, err := gateway.ListDepartments(ctx)
		return departmentsLoadedMsg{departments: departments, err: err}
	}
}

// submitCmd issues the create or update call for a validated payload.
func (model Model) submitCmd(mode FormMode, editID string, payload roster.EmployeePayload) tea.Cmd {
	gateway := model.gateway
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
		defer cancel()
		if mode == ModeEdit {
			employee, err := gateway.UpdateEmployee(ctx, editID, payload)
			return submitResultMsg{employee: employee, mode: mode, err: err}
		}
		employee, err := gateway.CreateEmployee(ctx, payload)
		return submitResultMsg{employee: employee, mode: mode, err: err}
	}
}

// deleteCmd issues the delete call for an employee ID.
func (model Model) deleteCmd(id string) tea.Cmd {
	gateway := model.gateway
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gatewayTimeout)
		defer cancel()
		return deleteResultMsg{id: id, err: gateway.DeleteEmployee(ctx, id)}
	}
}

// fadeNoticeCmd schedules clearing the status bar notice.
func fadeNoticeCmd() tea.Cmd {
	return tea.Tick(logNoticeFadeDelay, func(time.Time) tea.Msg {
		return logNoticeFadeMsg{}
	})
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true

	case tea.KeyMsg:
		return model.handleKey(message)

	case employeesLoadedMsg:
		if message.err != nil {
			model.logger.Error("employee list fetch failed", "error", message.err)
			model.setNotice("could not load employees: "+message.err.Error(), slog.LevelError)
			return model, nil
		}
		model.store.Replace(message.employees)
		model.syncedRevision = model.store.Revision()
		model.rebuildVisible()

	case departmentsLoadedMsg:
		if message.err != nil {
			model.logger.Error("department list fetch failed", "error", message.err)
			model.setNotice("could not load departments: "+message.err.Error(), slog.LevelError)
			return model, nil
		}
		model.departments = message.departments

	case submitResultMsg:
		return model.handleSubmitResult(message)

	case deleteResultMsg:
		return model.handleDeleteResult(message)

	case logNoticeMsg:
		model.notice = message.Summary
		model.noticeLevel = message.Level
		return model, fadeNoticeCmd()

	case logNoticeFadeMsg:
		model.notice = ""
	}

	return model, nil
}

// handleSubmitResult applies a create/update outcome. On failure the
// draft and collection are left exactly as they were so the user can
// correct and retry.
func (model Model) handleSubmitResult(message submitResultMsg) (tea.Model, tea.Cmd) {
	if message.err != nil {
		model.logger.Error("save failed", "error", message.err)
		model.setNotice("save failed: "+message.err.Error(), slog.LevelError)
		return model, nil
	}

	model.store.Apply(model.resolveDepartmentName(message.employee))
	model.form.Reset()
	model.formFocus = FieldName
	model.rebuildVisible()
	model.setNotice("saved", slog.LevelInfo)

	// A committed mutation re-synchronizes the collection from the
	// server so server-computed fields (ID, hire date) are never
	// guessed locally for longer than one frame.
	return model, model.maybeRefresh()
}

// handleDeleteResult applies a delete outcome. Successful deletes
// remove the row locally without a re-fetch: the server has already
// acknowledged the removal and the collection cannot have gained new
// rows from this client in the meantime.
func (model Model) handleDeleteResult(message deleteResultMsg) (tea.Model, tea.Cmd) {
	if message.err != nil {
		model.logger.Error("delete failed", "error", message.err, "id", message.id)
		model.setNotice("delete failed: "+message.err.Error(), slog.LevelError)
		return model, nil
	}

	model.store.Remove(message.id)
	// Adopt the optimistic removal: advance the synced revision so the
	// mutation does not trigger a redundant re-fetch.
	model.syncedRevision = model.store.Revision()
	model.rebuildVisible()
	model.clampCursor()
	model.setNotice("deleted", slog.LevelInfo)
	return model, nil
}

// maybeRefresh returns a re-fetch command when the store has moved
// past the revision we last synchronized from the gateway.
func (model *Model) maybeRefresh() tea.Cmd {
	if model.store.Revision() == model.syncedRevision {
		return nil
	}
	return model.refreshCmd()
}

// resolveDepartmentName fills in the department name from the loaded
// department list when the server response omits it.
func (model *Model) resolveDepartmentName(employee roster.Employee) roster.Employee {
	if employee.DepartmentName != "" {
		return employee
	}
	for _, department := range model.departments {
		if department.ID == employee.DepartmentID {
			employee.DepartmentName = department.Name
			return employee
		}
	}
	return employee
}

// setNotice puts a message in the status bar. Direct notices stay
// until the next keystroke replaces or clears them; only slog-routed
// notices fade on a timer.
func (model *Model) setNotice(text string, level slog.Level) {
	model.notice = text
	model.noticeLevel = level
}

// handleKey routes keyboard input by focus region. Any keystroke
// dismisses a standing status notice.
func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	model.notice = ""

	switch model.focusRegion {
	case FocusConfirm:
		return model.handleConfirmKeys(message)
	case FocusDropdown:
		return model.handleDropdownKeys(message)
	case FocusFilter:
		return model.handleFilterKeys(message)
	case FocusForm:
		return model.handleFormKeys(message)
	default:
		return model.handleListKeys(message)
	}
}

// handleListKeys processes input while the list pane has focus.
func (model Model) handleListKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.FocusToggle):
		model.focusRegion = FocusForm

	case key.Matches(message, model.keys.Up):
		model.moveCursor(-1)

	case key.Matches(message, model.keys.Down):
		model.moveCursor(1)

	case key.Matches(message, model.keys.PageUp):
		model.moveCursor(-model.listPageSize())

	case key.Matches(message, model.keys.PageDown):
		model.moveCursor(model.listPageSize())

	case key.Matches(message, model.keys.Home):
		model.cursor = 0
		model.scrollCursorIntoView()

	case key.Matches(message, model.keys.End):
		model.cursor = len(model.visible) - 1
		model.clampCursor()
		model.scrollCursorIntoView()

	case key.Matches(message, model.keys.Refresh):
		return model, model.refreshCmd()

	case key.Matches(message, model.keys.FilterActivate):
		model.priorFocus = model.focusRegion
		model.focusRegion = FocusFilter
		model.filter.Active = true

	case key.Matches(message, model.keys.Cancel):
		if model.filter.Query != "" {
			model.filter.Clear()
			model.rebuildVisible()
			model.clampCursor()
		}

	case key.Matches(message, model.keys.Edit):
		if selected, ok := model.selectedEmployee(); ok {
			// Hand the form a copy; the authoritative record is only
			// replaced after a successful update round-trip.
			model.form.LoadForEdit(selected)
			model.formFocus = FieldName
			model.focusRegion = FocusForm
		}

	case key.Matches(message, model.keys.Delete):
		if selected, ok := model.selectedEmployee(); ok {
			modal := tui.NewConfirmModal(
				"Delete employee",
				"Remove "+selected.Name+" from the roster?",
				model.theme,
			)
			model.confirmModal = &modal
			model.confirmTargetID = selected.ID
			model.priorFocus = model.focusRegion
			model.focusRegion = FocusConfirm
		}
	}

	return model, nil
}

// handleFormKeys processes input while the entry form has focus.
func (model Model) handleFormKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit

	case key.Matches(message, model.keys.FocusToggle):
		model.focusRegion = FocusList
		return model, nil

	case key.Matches(message, model.keys.Submit):
		return model.submitForm()

	case key.Matches(message, model.keys.Cancel):
		// Esc abandons the draft entirely, returning to an empty
		// create-mode form.
		model.form.Reset()
		model.formFocus = FieldName
		model.focusRegion = FocusList
		return model, nil
	}

	// Field-specific handling before generic focus movement: the
	// transport flag and department dropdown consume space/enter.
	switch model.formFocus {
	case FieldTransport:
		if key.Matches(message, model.keys.ToggleTransport) {
			model.form.SetTransport(!model.form.Draft().Transport)
			return model, nil
		}
	case FieldDepartment:
		if key.Matches(message, model.keys.OpenDropdown) {
			model.openDepartmentDropdown()
			return model, nil
		}
	}

	switch {
	case key.Matches(message, model.keys.NextField):
		model.formFocus = nextField(model.formFocus)
		return model, nil

	case key.Matches(message, model.keys.PreviousField):
		model.formFocus = previousField(model.formFocus)
		return model, nil
	}

	// Text entry into the focused field.
	switch message.Type {
	case tea.KeyRunes, tea.KeySpace:
		if isTextField(model.formFocus) {
			typed := string(message.Runes)
			if message.Type == tea.KeySpace {
				typed = " "
			}
			model.form.SetField(model.formFocus, model.form.fieldValue(model.formFocus)+typed)
		}
	case tea.KeyBackspace:
		if isTextField(model.formFocus) {
			current := []rune(model.form.fieldValue(model.formFocus))
			if len(current) > 0 {
				model.form.SetField(model.formFocus, string(current[:len(current)-1]))
			}
		}
	}

	return model, nil
}

// submitForm validates the draft and issues the gateway call. An
// invalid draft is a silent no-op: the per-field messages under each
// input already say what is wrong, and re-announcing them in the
// status bar would just shout.
func (model Model) submitForm() (tea.Model, tea.Cmd) {
	if !model.form.IsValid() {
		return model, nil
	}

	payload, err := model.form.Payload()
	if err != nil {
		// Salary coercion failed; pin the message to the field.
		model.form.fieldErrors[FieldSalary] = err.Error()
		return model, nil
	}

	return model, model.submitCmd(model.form.Mode(), model.form.EditID(), payload)
}

// openDepartmentDropdown builds the dropdown overlay from the loaded
// department list, pre-selecting the draft's current choice.
func (model *Model) openDepartmentDropdown() {
	if len(model.departments) == 0 {
		return
	}

	options := make([]tui.DropdownOption, 0, len(model.departments))
	for _, department := range model.departments {
		options = append(options, tui.DropdownOption{
			Label: department.Name,
			Value: department.ID,
		})
	}

	dropdown := &tui.DropdownOverlay{Options: options}
	dropdown.SelectValue(model.form.Draft().DepartmentID)

	anchorX, anchorY := model.departmentFieldAnchor()
	dropdown.AnchorX = anchorX
	dropdown.AnchorY = anchorY

	model.dropdown = dropdown
	model.priorFocus = model.focusRegion
	model.focusRegion = FocusDropdown
}

// handleDropdownKeys processes input while the department dropdown is
// open. All input routes here until selection or dismissal.
func (model Model) handleDropdownKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Up):
		model.dropdown.MoveUp()

	case key.Matches(message, model.keys.Down):
		model.dropdown.MoveDown()

	case message.Type == tea.KeyEnter:
		model.form.SetField(FieldDepartment, model.dropdown.Selected().Value)
		model.dropdown = nil
		model.focusRegion = model.priorFocus

	case message.Type == tea.KeyEscape:
		model.dropdown = nil
		model.focusRegion = model.priorFocus
	}

	return model, nil
}

// handleConfirmKeys processes input while the delete confirmation is
// open. Enter confirms (issues the delete call), escape cancels with
// no side effects.
func (model Model) handleConfirmKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEnter:
		targetID := model.confirmTargetID
		model.confirmModal = nil
		model.confirmTargetID = ""
		model.focusRegion = model.priorFocus
		return model, model.deleteCmd(targetID)

	case tea.KeyEscape:
		model.confirmModal = nil
		model.confirmTargetID = ""
		model.focusRegion = model.priorFocus
	}

	return model, nil
}

// handleFilterKeys processes input while the filter input is active.
func (model Model) handleFilterKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEscape:
		model.filter.Clear()
		model.focusRegion = model.priorFocus
		model.rebuildVisible()
		model.clampCursor()

	case tea.KeyEnter:
		// Keep the query, return navigation to the list.
		model.filter.Active = false
		model.focusRegion = FocusList

	case tea.KeyBackspace:
		model.filter.Backspace()
		model.rebuildVisible()
		model.clampCursor()

	case tea.KeyRunes, tea.KeySpace:
		typed := string(message.Runes)
		if message.Type == tea.KeySpace {
			typed = " "
		}
		model.filter.Append(typed)
		model.rebuildVisible()
		model.clampCursor()
	}

	return model, nil
}

// rebuildVisible recomputes the filtered list from a fresh store
// snapshot.
func (model *Model) rebuildVisible() {
	model.visible = model.filter.Apply(model.store.Snapshot())
}

// selectedEmployee returns the employee under the cursor.
func (model *Model) selectedEmployee() (roster.Employee, bool) {
	if model.cursor < 0 || model.cursor >= len(model.visible) {
		return roster.Employee{}, false
	}
	return model.visible[model.cursor].Employee, true
}

// moveCursor shifts the list cursor by delta, clamped to the list.
func (model *Model) moveCursor(delta int) {
	model.cursor += delta
	model.clampCursor()
	model.scrollCursorIntoView()
}

func (model *Model) clampCursor() {
	if model.cursor >= len(model.visible) {
		model.cursor = len(model.visible) - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
}

// scrollCursorIntoView adjusts the scroll offset so the cursor's row
// is inside the viewport.
func (model *Model) scrollCursorIntoView() {
	pageSize := model.listPageSize()
	if pageSize <= 0 {
		return
	}
	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+pageSize {
		model.scrollOffset = model.cursor - pageSize + 1
	}
}

// nextField cycles form focus forward through the fields.
func nextField(field Field) Field {
	if field+1 >= fieldCount {
		return FieldName
	}
	return field + 1
}

// previousField cycles form focus backward through the fields.
func previousField(field Field) Field {
	if field == FieldName {
		return fieldCount - 1
	}
	return field - 1
}

// isTextField reports whether a field accepts typed characters.
func isTextField(field Field) bool {
	switch field {
	case FieldName, FieldEmail, FieldPosition, FieldSalary:
		return true
	default:
		return false
	}
}
