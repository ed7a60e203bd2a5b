// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rosterui

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/staffdesk/lib/roster"
)

// stubGateway implements Gateway with overridable call functions.
// Calls without an override fail the test that reaches them.
type stubGateway struct {
	list        func(ctx context.Context) ([]roster.Employee, error)
	create      func(ctx context.Context, payload roster.EmployeePayload) (roster.Employee, error)
	update      func(ctx context.Context, id string, payload roster.EmployeePayload) (roster.Employee, error)
	delete      func(ctx context.Context, id string) error
	departments func(ctx context.Context) ([]roster.Department, error)
}

func (stub *stubGateway) ListEmployees(ctx context.Context) ([]roster.Employee, error) {
	if stub.list == nil {
		return nil, nil
	}
	return stub.list(ctx)
}

func (stub *stubGateway) CreateEmployee(ctx context.Context, payload roster.EmployeePayload) (roster.Employee, error) {
	if stub.create == nil {
		return roster.Employee{}, errors.New("unexpected create call")
	}
	return stub.create(ctx, payload)
}

func (stub *stubGateway) UpdateEmployee(ctx context.Context, id string, payload roster.EmployeePayload) (roster.Employee, error) {
	if stub.update == nil {
		return roster.Employee{}, errors.New("unexpected update call")
	}
	return stub.update(ctx, id, payload)
}

func (stub *stubGateway) DeleteEmployee(ctx context.Context, id string) error {
	if stub.delete == nil {
		return errors.New("unexpected delete call")
	}
	return stub.delete(ctx, id)
}

func (stub *stubGateway) ListDepartments(ctx context.Context) ([]roster.Department, error) {
	if stub.departments == nil {
		return nil, nil
	}
	return stub.departments(ctx)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// drive runs one message through Update and returns the concrete model.
func drive(t *testing.T, model Model, message tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := model.Update(message)
	concrete, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return concrete, cmd
}

// runCmd executes a command, feeds its message back through Update,
// and keeps following any command chain (e.g. a submit result that
// triggers a re-fetch) until it settles.
func runCmd(t *testing.T, model Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	for cmd != nil {
		message := cmd()
		if message == nil {
			return model
		}
		model, cmd = drive(t, model, message)
	}
	return model
}

func keyPress(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func TestSubmitCreateAppendsServerRecordAndResets(t *testing.T) {
	gateway := &stubGateway{
		create: func(_ context.Context, payload roster.EmployeePayload) (roster.Employee, error) {
			return roster.Employee{
				ID:                 "e9",
				Name:               payload.Name,
				Email:              payload.Email,
				Position:           payload.Position,
				Salary:             payload.Salary,
				TransportAllowance: payload.TransportAllowance,
				DepartmentID:       payload.DepartmentID,
			}, nil
		},
	}

	model := NewModel(gateway, testLogger())
	model.form.SetField(FieldName, "Ana Silva")
	model.form.SetField(FieldEmail, "ana@ex.com")
	model.form.SetField(FieldPosition, "Engineer")
	model.form.SetField(FieldSalary, "5000")
	model.form.SetTransport(true)
	model.form.SetField(FieldDepartment, "d1")

	updated, cmd := model.submitForm()
	model = updated.(Model)
	model = runCmd(t, model, cmd)

	if model.store.Len() != 1 {
		t.Fatalf("store has %d employees, want 1", model.store.Len())
	}
	created, ok := model.store.Get("e9")
	if !ok {
		t.Fatal("created employee e9 not in store")
	}
	if created.Name != "Ana Silva" || !created.TransportAllowance {
		t.Errorf("stored record = %+v", created)
	}

	if model.form.Draft() != (Draft{}) {
		t.Errorf("draft not reset: %+v", model.form.Draft())
	}
	if model.form.Mode() != ModeCreate {
		t.Errorf("mode = %v, want ModeCreate", model.form.Mode())
	}
}

func TestSubmitInvalidDraftIsANoOp(t *testing.T) {
	gateway := &stubGateway{} // Any gateway call would error the test.

	model := NewModel(gateway, testLogger())
	model.form.SetField(FieldName, "Ana Silva")
	// Email, position, salary, department left empty.

	updated, cmd := model.submitForm()
	model = updated.(Model)

	if cmd != nil {
		t.Error("invalid draft produced a gateway command")
	}
	if model.store.Len() != 0 {
		t.Errorf("store mutated by invalid submit: %d entries", model.store.Len())
	}
}

func TestSubmitEditFailureLeavesStateUnchanged(t *testing.T) {
	existing := roster.Employee{
		ID:           "e9",
		Name:         "Ana Silva",
		Email:        "ana@ex.com",
		Position:     "Engineer",
		Salary:       "5000",
		DepartmentID: "d1",
	}

	gateway := &stubGateway{
		update: func(context.Context, string, roster.EmployeePayload) (roster.Employee, error) {
			return roster.Employee{}, errors.New("connection refused")
		},
	}

	model := NewModel(gateway, testLogger())
	model, _ = drive(t, model, employeesLoadedMsg{employees: []roster.Employee{existing}})

	model.form.LoadForEdit(existing)
	model.form.SetField(FieldPosition, "Staff Engineer")
	draftBefore := model.form.Draft()

	updated, cmd := model.submitForm()
	model = updated.(Model)
	model = runCmd(t, model, cmd)

	stored, _ := model.store.Get("e9")
	if stored.Position != "Engineer" {
		t.Errorf("authoritative record changed on failed update: %+v", stored)
	}
	if model.form.Draft() != draftBefore {
		t.Errorf("draft changed on failed update: %+v", model.form.Draft())
	}
	if model.form.Mode() != ModeEdit || model.form.EditID() != "e9" {
		t.Errorf("edit mode cleared on failed update: mode=%v id=%q", model.form.Mode(), model.form.EditID())
	}
	if model.notice == "" {
		t.Error("failed update produced no status notice")
	}
}

func TestSubmitEditSuccessReplacesRecord(t *testing.T) {
	existing := roster.Employee{
		ID:           "e9",
		Name:         "Ana Silva",
		Email:        "ana@ex.com",
		Position:     "Engineer",
		Salary:       "5000",
		DepartmentID: "d1",
	}

	gateway := &stubGateway{
		update: func(_ context.Context, id string, payload roster.EmployeePayload) (roster.Employee, error) {
			return roster.Employee{
				ID:           id,
				Name:         payload.Name,
				Email:        payload.Email,
				Position:     payload.Position,
				Salary:       payload.Salary,
				DepartmentID: payload.DepartmentID,
			}, nil
		},
		list: func(context.Context) ([]roster.Employee, error) {
			updated := existing
			updated.Position = "Staff Engineer"
			return []roster.Employee{updated}, nil
		},
	}

	model := NewModel(gateway, testLogger())
	model, _ = drive(t, model, employeesLoadedMsg{employees: []roster.Employee{existing}})

	model.form.LoadForEdit(existing)
	model.form.SetField(FieldPosition, "Staff Engineer")

	updated, cmd := model.submitForm()
	model = updated.(Model)
	model = runCmd(t, model, cmd)

	stored, _ := model.store.Get("e9")
	if stored.Position != "Staff Engineer" {
		t.Errorf("record not replaced: %+v", stored)
	}
	if model.store.Len() != 1 {
		t.Errorf("store has %d entries after in-place update, want 1", model.store.Len())
	}
	if model.form.Mode() != ModeCreate {
		t.Errorf("form not reset after successful update: mode=%v", model.form.Mode())
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	deleteCalls := 0
	gateway := &stubGateway{
		delete: func(_ context.Context, id string) error {
			deleteCalls++
			if id != "e2" {
				t.Errorf("delete called with id %q, want e2", id)
			}
			return nil
		},
	}

	employees := []roster.Employee{{ID: "e1", Name: "Ana"}, {ID: "e2", Name: "Rui"}, {ID: "e3", Name: "Eva"}}

	model := NewModel(gateway, testLogger())
	model.width, model.height, model.ready = 120, 40, true
	model, _ = drive(t, model, employeesLoadedMsg{employees: employees})

	// Enter without an open confirmation must not delete anything.
	model, _ = drive(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if deleteCalls != 0 {
		t.Fatal("delete issued without confirmation")
	}
	// (Enter is the edit binding; undo its mode switch.)
	model.form.Reset()
	model.focusRegion = FocusList

	// Select e2 and open the confirmation.
	model, _ = drive(t, model, keyPress("j"))
	model, _ = drive(t, model, keyPress("d"))
	if model.focusRegion != FocusConfirm || model.confirmModal == nil {
		t.Fatalf("confirmation not open: focus=%v", model.focusRegion)
	}

	// Cancel: employee stays, no gateway call.
	model, _ = drive(t, model, tea.KeyMsg{Type: tea.KeyEscape})
	if deleteCalls != 0 {
		t.Fatal("delete issued on cancel")
	}
	if model.store.Len() != 3 {
		t.Errorf("store has %d entries after cancel, want 3", model.store.Len())
	}
	if model.confirmModal != nil {
		t.Error("confirmation still open after cancel")
	}

	// Open again and confirm: exactly e2 is removed.
	model, _ = drive(t, model, keyPress("d"))
	model, cmd := drive(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = runCmd(t, model, cmd)

	if deleteCalls != 1 {
		t.Fatalf("delete calls = %d, want 1", deleteCalls)
	}
	if model.store.Len() != 2 {
		t.Errorf("store has %d entries after delete, want 2", model.store.Len())
	}
	if _, ok := model.store.Get("e2"); ok {
		t.Error("e2 still present after confirmed delete")
	}
	for _, survivor := range []string{"e1", "e3"} {
		if _, ok := model.store.Get(survivor); !ok {
			t.Errorf("%s missing after deleting e2", survivor)
		}
	}
}

func TestDeleteFailureKeepsRow(t *testing.T) {
	gateway := &stubGateway{
		delete: func(context.Context, string) error {
			return errors.New("503 service unavailable")
		},
	}

	model := NewModel(gateway, testLogger())
	model.width, model.height, model.ready = 120, 40, true
	model, _ = drive(t, model, employeesLoadedMsg{employees: []roster.Employee{{ID: "e1", Name: "Ana"}}})

	model, _ = drive(t, model, keyPress("d"))
	model, cmd := drive(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = runCmd(t, model, cmd)

	if model.store.Len() != 1 {
		t.Errorf("row removed despite gateway failure: %d entries", model.store.Len())
	}
	if model.notice == "" {
		t.Error("failed delete produced no status notice")
	}
}

func TestListFetchFailureKeepsCollection(t *testing.T) {
	model := NewModel(&stubGateway{}, testLogger())
	model, _ = drive(t, model, employeesLoadedMsg{employees: []roster.Employee{{ID: "e1"}}})

	model, _ = drive(t, model, employeesLoadedMsg{err: errors.New("network unreachable")})

	if model.store.Len() != 1 {
		t.Errorf("collection changed on failed fetch: %d entries", model.store.Len())
	}
	if model.notice == "" {
		t.Error("failed fetch produced no status notice")
	}
}

func TestCreateSuccessTriggersRefresh(t *testing.T) {
	listCalls := 0
	gateway := &stubGateway{
		create: func(_ context.Context, payload roster.EmployeePayload) (roster.Employee, error) {
			return roster.Employee{ID: "e1", Name: payload.Name}, nil
		},
		list: func(context.Context) ([]roster.Employee, error) {
			listCalls++
			return []roster.Employee{{ID: "e1", Name: "Ana Silva", HireDate: "2026-03-10T15:30:00Z"}}, nil
		},
	}

	model := NewModel(gateway, testLogger())
	model.form.SetField(FieldName, "Ana Silva")
	model.form.SetField(FieldEmail, "ana@ex.com")
	model.form.SetField(FieldPosition, "Engineer")
	model.form.SetField(FieldSalary, "5000")
	model.form.SetField(FieldDepartment, "d1")

	updated, cmd := model.submitForm()
	model = updated.(Model)
	model = runCmd(t, model, cmd)

	if listCalls != 1 {
		t.Fatalf("list calls after create = %d, want 1", listCalls)
	}
	stored, _ := model.store.Get("e1")
	if stored.HireDate != "2026-03-10T15:30:00Z" {
		t.Errorf("server-assigned hire date not synchronized: %+v", stored)
	}
	if model.store.Revision() != model.syncedRevision {
		t.Errorf("revision %d not synced (%d)", model.store.Revision(), model.syncedRevision)
	}
}

func TestDeleteDoesNotRefetch(t *testing.T) {
	listCalls := 0
	gateway := &stubGateway{
		delete: func(context.Context, string) error { return nil },
		list: func(context.Context) ([]roster.Employee, error) {
			listCalls++
			return nil, nil
		},
	}

	model := NewModel(gateway, testLogger())
	model.width, model.height, model.ready = 120, 40, true
	model, _ = drive(t, model, employeesLoadedMsg{employees: []roster.Employee{{ID: "e1", Name: "Ana"}}})

	model, _ = drive(t, model, keyPress("d"))
	model, cmd := drive(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	model = runCmd(t, model, cmd)

	if listCalls != 0 {
		t.Errorf("delete triggered %d re-fetches, want 0", listCalls)
	}
	if model.store.Revision() != model.syncedRevision {
		t.Error("optimistic removal left a pending refresh trigger")
	}
}

func TestDropdownSelectionSetsDepartment(t *testing.T) {
	model := NewModel(&stubGateway{}, testLogger())
	model.width, model.height, model.ready = 120, 40, true
	model, _ = drive(t, model, departmentsLoadedMsg{departments: []roster.Department{
		{ID: "d1", Name: "Engineering"},
		{ID: "d2", Name: "Finance"},
	}})

	model.focusRegion = FocusForm
	model.formFocus = FieldDepartment
	model, _ = drive(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if model.focusRegion != FocusDropdown || model.dropdown == nil {
		t.Fatalf("dropdown not open: focus=%v", model.focusRegion)
	}

	model, _ = drive(t, model, keyPress("j"))
	model, _ = drive(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if model.form.Draft().DepartmentID != "d2" {
		t.Errorf("department = %q, want d2", model.form.Draft().DepartmentID)
	}
	if model.dropdown != nil || model.focusRegion != FocusForm {
		t.Errorf("dropdown not dismissed: focus=%v", model.focusRegion)
	}
}

func TestFilterNarrowsList(t *testing.T) {
	model := NewModel(&stubGateway{}, testLogger())
	model.width, model.height, model.ready = 120, 40, true
	model, _ = drive(t, model, employeesLoadedMsg{employees: []roster.Employee{
		{ID: "e1", Name: "Ana Silva", Email: "ana@ex.com"},
		{ID: "e2", Name: "Rui Costa", Email: "rui@ex.com"},
	}})

	model, _ = drive(t, model, keyPress("/"))
	if model.focusRegion != FocusFilter {
		t.Fatalf("focus = %v, want FocusFilter", model.focusRegion)
	}

	model, _ = drive(t, model, keyPress("a"))
	model, _ = drive(t, model, keyPress("n"))
	model, _ = drive(t, model, keyPress("a"))

	if len(model.visible) != 1 || model.visible[0].Employee.ID != "e1" {
		t.Fatalf("filtered list = %+v", model.visible)
	}

	// Esc clears the filter and restores the full list.
	model, _ = drive(t, model, tea.KeyMsg{Type: tea.KeyEscape})
	if len(model.visible) != 2 {
		t.Errorf("list after clear has %d rows, want 2", len(model.visible))
	}
	if model.filter.Query != "" {
		t.Errorf("query not cleared: %q", model.filter.Query)
	}
}
