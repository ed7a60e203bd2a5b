// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rosterui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bureau-foundation/staffdesk/lib/roster"
)

// FormMode distinguishes creating a new employee from editing an
// existing one.
type FormMode int

const (
	// ModeCreate means a successful submit issues a create call.
	ModeCreate FormMode = iota
	// ModeEdit means a successful submit issues an update call for
	// the employee whose ID was captured by LoadForEdit.
	ModeEdit
)

// Draft holds the editable employee attributes as the user typed them.
// All text fields stay raw strings until submission; salary coercion
// happens in Payload so a half-typed number never blocks keystrokes.
type Draft struct {
	Name         string
	Email        string
	Position     string
	Salary       string
	Transport    bool
	DepartmentID string
}

// FormModel owns the transient draft of one employee, its per-field
// validation state, and the create/edit mode. It is a plain value with
// no gateway dependency: the top-level model reads Payload from it and
// issues the network call itself.
type FormModel struct {
	draft       Draft
	mode        FormMode
	editID      string
	fieldErrors map[Field]string
}

// NewFormModel returns an empty create-mode form.
func NewFormModel() FormModel {
	return FormModel{
		fieldErrors: make(map[Field]string),
	}
}

// Draft returns a copy of the current draft values.
func (form *FormModel) Draft() Draft {
	return form.draft
}

// Mode returns the current form mode.
func (form *FormModel) Mode() FormMode {
	return form.mode
}

// EditID returns the ID of the employee being edited, or "" in create
// mode.
func (form *FormModel) EditID() string {
	if form.mode != ModeEdit {
		return ""
	}
	return form.editID
}

// FieldError returns the validation message for a field, or "" when
// the field has no recorded error.
func (form *FormModel) FieldError(field Field) string {
	return form.fieldErrors[field]
}

// SetField updates one text field of the draft and re-validates that
// field only, inserting or deleting its error entry. Other fields'
// errors are never touched, so a message the user has seen stays
// visible until the offending field itself changes.
func (form *FormModel) SetField(field Field, value string) {
	switch field {
	case FieldName:
		form.draft.Name = value
	case FieldEmail:
		form.draft.Email = value
	case FieldPosition:
		form.draft.Position = value
	case FieldSalary:
		form.draft.Salary = value
	case FieldDepartment:
		form.draft.DepartmentID = value
	case FieldTransport:
		// Boolean field; use SetTransport.
		return
	default:
		return
	}

	if message := validateField(field, form.fieldValue(field)); message != "" {
		form.fieldErrors[field] = message
	} else {
		delete(form.fieldErrors, field)
	}
}

// SetTransport toggles the transport allowance flag. The flag has no
// validation rule so fieldErrors is untouched.
func (form *FormModel) SetTransport(enabled bool) {
	form.draft.Transport = enabled
}

// fieldValue returns the draft's raw value for a text field.
func (form *FormModel) fieldValue(field Field) string {
	switch field {
	case FieldName:
		return form.draft.Name
	case FieldEmail:
		return form.draft.Email
	case FieldPosition:
		return form.draft.Position
	case FieldSalary:
		return form.draft.Salary
	case FieldDepartment:
		return form.draft.DepartmentID
	default:
		return ""
	}
}

// LoadForEdit copies an employee's editable attributes into the draft
// and switches to edit mode. Validation is not re-run: a stored record
// was valid when it was saved, and flashing errors at the user for
// data they have not touched yet would be noise.
func (form *FormModel) LoadForEdit(employee roster.Employee) {
	form.draft = Draft{
		Name:         employee.Name,
		Email:        employee.Email,
		Position:     employee.Position,
		Salary:       employee.Salary,
		Transport:    employee.TransportAllowance,
		DepartmentID: employee.DepartmentID,
	}
	form.mode = ModeEdit
	form.editID = employee.ID
	form.fieldErrors = make(map[Field]string)
}

// Reset clears every draft field to its zero value and returns the
// form to create mode. Calling Reset from edit mode yields exactly the
// same state as a freshly constructed form.
func (form *FormModel) Reset() {
	form.draft = Draft{}
	form.mode = ModeCreate
	form.editID = ""
	form.fieldErrors = make(map[Field]string)
}

// validateAll runs every field's validator against the current draft,
// rebuilding fieldErrors from scratch. Called by IsValid so that the
// submit guard never acts on validation state that predates the latest
// edits.
func (form *FormModel) validateAll() {
	form.fieldErrors = make(map[Field]string)
	for field := Field(0); field < fieldCount; field++ {
		if message := validateField(field, form.fieldValue(field)); message != "" {
			form.fieldErrors[field] = message
		}
	}
}

// IsValid re-validates the whole draft and reports whether submission
// is permitted: every required field non-empty and no field errors.
func (form *FormModel) IsValid() bool {
	form.validateAll()
	return len(form.fieldErrors) == 0 &&
		form.draft.Name != "" &&
		form.draft.Email != "" &&
		form.draft.Position != "" &&
		form.draft.Salary != "" &&
		form.draft.DepartmentID != ""
}

// Payload converts the draft into the wire representation for a
// create or update call. The salary text is parsed as a decimal and
// re-rendered in canonical form ("5000,50" becomes "5000.5", stray
// whitespace and trailing zeros are dropped). Returns an error
// when the salary is not a number; callers should surface that as a
// field error rather than submitting.
func (form *FormModel) Payload() (roster.EmployeePayload, error) {
	salary, err := parseSalary(form.draft.Salary)
	if err != nil {
		return roster.EmployeePayload{}, err
	}
	return roster.EmployeePayload{
		Name:               form.draft.Name,
		Email:              form.draft.Email,
		Position:           form.draft.Position,
		Salary:             salary.String(),
		TransportAllowance: form.draft.Transport,
		DepartmentID:       form.draft.DepartmentID,
	}, nil
}

// parseSalary coerces the salary text to a decimal. Accepts a comma
// as the decimal separator since the list pane displays salaries that
// way and users copy what they see.
func parseSalary(text string) (decimal.Decimal, error) {
	normalized := strings.TrimSpace(text)
	normalized = strings.Replace(normalized, ",", ".", 1)
	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("salary %q is not a number", text)
	}
	if value.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("salary must not be negative")
	}
	return value, nil
}
