// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rosterui

import (
	"regexp"
	"strings"
)

// Field identifies one editable attribute of the employee draft.
// Using a typed enum rather than string field names lets the validator
// table and the form's focus cycling be checked for exhaustiveness.
type Field int

const (
	// FieldName is the employee's full name.
	FieldName Field = iota
	// FieldEmail is the employee's email address.
	FieldEmail
	// FieldPosition is the job title.
	FieldPosition
	// FieldSalary is the monthly salary as entered (free text until
	// submission, when it is coerced to a decimal).
	FieldSalary
	// FieldTransport is the transport allowance flag. Always valid.
	FieldTransport
	// FieldDepartment is the department selection.
	FieldDepartment

	// fieldCount is the number of fields, for iteration.
	fieldCount
)

// String returns the field's display label.
func (field Field) String() string {
	switch field {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldPosition:
		return "Position"
	case FieldSalary:
		return "Salary"
	case FieldTransport:
		return "Transport allowance"
	case FieldDepartment:
		return "Department"
	default:
		return "Unknown"
	}
}

// emailPattern requires a non-whitespace run before the @, one after
// it, and one after a final dot. Deliberately loose: the server owns
// real address validation, this only catches obvious typos.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// validator checks one field's draft value and returns an error
// message, or "" when the value is acceptable.
type validator func(value string) string

// fieldValidators maps each text field to its advisory check.
// FieldTransport has no entry: a boolean cannot be invalid.
var fieldValidators = map[Field]validator{
	FieldName: func(value string) string {
		if strings.TrimSpace(value) == "" {
			return "name is required"
		}
		return ""
	},
	FieldEmail: func(value string) string {
		if value == "" {
			return "email is required"
		}
		if !emailPattern.MatchString(value) {
			return "email must look like name@example.com"
		}
		return ""
	},
	FieldPosition: func(value string) string {
		if value == "" {
			return "position is required"
		}
		return ""
	},
	FieldSalary: func(value string) string {
		if value == "" {
			return "salary is required"
		}
		return ""
	},
	FieldDepartment: func(value string) string {
		if value == "" {
			return "department is required"
		}
		return ""
	},
}

// validateField runs the field's validator against a value. Fields
// without a validator (the transport flag) always pass.
func validateField(field Field, value string) string {
	check, ok := fieldValidators[field]
	if !ok {
		return ""
	}
	return check(value)
}
