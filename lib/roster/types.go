// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package roster

// Employee is a stored employee record as returned by the directory
// service. The ID and hire date are assigned server-side; the client
// never synthesizes either.
//
// Salary is text on the wire — the service stores it as a formatted
// currency amount (e.g. "5000.00") and the client parses it only for
// display formatting.
type Employee struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Position           string `json:"position"`
	Salary             string `json:"salary"`
	TransportAllowance bool   `json:"transportAllowance"`
	HireDate           string `json:"hireDate,omitempty"`
	DepartmentID       string `json:"department_id"`
	DepartmentName     string `json:"department_name,omitempty"`
}

// Department is a read-only reference record. The form's department
// selector is populated from the full department list, fetched once
// per form mount.
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EmployeePayload is the request body for create and update calls: an
// employee draft without the server-assigned fields. Salary carries
// the canonical decimal string produced from the form's raw input at
// submit time.
type EmployeePayload struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Position           string `json:"position"`
	Salary             string `json:"salary"`
	TransportAllowance bool   `json:"transportAllowance"`
	DepartmentID       string `json:"department_id"`
}
