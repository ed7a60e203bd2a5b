// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/staffdesk/lib/clock"
)

// Fixture is an offline snapshot of the directory: the file format for
// staffdesk's --file mode. The file is JSON extended with // line
// comments, /* block comments */, and trailing commas, so demo
// fixtures can be annotated.
type Fixture struct {
	Employees   []Employee   `json:"employees"`
	Departments []Department `json:"departments"`
}

// ParseFixture strips JSONC comments and trailing commas from data,
// then unmarshals the result into a Fixture.
func ParseFixture(data []byte) (*Fixture, error) {
	stripped := jsonc.ToJSON(data)

	var fixture Fixture
	if err := json.Unmarshal(stripped, &fixture); err != nil {
		return nil, fmt.Errorf("roster: parsing fixture: %w", err)
	}
	return &fixture, nil
}

// LoadFixtureFile reads and parses a fixture file from disk.
func LoadFixtureFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roster: reading fixture: %w", err)
	}
	return ParseFixture(data)
}

// FixtureGateway serves the directory operations from an in-memory
// snapshot, playing the role of the remote service for offline demos
// and tests. Mutations behave like the real service: create assigns an
// ID and hire date, and create/update resolve the department name from
// the department list. Nothing is written back to the fixture file.
type FixtureGateway struct {
	mu          sync.Mutex
	employees   []Employee
	departments []Department
	clock       clock.Clock
	nextID      int
}

// NewFixtureGateway creates a gateway serving the given fixture. The
// clock assigns hire dates on create; pass clock.Real() outside tests.
func NewFixtureGateway(fixture *Fixture, clk clock.Clock) *FixtureGateway {
	gateway := &FixtureGateway{
		employees:   append([]Employee(nil), fixture.Employees...),
		departments: append([]Department(nil), fixture.Departments...),
		clock:       clk,
		nextID:      len(fixture.Employees) + 1,
	}
	for index := range gateway.employees {
		gateway.employees[index].DepartmentName = gateway.departmentName(gateway.employees[index].DepartmentID)
	}
	return gateway
}

// ListEmployees returns a copy of the current employee collection.
func (gateway *FixtureGateway) ListEmployees(ctx context.Context) ([]Employee, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	return append([]Employee(nil), gateway.employees...), nil
}

// CreateEmployee stores a new record with an assigned ID and the
// current time as hire date, mirroring the server-side behavior.
func (gateway *FixtureGateway) CreateEmployee(ctx context.Context, payload EmployeePayload) (Employee, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	created := Employee{
		ID:                 fmt.Sprintf("emp-%d", gateway.nextID),
		Name:               payload.Name,
		Email:              payload.Email,
		Position:           payload.Position,
		Salary:             payload.Salary,
		TransportAllowance: payload.TransportAllowance,
		HireDate:           gateway.clock.Now().UTC().Format(time.RFC3339),
		DepartmentID:       payload.DepartmentID,
		DepartmentName:     gateway.departmentName(payload.DepartmentID),
	}
	gateway.nextID++
	gateway.employees = append(gateway.employees, created)
	return created, nil
}

// UpdateEmployee replaces the editable fields of the record with the
// given ID. The hire date is server-assigned and survives updates.
func (gateway *FixtureGateway) UpdateEmployee(ctx context.Context, employeeID string, payload EmployeePayload) (Employee, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	for index := range gateway.employees {
		if gateway.employees[index].ID != employeeID {
			continue
		}
		employee := &gateway.employees[index]
		employee.Name = payload.Name
		employee.Email = payload.Email
		employee.Position = payload.Position
		employee.Salary = payload.Salary
		employee.TransportAllowance = payload.TransportAllowance
		employee.DepartmentID = payload.DepartmentID
		employee.DepartmentName = gateway.departmentName(payload.DepartmentID)
		return *employee, nil
	}
	return Employee{}, &APIError{StatusCode: 404, Message: fmt.Sprintf("employee %s not found", employeeID)}
}

// DeleteEmployee removes the record with the given ID.
func (gateway *FixtureGateway) DeleteEmployee(ctx context.Context, employeeID string) error {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()

	for index := range gateway.employees {
		if gateway.employees[index].ID == employeeID {
			gateway.employees = append(gateway.employees[:index], gateway.employees[index+1:]...)
			return nil
		}
	}
	return &APIError{StatusCode: 404, Message: fmt.Sprintf("employee %s not found", employeeID)}
}

// ListDepartments returns a copy of the department reference list.
func (gateway *FixtureGateway) ListDepartments(ctx context.Context) ([]Department, error) {
	gateway.mu.Lock()
	defer gateway.mu.Unlock()
	return append([]Department(nil), gateway.departments...), nil
}

// departmentName resolves a department ID to its name, or "" when the
// ID references no loaded department. Callers hold the mutex.
func (gateway *FixtureGateway) departmentName(departmentID string) string {
	for _, department := range gateway.departments {
		if department.ID == departmentID {
			return department.Name
		}
	}
	return ""
}
