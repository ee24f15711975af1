package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees lists the tenant's employees, optionally filtered
	ListEmployees(ctx context.Context, tenantID string, filter EmployeeFilter) ([]EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, tenantID string, id string) (EmployeeResponse, error)

	// CreateEmployee creates a new employee
	CreateEmployee(ctx context.Context, tenantID string, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee applies a partial update
	UpdateEmployee(ctx context.Context, tenantID string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes the employee record. Payroll and time-off
	// records keep their denormalized employee name.
	DeleteEmployee(ctx context.Context, tenantID string, id string) error

	// AgeDistribution counts employees per decade of age
	AgeDistribution(ctx context.Context, tenantID string) ([]AgeBucket, error)
}
