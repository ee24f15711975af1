package employee

import "context"

// EmployeeRepository defines data access methods for employees.
// All methods include tenantID parameter to prevent cross-tenant data access.
type EmployeeRepository interface {
	List(ctx context.Context, tenantID string, filter EmployeeFilter) ([]Employee, error)
	GetByID(ctx context.Context, tenantID string, id string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, updated Employee) (Employee, error)
	Delete(ctx context.Context, tenantID string, id string) error
}
