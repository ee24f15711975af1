package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access methods for payroll.
// All methods include tenantID parameter to prevent cross-tenant data access.
type PayrollRepository interface {
	// Create returns ErrPayrollRecordAlreadyExists when the tenant already
	// holds a record for the same employee and period.
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, tenantID string, id string) (Record, error)
	GetByEmployeePeriod(ctx context.Context, tenantID string, employeeID string, periodStart, periodEnd time.Time) (Record, error)
	List(ctx context.Context, tenantID string, filter PayrollFilter) ([]Record, error)
	Update(ctx context.Context, record Record) (Record, error)
	Delete(ctx context.Context, tenantID string, id string) error
}
