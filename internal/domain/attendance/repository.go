package attendance

import "context"

// AttendanceRepository is append-only: there is no update or delete.
type AttendanceRepository interface {
	// Create stores a new record. A second record for the same employee and
	// day returns ErrAttendanceExists.
	Create(ctx context.Context, record Record) (Record, error)

	// ListByDateRange returns the tenant's records within the inclusive
	// range, optionally narrowed to one employee.
	ListByDateRange(ctx context.Context, tenantID string, dateRange DateRange, employeeID *string) ([]Record, error)
}
