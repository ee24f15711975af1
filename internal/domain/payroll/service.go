package payroll

import "context"

type PayrollService interface {
	// GeneratePayroll creates one record per eligible employee for the
	// period. Employees that cannot be paid are reported in the response
	// instead of failing the run.
	GeneratePayroll(ctx context.Context, tenantID string, req GeneratePayrollRequest) (GeneratePayrollResponse, error)
	GetPayroll(ctx context.Context, tenantID string, req ListPayrollRequest) ([]PayrollRecordResponse, error)
	GetPayrollRecord(ctx context.Context, tenantID string, id string) (PayrollRecordResponse, error)
	UpdatePayroll(ctx context.Context, tenantID string, req UpdatePayrollRecordRequest) (PayrollRecordResponse, error)
	DeletePayroll(ctx context.Context, tenantID string, id string) error

	// BuildReport selects the records inside the requested window. Bulk
	// reports carry a summary rounded to currency precision.
	BuildReport(ctx context.Context, tenantID string, req PayrollReportRequest) (PayrollReport, error)
}
