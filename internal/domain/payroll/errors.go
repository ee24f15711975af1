package payroll

import "github.com/cmlabs-hris/payroll-core-go/internal/pkg/apperror"

var (
	ErrPayrollRecordNotFound      = apperror.NotFound("payroll record not found")
	ErrPayrollRecordAlreadyExists = apperror.Conflict("payroll record already exists for this employee and period")
	ErrPayrollIDRequired          = apperror.InvalidArgument("payroll record id is required")
	ErrInvalidCompensation        = apperror.InvalidArgument("employee has no valid monthly salary")
)
