package company

import "github.com/cmlabs-hris/payroll-core-go/internal/pkg/apperror"

var (
	ErrCompanyNotFound   = apperror.NotFound("company not found")
	ErrCompanyNameExists = apperror.Conflict("company name already exists")
	ErrCompanyIDRequired = apperror.InvalidArgument("company id is required")
)
