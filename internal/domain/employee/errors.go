package employee

import "github.com/cmlabs-hris/payroll-core-go/internal/pkg/apperror"

var (
	ErrEmployeeNotFound   = apperror.NotFound("employee not found")
	ErrEmailExists        = apperror.Conflict("email already registered in this tenant")
	ErrEmployeeIDRequired = apperror.InvalidArgument("employee id is required")
)
