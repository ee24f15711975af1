package timeoff

import "github.com/cmlabs-hris/payroll-core-go/internal/pkg/apperror"

var (
	ErrTimeOffNotFound   = apperror.NotFound("time-off request not found")
	ErrTimeOffIDRequired = apperror.InvalidArgument("time-off request id is required")
	ErrInvalidTransition = apperror.InvalidTransition("time-off request is no longer pending")
	ErrDeletePending     = apperror.InvalidTransition("pending time-off requests cannot be deleted")
)
