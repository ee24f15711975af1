package invoice

import "github.com/cmlabs-hris/payroll-core-go/internal/pkg/apperror"

var (
	ErrInvoiceNotFound   = apperror.NotFound("invoice not found")
	ErrInvoiceIDRequired = apperror.InvalidArgument("invoice id is required")

	// ErrAllocationContention is returned by stores when a number
	// reservation lost a race and may be retried.
	ErrAllocationContention = apperror.Conflict("invoice number reservation contended")

	// ErrInvoiceNumberConflict is returned once retries are exhausted.
	ErrInvoiceNumberConflict = apperror.Conflict("could not allocate an invoice number, please retry")
)
