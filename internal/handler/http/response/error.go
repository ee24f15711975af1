package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/validator"
)

// HandleError maps classified errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Field errors keep their per-field details
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch apperror.KindOf(err) {
	case apperror.KindNotFound:
		NotFound(w, apperror.Message(err))
	case apperror.KindInvalidArgument:
		BadRequest(w, apperror.Message(err), nil)
	case apperror.KindInvalidTransition:
		InvalidTransition(w, apperror.Message(err))
	case apperror.KindConflict:
		Conflict(w, apperror.Message(err))
	default:
		// Driver and network errors are not shown to clients
		slog.Error("upstream failure", slog.Any("error", err))
		BadGateway(w, "A backing service failed, please retry")
	}
}
