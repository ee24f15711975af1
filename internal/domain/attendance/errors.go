package attendance

import "github.com/cmlabs-hris/payroll-core-go/internal/pkg/apperror"

var ErrAttendanceExists = apperror.Conflict("attendance already recorded for this employee and date")
