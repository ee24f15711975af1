package attendance

import (
	"time"

	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/validator"
)

type RecordAttendanceRequest struct {
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	HoursWorked   float64 `json:"hours_worked"`
	OvertimeHours float64 `json:"overtime_hours"`
}

func (r *RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "is required")
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "must be a valid date in YYYY-MM-DD format")
	}
	if !validator.IsNonNegativeAmount(r.HoursWorked) || r.HoursWorked > 24 {
		errs.Add("hours_worked", "must be between 0 and 24")
	}
	if !validator.IsNonNegativeAmount(r.OvertimeHours) || r.OvertimeHours > 24 {
		errs.Add("overtime_hours", "must be between 0 and 24")
	}

	return errs.Err()
}

type ListAttendanceRequest struct {
	From       string
	To         string
	EmployeeID *string
}

func (r *ListAttendanceRequest) Validate() (DateRange, error) {
	var errs validator.ValidationErrors
	from, to, _ := validator.DateRange(&errs, "from", r.From, "to", r.To)
	if err := errs.Err(); err != nil {
		return DateRange{}, err
	}
	return DateRange{From: from, To: to}, nil
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	HoursWorked   float64 `json:"hours_worked"`
	OvertimeHours float64 `json:"overtime_hours"`
	CreatedAt     string  `json:"created_at"`
}

func NewAttendanceResponse(r Record) AttendanceResponse {
	return AttendanceResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		Date:          r.Date.Format(validator.DateLayout),
		HoursWorked:   r.HoursWorked,
		OvertimeHours: r.OvertimeHours,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}
