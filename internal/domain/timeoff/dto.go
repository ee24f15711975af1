package timeoff

import (
	"time"

	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/validator"
)

type SubmitTimeOffRequest struct {
	EmployeeID string  `json:"employee_id"`
	LeaveType  string  `json:"leave_type"`
	LeaveFrom  string  `json:"leave_from"`
	LeaveTo    string  `json:"leave_to"`
	Days       float64 `json:"days"`
}

func (r *SubmitTimeOffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "is required")
	}
	if validator.IsEmpty(r.LeaveType) {
		errs.Add("leave_type", "is required")
	}
	from, to, ok := validator.DateRange(&errs, "leave_from", r.LeaveFrom, "leave_to", r.LeaveTo)
	if !validator.IsPositiveAmount(r.Days) {
		errs.Add("days", "must be greater than zero")
	} else if ok && r.Days > to.Sub(from).Hours()/24+1 {
		errs.Add("days", "must not exceed the number of days between leave_from and leave_to")
	}

	return errs.Err()
}

// ToEntity builds a Pending request. Validate must have passed.
func (r *SubmitTimeOffRequest) ToEntity(tenantID, employeeName string) Request {
	from, _ := validator.IsValidDate(r.LeaveFrom)
	to, _ := validator.IsValidDate(r.LeaveTo)
	return Request{
		TenantID:     tenantID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: employeeName,
		LeaveType:    r.LeaveType,
		LeaveFrom:    from,
		LeaveTo:      to,
		Days:         r.Days,
		Status:       StatusPending,
	}
}

type SetStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *SetStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "is required")
	}
	if !Status(r.Status).IsValid() {
		errs.Add("status", "must be one of Pending, Approved, Rejected")
	}

	return errs.Err()
}

type TimeOffFilter struct {
	EmployeeID *string
	Status     *Status
}

type TimeOffResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	LeaveType    string  `json:"leave_type"`
	LeaveFrom    string  `json:"leave_from"`
	LeaveTo      string  `json:"leave_to"`
	Days         float64 `json:"days"`
	Status       Status  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func NewTimeOffResponse(r Request) TimeOffResponse {
	return TimeOffResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		LeaveType:    r.LeaveType,
		LeaveFrom:    r.LeaveFrom.Format(validator.DateLayout),
		LeaveTo:      r.LeaveTo.Format(validator.DateLayout),
		Days:         r.Days,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
}
