package payroll

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/validator"
)

// AllEmployees selects every employee where an employee id is accepted.
const AllEmployees = "all"

// ========== GENERATION DTOs ==========

type GeneratePayrollRequest struct {
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	EmployeeID  *string `json:"employee_id,omitempty"` // nil or "all" = every employee
}

// Validate checks the request and returns the parsed period.
func (r *GeneratePayrollRequest) Validate() (attendance.DateRange, error) {
	var errs validator.ValidationErrors

	from, to, _ := validator.DateRange(&errs, "period_start", r.PeriodStart, "period_end", r.PeriodEnd)
	if err := errs.Err(); err != nil {
		return attendance.DateRange{}, err
	}
	return attendance.DateRange{From: from, To: to}, nil
}

// TargetEmployee returns the single employee requested, or nil for all.
func (r *GeneratePayrollRequest) TargetEmployee() *string {
	return singleEmployee(r.EmployeeID)
}

type GeneratePayrollResponse struct {
	CreatedIDs []string  `json:"created_ids"`
	Failures   []Failure `json:"failures"`
}

// ========== RECORD DTOs ==========

type ListPayrollRequest struct {
	EmployeeID  *string
	PeriodStart *string
	PeriodEnd   *string
}

// PayrollFilter narrows a listing. From matches period_start >= From and
// To matches period_end <= To.
type PayrollFilter struct {
	EmployeeID *string
	From       *time.Time
	To         *time.Time
}

func (r *ListPayrollRequest) Validate() (PayrollFilter, error) {
	var errs validator.ValidationErrors
	filter := PayrollFilter{EmployeeID: singleEmployee(r.EmployeeID)}

	if r.PeriodStart != nil && *r.PeriodStart != "" {
		if t, ok := validator.IsValidDate(*r.PeriodStart); ok {
			filter.From = &t
		} else {
			errs.Add("period_start", "must be a valid date in YYYY-MM-DD format")
		}
	}
	if r.PeriodEnd != nil && *r.PeriodEnd != "" {
		if t, ok := validator.IsValidDate(*r.PeriodEnd); ok {
			filter.To = &t
		} else {
			errs.Add("period_end", "must be a valid date in YYYY-MM-DD format")
		}
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		errs.Add("period_end", "must not be before period_start")
	}

	if err := errs.Err(); err != nil {
		return PayrollFilter{}, err
	}
	return filter, nil
}

// UpdatePayrollRecordRequest is a correction edit. Gross, tax and net are
// always recomputed from the result.
type UpdatePayrollRecordRequest struct {
	ID           string   `json:"-"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	BasicSalary  *float64 `json:"basic_salary,omitempty"`
	OvertimePay  *float64 `json:"overtime_pay,omitempty"`
}

func (r *UpdatePayrollRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "is required")
	}
	if r.EmployeeName != nil && validator.IsEmpty(*r.EmployeeName) {
		errs.Add("employee_name", "must not be empty")
	}
	if r.BasicSalary != nil && !validator.IsNonNegativeAmount(*r.BasicSalary) {
		errs.Add("basic_salary", "must be a non-negative number")
	}
	if r.OvertimePay != nil && !validator.IsNonNegativeAmount(*r.OvertimePay) {
		errs.Add("overtime_pay", "must be a non-negative number")
	}
	if r.EmployeeName == nil && r.BasicSalary == nil && r.OvertimePay == nil {
		errs.Add("body", "at least one field must be provided")
	}

	return errs.Err()
}

type PayrollRecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	PeriodStart  string  `json:"period_start"`
	PeriodEnd    string  `json:"period_end"`
	BasicSalary  float64 `json:"basic_salary"`
	OvertimePay  float64 `json:"overtime_pay"`
	GrossSalary  float64 `json:"gross_salary"`
	Tax          float64 `json:"tax"`
	NetSalary    float64 `json:"net_salary"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func NewPayrollRecordResponse(r Record) PayrollRecordResponse {
	return PayrollRecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		PeriodStart:  r.PeriodStart.Format(validator.DateLayout),
		PeriodEnd:    r.PeriodEnd.Format(validator.DateLayout),
		BasicSalary:  r.BasicSalary,
		OvertimePay:  r.OvertimePay,
		GrossSalary:  r.GrossSalary,
		Tax:          r.Tax,
		NetSalary:    r.NetSalary,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
}

// ========== REPORT DTOs ==========

type PayrollReportRequest struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	EmployeeID string `json:"employee_id,omitempty"` // "" or "all" = bulk report
}

func (r *PayrollReportRequest) Validate() (PayrollFilter, error) {
	var errs validator.ValidationErrors

	from, to, _ := validator.DateRange(&errs, "start_date", r.StartDate, "end_date", r.EndDate)
	if err := errs.Err(); err != nil {
		return PayrollFilter{}, err
	}
	return PayrollFilter{
		EmployeeID: singleEmployee(&r.EmployeeID),
		From:       &from,
		To:         &to,
	}, nil
}

// IsBulk reports whether the report covers every employee.
func (r *PayrollReportRequest) IsBulk() bool {
	return singleEmployee(&r.EmployeeID) == nil
}

func singleEmployee(id *string) *string {
	if id == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*id)
	if trimmed == "" || trimmed == AllEmployees {
		return nil
	}
	return &trimmed
}
