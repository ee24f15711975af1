package employee

import (
	"time"

	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Department    string  `json:"department"`
	JobTitle      string  `json:"job_title"`
	ContractType  string  `json:"contract_type"`
	MonthlySalary float64 `json:"monthly_salary"`
	WorkHours     float64 `json:"work_hours"`
	Age           int     `json:"age"`
	DOB           *string `json:"dob,omitempty"`
	Gender        string  `json:"gender"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	StartDate     *string `json:"start_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "is required")
	}
	if validator.IsEmpty(r.Email) {
		errs.Add("email", "is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "must be a valid email address")
	}
	if !validator.IsNonNegativeAmount(r.MonthlySalary) {
		errs.Add("monthly_salary", "must be a non-negative number")
	}
	if !validator.IsNonNegativeAmount(r.WorkHours) {
		errs.Add("work_hours", "must be a non-negative number")
	}
	if r.Age < 0 || r.Age > 150 {
		errs.Add("age", "must be between 0 and 150")
	}
	validateOptionalDate(&errs, "dob", r.DOB)
	validateOptionalDate(&errs, "start_date", r.StartDate)

	return errs.Err()
}

// ToEntity builds the employee for tenantID. Validate must have passed.
func (r *CreateEmployeeRequest) ToEntity(tenantID string) Employee {
	return Employee{
		TenantID:      tenantID,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Department:    r.Department,
		JobTitle:      r.JobTitle,
		ContractType:  r.ContractType,
		MonthlySalary: r.MonthlySalary,
		WorkHours:     r.WorkHours,
		Age:           r.Age,
		DOB:           parseOptionalDate(r.DOB),
		Gender:        r.Gender,
		Address:       r.Address,
		City:          r.City,
		State:         r.State,
		StartDate:     parseOptionalDate(r.StartDate),
	}
}

type UpdateEmployeeRequest struct {
	ID            string   `json:"-"`
	Name          *string  `json:"name,omitempty"`
	Email         *string  `json:"email,omitempty"`
	Phone         *string  `json:"phone,omitempty"`
	Department    *string  `json:"department,omitempty"`
	JobTitle      *string  `json:"job_title,omitempty"`
	ContractType  *string  `json:"contract_type,omitempty"`
	MonthlySalary *float64 `json:"monthly_salary,omitempty"`
	WorkHours     *float64 `json:"work_hours,omitempty"`
	Age           *int     `json:"age,omitempty"`
	DOB           *string  `json:"dob,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	Address       *string  `json:"address,omitempty"`
	City          *string  `json:"city,omitempty"`
	State         *string  `json:"state,omitempty"`
	StartDate     *string  `json:"start_date,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "is required")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "must not be empty")
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs.Add("email", "must be a valid email address")
	}
	if r.MonthlySalary != nil && !validator.IsNonNegativeAmount(*r.MonthlySalary) {
		errs.Add("monthly_salary", "must be a non-negative number")
	}
	if r.WorkHours != nil && !validator.IsNonNegativeAmount(*r.WorkHours) {
		errs.Add("work_hours", "must be a non-negative number")
	}
	if r.Age != nil && (*r.Age < 0 || *r.Age > 150) {
		errs.Add("age", "must be between 0 and 150")
	}
	validateOptionalDate(&errs, "dob", r.DOB)
	validateOptionalDate(&errs, "start_date", r.StartDate)

	return errs.Err()
}

// Apply merges the set fields of r into e.
func (r *UpdateEmployeeRequest) Apply(e *Employee) {
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Email != nil {
		e.Email = *r.Email
	}
	if r.Phone != nil {
		e.Phone = *r.Phone
	}
	if r.Department != nil {
		e.Department = *r.Department
	}
	if r.JobTitle != nil {
		e.JobTitle = *r.JobTitle
	}
	if r.ContractType != nil {
		e.ContractType = *r.ContractType
	}
	if r.MonthlySalary != nil {
		e.MonthlySalary = *r.MonthlySalary
	}
	if r.WorkHours != nil {
		e.WorkHours = *r.WorkHours
	}
	if r.Age != nil {
		e.Age = *r.Age
	}
	if r.DOB != nil {
		e.DOB = parseOptionalDate(r.DOB)
	}
	if r.Gender != nil {
		e.Gender = *r.Gender
	}
	if r.Address != nil {
		e.Address = *r.Address
	}
	if r.City != nil {
		e.City = *r.City
	}
	if r.State != nil {
		e.State = *r.State
	}
	if r.StartDate != nil {
		e.StartDate = parseOptionalDate(r.StartDate)
	}
}

type EmployeeFilter struct {
	Department *string
	// Search matches a case-insensitive substring of the name.
	Search *string
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Department    string  `json:"department"`
	JobTitle      string  `json:"job_title"`
	ContractType  string  `json:"contract_type"`
	MonthlySalary float64 `json:"monthly_salary"`
	WorkHours     float64 `json:"work_hours"`
	Age           int     `json:"age"`
	DOB           *string `json:"dob,omitempty"`
	Gender        string  `json:"gender"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	StartDate     *string `json:"start_date,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		Department:    e.Department,
		JobTitle:      e.JobTitle,
		ContractType:  e.ContractType,
		MonthlySalary: e.MonthlySalary,
		WorkHours:     e.WorkHours,
		Age:           e.Age,
		DOB:           formatOptionalDate(e.DOB),
		Gender:        e.Gender,
		Address:       e.Address,
		City:          e.City,
		State:         e.State,
		StartDate:     formatOptionalDate(e.StartDate),
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     e.UpdatedAt.Format(time.RFC3339),
	}
}

func validateOptionalDate(errs *validator.ValidationErrors, field string, value *string) {
	if value == nil || *value == "" {
		return
	}
	if _, ok := validator.IsValidDate(*value); !ok {
		errs.Add(field, "must be a valid date in YYYY-MM-DD format")
	}
}

func parseOptionalDate(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	t, ok := validator.IsValidDate(*value)
	if !ok {
		return nil
	}
	return &t
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(validator.DateLayout)
	return &s
}
