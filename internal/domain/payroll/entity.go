package payroll

import (
	"time"

	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/apperror"
)

// Record - Generated payroll result for one employee and period.
// GrossSalary is always BasicSalary + OvertimePay and NetSalary is always
// GrossSalary - Tax.
type Record struct {
	ID           string
	TenantID     string
	EmployeeID   string
	EmployeeName string
	PeriodStart  time.Time
	PeriodEnd    time.Time
	BasicSalary  float64
	OvertimePay  float64
	GrossSalary  float64
	Tax          float64
	NetSalary    float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AttendanceTotals - attendance summed per employee over a period
type AttendanceTotals struct {
	EmployeeID    string
	TotalHours    float64
	TotalOvertime float64
}

// Failure describes an employee left out of a generation run.
type Failure struct {
	EmployeeID   string        `json:"employee_id"`
	EmployeeName string        `json:"employee_name,omitempty"`
	Kind         apperror.Kind `json:"kind"`
	Message      string        `json:"message"`
}
