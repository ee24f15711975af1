package payroll

import (
	"fmt"

	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/validator"
)

// Rates are the business constants of the pay calculation.
type Rates struct {
	StandardHours      float64
	OvertimeMultiplier float64
	TaxRate            float64
}

func DefaultRates() Rates {
	return Rates{
		StandardHours:      160,
		OvertimeMultiplier: 1.5,
		TaxRate:            0.20,
	}
}

func (r Rates) Validate() error {
	if !validator.IsPositiveAmount(r.StandardHours) {
		return fmt.Errorf("standard hours must be positive, got %v", r.StandardHours)
	}
	if !validator.IsNonNegativeAmount(r.OvertimeMultiplier) {
		return fmt.Errorf("overtime multiplier must not be negative, got %v", r.OvertimeMultiplier)
	}
	if !validator.IsNonNegativeAmount(r.TaxRate) || r.TaxRate > 1 {
		return fmt.Errorf("tax rate must be between 0 and 1, got %v", r.TaxRate)
	}
	return nil
}

// Pay is the outcome of one calculation. Values are unrounded.
type Pay struct {
	OvertimeRate float64
	BasicSalary  float64
	OvertimePay  float64
	GrossSalary  float64
	Tax          float64
	NetSalary    float64
}

// Calculate derives pay from a monthly salary and the overtime hours worked
// in the period.
func (r Rates) Calculate(monthlySalary, overtimeHours float64) Pay {
	overtimeRate := monthlySalary / r.StandardHours * r.OvertimeMultiplier
	overtimePay := overtimeHours * overtimeRate
	return r.Settle(monthlySalary, overtimePay, overtimeRate)
}

// Settle recomputes gross, tax and net from basic salary and overtime pay.
func (r Rates) Settle(basicSalary, overtimePay, overtimeRate float64) Pay {
	gross := basicSalary + overtimePay
	tax := gross * r.TaxRate
	return Pay{
		OvertimeRate: overtimeRate,
		BasicSalary:  basicSalary,
		OvertimePay:  overtimePay,
		GrossSalary:  gross,
		Tax:          tax,
		NetSalary:    gross - tax,
	}
}
