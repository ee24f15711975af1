package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRates_Calculate(t *testing.T) {
	rates := DefaultRates()

	tests := []struct {
		name          string
		salary        float64
		overtimeHours float64
		want          Pay
	}{
		{
			name:          "ten overtime hours on 3000",
			salary:        3000,
			overtimeHours: 10,
			want: Pay{
				OvertimeRate: 28.125,
				BasicSalary:  3000,
				OvertimePay:  281.25,
				GrossSalary:  3281.25,
				Tax:          656.25,
				NetSalary:    2625,
			},
		},
		{
			name:          "no overtime",
			salary:        4000,
			overtimeHours: 0,
			want: Pay{
				OvertimeRate: 37.5,
				BasicSalary:  4000,
				OvertimePay:  0,
				GrossSalary:  4000,
				Tax:          800,
				NetSalary:    3200,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rates.Calculate(tt.salary, tt.overtimeHours)
			assert.InDelta(t, tt.want.OvertimeRate, got.OvertimeRate, 1e-9)
			assert.InDelta(t, tt.want.OvertimePay, got.OvertimePay, 1e-9)
			assert.InDelta(t, tt.want.GrossSalary, got.GrossSalary, 1e-9)
			assert.InDelta(t, tt.want.Tax, got.Tax, 1e-9)
			assert.InDelta(t, tt.want.NetSalary, got.NetSalary, 1e-9)
			assert.Equal(t, tt.want.BasicSalary, got.BasicSalary)
		})
	}
}

func TestRates_CalculateInvariants(t *testing.T) {
	rates := DefaultRates()
	salaries := []float64{1, 1234.56, 3000, 7777.77, 125000}
	overtime := []float64{0, 0.5, 3.25, 10, 47.75}

	for _, salary := range salaries {
		for _, ot := range overtime {
			pay := rates.Calculate(salary, ot)
			assert.Equal(t, pay.BasicSalary+pay.OvertimePay, pay.GrossSalary)
			assert.Equal(t, pay.GrossSalary*rates.TaxRate, pay.Tax)
			assert.Equal(t, pay.GrossSalary-pay.Tax, pay.NetSalary)
		}
	}
}

func TestRates_CustomConstants(t *testing.T) {
	rates := Rates{StandardHours: 173, OvertimeMultiplier: 2, TaxRate: 0.11}
	require.NoError(t, rates.Validate())

	pay := rates.Calculate(1730, 5)
	assert.InDelta(t, 20.0, pay.OvertimeRate, 1e-9)
	assert.InDelta(t, 100.0, pay.OvertimePay, 1e-9)
	assert.InDelta(t, 1830*0.11, pay.Tax, 1e-9)
}

func TestRates_Validate(t *testing.T) {
	assert.NoError(t, DefaultRates().Validate())
	assert.Error(t, Rates{StandardHours: 0, OvertimeMultiplier: 1.5, TaxRate: 0.2}.Validate())
	assert.Error(t, Rates{StandardHours: 160, OvertimeMultiplier: -1, TaxRate: 0.2}.Validate())
	assert.Error(t, Rates{StandardHours: 160, OvertimeMultiplier: 1.5, TaxRate: 1.5}.Validate())
}

func TestRates_Settle(t *testing.T) {
	pay := DefaultRates().Settle(2500, 500, 0)
	assert.Equal(t, 3000.0, pay.GrossSalary)
	assert.InDelta(t, 600.0, pay.Tax, 1e-9)
	assert.InDelta(t, 2400.0, pay.NetSalary, 1e-9)
}
