package payroll

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []Record {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	return []Record{
		{ID: "p1", EmployeeID: "e1", EmployeeName: "Ada", PeriodStart: start, PeriodEnd: end,
			BasicSalary: 3000, OvertimePay: 281.25, GrossSalary: 3281.25, Tax: 656.25, NetSalary: 2625},
		{ID: "p2", EmployeeID: "e2", EmployeeName: "Linus", PeriodStart: start, PeriodEnd: end,
			BasicSalary: 1000.005, OvertimePay: 0, GrossSalary: 1000.005, Tax: 200.001, NetSalary: 800.004},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRecords())

	assert.Equal(t, 2, s.TotalEmployees)
	assert.Equal(t, "4000.01", s.TotalBasicSalary.StringFixed(2))
	assert.Equal(t, "281.25", s.TotalOvertimePay.StringFixed(2))
	assert.Equal(t, "4281.26", s.TotalGrossSalary.StringFixed(2))
	assert.Equal(t, "856.25", s.TotalTax.StringFixed(2))
	assert.Equal(t, "3425.00", s.TotalNetSalary.StringFixed(2))
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalEmployees)
	assert.Equal(t, "0.00", s.TotalNetSalary.StringFixed(2))
}

func TestPayrollReport_CSVRecords(t *testing.T) {
	records := sampleRecords()
	var responses []PayrollRecordResponse
	for _, r := range records {
		responses = append(responses, NewPayrollRecordResponse(r))
	}

	t.Run("individual", func(t *testing.T) {
		report := PayrollReport{Records: responses[:1]}
		rows := report.CSVRecords()
		require.Len(t, rows, 2)
		assert.Equal(t, ReportHeader, rows[0])
		assert.Equal(t, []string{"e1", "Ada", "2024-01-01", "2024-01-31", "3000", "281.25", "3281.25", "656.25", "2625"}, rows[1])
	})

	t.Run("bulk", func(t *testing.T) {
		summary := Summarize(records)
		report := PayrollReport{Bulk: true, Records: responses, Summary: &summary}
		rows := report.CSVRecords()
		require.Len(t, rows, 1+2+8)
		assert.Equal(t, []string{"Summary"}, rows[4])
		assert.Equal(t, []string{"Total Employees", "2"}, rows[5])
		assert.Equal(t, []string{"Total Net Salary", "3425.00"}, rows[10])
	})
}

func TestPayrollReportRequest_Validate(t *testing.T) {
	req := PayrollReportRequest{StartDate: "2024-01-01", EndDate: "2024-01-31", EmployeeID: "all"}
	filter, err := req.Validate()
	require.NoError(t, err)
	assert.True(t, req.IsBulk())
	assert.Nil(t, filter.EmployeeID)
	require.NotNil(t, filter.From)
	require.NotNil(t, filter.To)

	req.EmployeeID = "e1"
	filter, err = req.Validate()
	require.NoError(t, err)
	assert.False(t, req.IsBulk())
	require.NotNil(t, filter.EmployeeID)
	assert.Equal(t, "e1", *filter.EmployeeID)
	assert.Equal(t, "payroll_report_e1_2024-01-01_2024-01-31.csv", ReportFilename(req))

	bad := PayrollReportRequest{StartDate: "2024-02-01", EndDate: "2024-01-01"}
	_, err = bad.Validate()
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))
}

func TestGeneratePayrollRequest_Validate(t *testing.T) {
	all := AllEmployees
	req := GeneratePayrollRequest{PeriodStart: "2024-01-01", PeriodEnd: "2024-01-31", EmployeeID: &all}
	period, err := req.Validate()
	require.NoError(t, err)
	assert.Nil(t, req.TargetEmployee())
	assert.Equal(t, 31, int(period.To.Sub(period.From).Hours()/24)+1)

	for _, tc := range []struct{ start, end string }{
		{"2024-01-31", "2024-01-01"},
		{"2024-01-01", ""},
		{"January", "2024-01-31"},
	} {
		req := GeneratePayrollRequest{PeriodStart: tc.start, PeriodEnd: tc.end}
		_, err := req.Validate()
		assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err), "%s..%s", tc.start, tc.end)
	}
}

func TestUpdatePayrollRecordRequest_Validate(t *testing.T) {
	basic := 2000.0
	assert.NoError(t, (&UpdatePayrollRecordRequest{ID: "p1", BasicSalary: &basic}).Validate())
	assert.Error(t, (&UpdatePayrollRecordRequest{ID: "p1"}).Validate())
	assert.Error(t, (&UpdatePayrollRecordRequest{BasicSalary: &basic}).Validate())

	negative := -1.0
	assert.Error(t, (&UpdatePayrollRecordRequest{ID: "p1", OvertimePay: &negative}).Validate())
}
