package payroll

import (
	"strconv"

	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var ReportHeader = []string{
	"Employee ID", "Employee Name", "Start Date", "End Date",
	"Basic Salary", "Overtime Pay", "Gross Salary", "Tax", "Net Salary",
}

type PayrollReport struct {
	Bulk    bool                    `json:"bulk"`
	Records []PayrollRecordResponse `json:"records"`
	Summary *ReportSummary          `json:"summary,omitempty"`
}

// ReportSummary totals a bulk report, rounded to two decimal places.
type ReportSummary struct {
	TotalEmployees   int             `json:"total_employees"`
	TotalBasicSalary decimal.Decimal `json:"total_basic_salary"`
	TotalOvertimePay decimal.Decimal `json:"total_overtime_pay"`
	TotalGrossSalary decimal.Decimal `json:"total_gross_salary"`
	TotalTax         decimal.Decimal `json:"total_tax"`
	TotalNetSalary   decimal.Decimal `json:"total_net_salary"`
}

// Summarize totals records exactly in decimal and rounds the result.
func Summarize(records []Record) ReportSummary {
	basic, overtime, gross, tax, net := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, r := range records {
		basic = basic.Add(decimal.NewFromFloat(r.BasicSalary))
		overtime = overtime.Add(decimal.NewFromFloat(r.OvertimePay))
		gross = gross.Add(decimal.NewFromFloat(r.GrossSalary))
		tax = tax.Add(decimal.NewFromFloat(r.Tax))
		net = net.Add(decimal.NewFromFloat(r.NetSalary))
	}
	return ReportSummary{
		TotalEmployees:   len(records),
		TotalBasicSalary: basic.Round(2),
		TotalOvertimePay: overtime.Round(2),
		TotalGrossSalary: gross.Round(2),
		TotalTax:         tax.Round(2),
		TotalNetSalary:   net.Round(2),
	}
}

// CSVRecords lays the report out as rows: the header, one row per record
// and, for bulk reports, a blank separator followed by the summary.
func (r PayrollReport) CSVRecords() [][]string {
	rows := make([][]string, 0, len(r.Records)+9)
	rows = append(rows, ReportHeader)

	for _, rec := range r.Records {
		rows = append(rows, []string{
			rec.EmployeeID,
			rec.EmployeeName,
			rec.PeriodStart,
			rec.PeriodEnd,
			formatAmount(rec.BasicSalary),
			formatAmount(rec.OvertimePay),
			formatAmount(rec.GrossSalary),
			formatAmount(rec.Tax),
			formatAmount(rec.NetSalary),
		})
	}

	if r.Summary == nil {
		return rows
	}

	s := r.Summary
	return append(rows,
		[]string{""},
		[]string{"Summary"},
		[]string{"Total Employees", strconv.Itoa(s.TotalEmployees)},
		[]string{"Total Basic Salary", s.TotalBasicSalary.StringFixed(2)},
		[]string{"Total Overtime Pay", s.TotalOvertimePay.StringFixed(2)},
		[]string{"Total Gross Salary", s.TotalGrossSalary.StringFixed(2)},
		[]string{"Total Tax", s.TotalTax.StringFixed(2)},
		[]string{"Total Net Salary", s.TotalNetSalary.StringFixed(2)},
	)
}

// ReportFilename names the CSV attachment.
func ReportFilename(req PayrollReportRequest) string {
	id := singleEmployee(&req.EmployeeID)
	if id == nil {
		return "payroll_report_" + req.StartDate + "_" + req.EndDate + ".csv"
	}
	return "payroll_report_" + *id + "_" + req.StartDate + "_" + req.EndDate + ".csv"
}

func formatAmount(f float64) string {
	if !validator.IsFinite(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
