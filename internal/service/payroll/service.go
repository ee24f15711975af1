package payroll

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/tenant"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

const defaultMaxConcurrency = 8

// Config holds the pay constants and how many employees are persisted in
// parallel during a run.
type Config struct {
	Rates          payroll.Rates
	MaxConcurrency int
}

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	rates          payroll.Rates
	maxConcurrency int
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	cfg Config,
) payroll.PayrollService {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = defaultMaxConcurrency
	}
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		rates:          cfg.Rates,
		maxConcurrency: cfg.MaxConcurrency,
	}
}

// ========== GENERATION ==========

// GeneratePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, tenantID string, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}
	period, err := req.Validate()
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	target := req.TargetEmployee()
	employees, err := s.targetEmployees(ctx, tenantID, target)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	records, err := s.attendanceRepo.ListByDateRange(ctx, tenantID, period, target)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}
	totals := SumAttendance(records)

	type outcome struct {
		id  string
		err error
	}
	outcomes := make([]outcome, len(employees))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			id, err := s.generateOne(gCtx, tenantID, emp, totals[emp.ID], period)
			outcomes[i] = outcome{id: id, err: err}
			// One employee failing must not stop the others.
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	resp := payroll.GeneratePayrollResponse{CreatedIDs: []string{}, Failures: []payroll.Failure{}}
	for i, o := range outcomes {
		if o.err == nil {
			resp.CreatedIDs = append(resp.CreatedIDs, o.id)
			continue
		}

		emp := employees[i]
		kind := apperror.KindOf(o.err)
		resp.Failures = append(resp.Failures, payroll.Failure{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Kind:         kind,
			Message:      apperror.Message(o.err),
		})
		metrics.PayrollEmployeesFailed.WithLabelValues(string(kind)).Inc()
		slog.WarnContext(ctx, "payroll skipped for employee",
			slog.String("tenant_id", tenantID),
			slog.String("employee_id", emp.ID),
			slog.String("kind", string(kind)),
			slog.Any("error", o.err),
		)
	}
	metrics.PayrollRecordsGenerated.Add(float64(len(resp.CreatedIDs)))

	slog.InfoContext(ctx, "payroll generated",
		slog.String("tenant_id", tenantID),
		slog.String("period_start", period.From.Format(validator.DateLayout)),
		slog.String("period_end", period.To.Format(validator.DateLayout)),
		slog.Int("created", len(resp.CreatedIDs)),
		slog.Int("failed", len(resp.Failures)),
	)
	return resp, nil
}

func (s *PayrollServiceImpl) targetEmployees(ctx context.Context, tenantID string, target *string) ([]employee.Employee, error) {
	if target == nil {
		return s.employeeRepo.List(ctx, tenantID, employee.EmployeeFilter{})
	}
	emp, err := s.employeeRepo.GetByID(ctx, tenantID, *target)
	if err != nil {
		return nil, err
	}
	return []employee.Employee{emp}, nil
}

func (s *PayrollServiceImpl) generateOne(ctx context.Context, tenantID string, emp employee.Employee, totals payroll.AttendanceTotals, period attendance.DateRange) (string, error) {
	if !validator.IsPositiveAmount(emp.MonthlySalary) {
		return "", payroll.ErrInvalidCompensation
	}

	_, err := s.payrollRepo.GetByEmployeePeriod(ctx, tenantID, emp.ID, period.From, period.To)
	if err == nil {
		return "", payroll.ErrPayrollRecordAlreadyExists
	}
	if !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
		return "", err
	}

	pay := s.rates.Calculate(emp.MonthlySalary, totals.TotalOvertime)
	created, err := s.payrollRepo.Create(ctx, payroll.Record{
		TenantID:     tenantID,
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		PeriodStart:  period.From,
		PeriodEnd:    period.To,
		BasicSalary:  pay.BasicSalary,
		OvertimePay:  pay.OvertimePay,
		GrossSalary:  pay.GrossSalary,
		Tax:          pay.Tax,
		NetSalary:    pay.NetSalary,
	})
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

// SumAttendance totals hours and overtime per employee.
func SumAttendance(records []attendance.Record) map[string]payroll.AttendanceTotals {
	totals := make(map[string]payroll.AttendanceTotals)
	for _, r := range records {
		t := totals[r.EmployeeID]
		t.EmployeeID = r.EmployeeID
		t.TotalHours += r.HoursWorked
		t.TotalOvertime += r.OvertimeHours
		totals[r.EmployeeID] = t
	}
	return totals
}

// ========== RECORDS ==========

// GetPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, tenantID string, req payroll.ListPayrollRequest) ([]payroll.PayrollRecordResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return nil, err
	}
	filter, err := req.Validate()
	if err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	return toResponses(records), nil
}

// GetPayrollRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayrollRecord(ctx context.Context, tenantID string, id string) (payroll.PayrollRecordResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if strings.TrimSpace(id) == "" {
		return payroll.PayrollRecordResponse{}, payroll.ErrPayrollIDRequired
	}

	record, err := s.payrollRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return payroll.NewPayrollRecordResponse(record), nil
}

// UpdatePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpdatePayroll(ctx context.Context, tenantID string, req payroll.UpdatePayrollRecordRequest) (payroll.PayrollRecordResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if strings.TrimSpace(req.ID) == "" {
		return payroll.PayrollRecordResponse{}, payroll.ErrPayrollIDRequired
	}
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := s.payrollRepo.GetByID(ctx, tenantID, req.ID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if req.EmployeeName != nil {
		record.EmployeeName = strings.TrimSpace(*req.EmployeeName)
	}
	basic, overtime := record.BasicSalary, record.OvertimePay
	if req.BasicSalary != nil {
		basic = *req.BasicSalary
	}
	if req.OvertimePay != nil {
		overtime = *req.OvertimePay
	}
	pay := s.rates.Settle(basic, overtime, 0)
	record.BasicSalary = pay.BasicSalary
	record.OvertimePay = pay.OvertimePay
	record.GrossSalary = pay.GrossSalary
	record.Tax = pay.Tax
	record.NetSalary = pay.NetSalary

	updated, err := s.payrollRepo.Update(ctx, record)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return payroll.NewPayrollRecordResponse(updated), nil
}

// DeletePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeletePayroll(ctx context.Context, tenantID string, id string) error {
	if err := tenant.Require(tenantID); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return payroll.ErrPayrollIDRequired
	}
	return s.payrollRepo.Delete(ctx, tenantID, id)
}

// ========== REPORT ==========

// BuildReport implements payroll.PayrollService.
func (s *PayrollServiceImpl) BuildReport(ctx context.Context, tenantID string, req payroll.PayrollReportRequest) (payroll.PayrollReport, error) {
	if err := tenant.Require(tenantID); err != nil {
		return payroll.PayrollReport{}, err
	}
	filter, err := req.Validate()
	if err != nil {
		return payroll.PayrollReport{}, err
	}

	records, err := s.payrollRepo.List(ctx, tenantID, filter)
	if err != nil {
		return payroll.PayrollReport{}, err
	}

	report := payroll.PayrollReport{Bulk: req.IsBulk(), Records: toResponses(records)}
	if report.Bulk {
		summary := payroll.Summarize(records)
		report.Summary = &summary
	}
	return report, nil
}

func toResponses(records []payroll.Record) []payroll.PayrollRecordResponse {
	responses := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, payroll.NewPayrollRecordResponse(r))
	}
	return responses
}
