package attendance

import (
	"context"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/tenant"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Record implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Record(ctx context.Context, tenantID string, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, tenantID, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	created, err := s.attendanceRepo.Create(ctx, attendance.Record{
		TenantID:      tenantID,
		EmployeeID:    req.EmployeeID,
		Date:          date,
		HoursWorked:   req.HoursWorked,
		OvertimeHours: req.OvertimeHours,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.NewAttendanceResponse(created), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, tenantID string, req attendance.ListAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return nil, err
	}
	dateRange, err := req.Validate()
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByDateRange(ctx, tenantID, dateRange, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.NewAttendanceResponse(r))
	}
	return responses, nil
}
