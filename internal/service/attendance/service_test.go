package attendance

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/payroll-core-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (attendance.AttendanceService, string) {
	t.Helper()
	store := memory.NewStore()
	employees := memory.NewEmployeeRepository(store)
	emp, err := employees.Create(context.Background(), employee.Employee{
		TenantID: "t1", Name: "Ada", Email: "ada@example.com", MonthlySalary: 3000,
	})
	require.NoError(t, err)
	return NewAttendanceService(memory.NewAttendanceRepository(store), employees), emp.ID
}

func TestRecord(t *testing.T) {
	svc, empID := setup(t)
	ctx := context.Background()

	rec, err := svc.Record(ctx, "t1", attendance.RecordAttendanceRequest{
		EmployeeID: empID, Date: "2024-01-02", HoursWorked: 8, OvertimeHours: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", rec.Date)
	assert.Equal(t, 2.0, rec.OvertimeHours)

	_, err = svc.Record(ctx, "t1", attendance.RecordAttendanceRequest{
		EmployeeID: empID, Date: "2024-01-02", HoursWorked: 4,
	})
	assert.ErrorIs(t, err, attendance.ErrAttendanceExists)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	_, err = svc.Record(ctx, "t2", attendance.RecordAttendanceRequest{
		EmployeeID: empID, Date: "2024-01-03", HoursWorked: 8,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.Record(ctx, "t1", attendance.RecordAttendanceRequest{
		EmployeeID: empID, Date: "02/01/2024", HoursWorked: 25,
	})
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))
}

func TestList(t *testing.T) {
	svc, empID := setup(t)
	ctx := context.Background()

	for _, d := range []string{"2023-12-31", "2024-01-01", "2024-01-15", "2024-01-31", "2024-02-01"} {
		_, err := svc.Record(ctx, "t1", attendance.RecordAttendanceRequest{EmployeeID: empID, Date: d, HoursWorked: 8})
		require.NoError(t, err)
	}

	records, err := svc.List(ctx, "t1", attendance.ListAttendanceRequest{From: "2024-01-01", To: "2024-01-31"})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2024-01-01", records[0].Date)
	assert.Equal(t, "2024-01-31", records[2].Date)

	other, err := svc.List(ctx, "t2", attendance.ListAttendanceRequest{From: "2024-01-01", To: "2024-01-31"})
	require.NoError(t, err)
	assert.Empty(t, other)

	_, err = svc.List(ctx, "t1", attendance.ListAttendanceRequest{From: "2024-02-01", To: "2024-01-01"})
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))
}
