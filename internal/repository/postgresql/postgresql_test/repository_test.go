package postgresql_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/invoice"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/timeoff"
	"github.com/cmlabs-hris/payroll-core-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestEmployeeRepository_TenantIsolation(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewEmployeeRepository(setup.DB)
	ctx := context.Background()

	created, err := repo.Create(ctx, employee.Employee{TenantID: "tenant-a", Name: "Ada", Email: "ada@example.com", MonthlySalary: 3000})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	_, err = repo.Create(ctx, employee.Employee{TenantID: "tenant-a", Name: "Ada Again", Email: "ada@example.com"})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	// Same email is fine in another tenant.
	_, err = repo.Create(ctx, employee.Employee{TenantID: "tenant-b", Name: "Ada B", Email: "ada@example.com"})
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, "tenant-b", created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	list, err := repo.List(ctx, "tenant-a", employee.EmployeeFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ada", list[0].Name)

	_, err = repo.GetByID(ctx, "tenant-a", "not-a-uuid")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "tenant-b", created.ID), employee.ErrEmployeeNotFound)
	require.NoError(t, repo.Delete(ctx, "tenant-a", created.ID))
}

func TestAttendanceRepository_DuplicateDay(t *testing.T) {
	setup := NewTestDatabase(t)
	employees := postgresql.NewEmployeeRepository(setup.DB)
	repo := postgresql.NewAttendanceRepository(setup.DB)
	ctx := context.Background()

	emp, err := employees.Create(ctx, employee.Employee{TenantID: "t1", Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	rec := attendance.Record{TenantID: "t1", EmployeeID: emp.ID, Date: date("2024-01-02"), HoursWorked: 8, OvertimeHours: 2}
	_, err = repo.Create(ctx, rec)
	require.NoError(t, err)
	_, err = repo.Create(ctx, rec)
	assert.ErrorIs(t, err, attendance.ErrAttendanceExists)

	records, err := repo.ListByDateRange(ctx, "t1", attendance.DateRange{From: date("2024-01-01"), To: date("2024-01-31")}, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2.0, records[0].OvertimeHours)

	records, err = repo.ListByDateRange(ctx, "t2", attendance.DateRange{From: date("2024-01-01"), To: date("2024-01-31")}, nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPayrollRepository_UniquePeriod(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewPayrollRepository(setup.DB)
	ctx := context.Background()

	record := payroll.Record{
		TenantID: "t1", EmployeeID: "0190a000-0000-7000-8000-000000000001", EmployeeName: "Ada",
		PeriodStart: date("2024-01-01"), PeriodEnd: date("2024-01-31"),
		BasicSalary: 3000, OvertimePay: 281.25, GrossSalary: 3281.25, Tax: 656.25, NetSalary: 2625,
	}
	created, err := repo.Create(ctx, record)
	require.NoError(t, err)

	_, err = repo.Create(ctx, record)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordAlreadyExists)

	from, to := date("2024-01-01"), date("2024-01-31")
	list, err := repo.List(ctx, "t1", payroll.PayrollFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	_, err = repo.GetByID(ctx, "t2", created.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestInvoiceRepository_ConcurrentAllocation(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewInvoiceRepository(setup.DB)
	ctx := context.Background()

	const n = 20
	numbers := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			inv, err := repo.CreateWithNextNumber(ctx, invoice.Invoice{
				TenantID:     "t1",
				CustomerName: "Acme",
				Items:        []invoice.Item{{Description: "Widget", Quantity: 1, Price: 10}},
				SubTotal:     10,
				Total:        10,
				Status:       invoice.StatusDraft,
				InvoiceDate:  date("2024-03-01"),
				DueDate:      date("2024-03-31"),
			})
			assert.NoError(t, err)
			numbers[i] = inv.InvoiceNumber
		}(i)
	}
	wg.Wait()

	sort.Ints(numbers)
	for i, got := range numbers {
		assert.Equal(t, i+1, got)
	}

	latest, ok, err := repo.MaxInvoiceNumber(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, n, latest)

	_, ok, err = repo.MaxInvoiceNumber(ctx, "t2")
	require.NoError(t, err)
	assert.False(t, ok)

	next, err := repo.Next(ctx, "t2")
	require.NoError(t, err)
	assert.Equal(t, 1, next)
}

func TestTimeOffRepository_ConditionalStatus(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewTimeOffRepository(setup.DB)
	ctx := context.Background()

	created, err := repo.Create(ctx, timeoff.Request{
		TenantID: "t1", EmployeeID: "0190a000-0000-7000-8000-000000000001", EmployeeName: "Ada",
		LeaveType: "Annual", LeaveFrom: date("2024-05-06"), LeaveTo: date("2024-05-08"), Days: 3,
		Status: timeoff.StatusPending,
	})
	require.NoError(t, err)

	approved, err := repo.UpdateStatus(ctx, "t1", created.ID, timeoff.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, timeoff.StatusApproved, approved.Status)

	_, err = repo.UpdateStatus(ctx, "t1", created.ID, timeoff.StatusRejected)
	assert.ErrorIs(t, err, timeoff.ErrInvalidTransition)

	_, err = repo.UpdateStatus(ctx, "t2", created.ID, timeoff.StatusRejected)
	assert.ErrorIs(t, err, timeoff.ErrTimeOffNotFound)

	got, err := repo.GetByID(ctx, "t1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, timeoff.StatusApproved, got.Status)
}
