package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	query := `
		INSERT INTO attendance_records (id, tenant_id, employee_id, work_date, hours_worked, overtime_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, tenant_id, employee_id, work_date, hours_worked, overtime_hours, created_at
	`

	var created attendance.Record
	err = q.QueryRow(ctx, query,
		id, record.TenantID, record.EmployeeID, record.Date, record.HoursWorked, record.OvertimeHours,
	).Scan(
		&created.ID, &created.TenantID, &created.EmployeeID, &created.Date,
		&created.HoursWorked, &created.OvertimeHours, &created.CreatedAt,
	)
	if err != nil {
		if violates(err, "uk_attendance_employee_date") {
			return attendance.Record{}, attendance.ErrAttendanceExists
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return created, nil
}

// ListByDateRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDateRange(ctx context.Context, tenantID string, dateRange attendance.DateRange, employeeID *string) ([]attendance.Record, error) {
	records := []attendance.Record{}
	if employeeID != nil && !validID(*employeeID) {
		return records, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, employee_id, work_date, hours_worked, overtime_hours, created_at
		FROM attendance_records
		WHERE tenant_id = $1 AND work_date >= $2 AND work_date <= $3
	`
	args := []interface{}{tenantID, dateRange.From, dateRange.To}
	if employeeID != nil {
		query += " AND employee_id = $4"
		args = append(args, *employeeID)
	}
	query += " ORDER BY work_date, employee_id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.TenantID, &rec.EmployeeID, &rec.Date,
			&rec.HoursWorked, &rec.OvertimeHours, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
