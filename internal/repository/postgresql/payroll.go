package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const payrollColumns = `id, tenant_id, employee_id, employee_name, period_start, period_end,
		basic_salary, overtime_pay, gross_salary, tax, net_salary, created_at, updated_at`

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

func scanPayrollRecord(row pgx.Row) (payroll.Record, error) {
	var p payroll.Record
	err := row.Scan(
		&p.ID, &p.TenantID, &p.EmployeeID, &p.EmployeeName, &p.PeriodStart, &p.PeriodEnd,
		&p.BasicSalary, &p.OvertimePay, &p.GrossSalary, &p.Tax, &p.NetSalary, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to generate payroll id: %w", err)
	}

	query := `
		INSERT INTO payroll_records (
			id, tenant_id, employee_id, employee_name, period_start, period_end,
			basic_salary, overtime_pay, gross_salary, tax, net_salary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + payrollColumns

	created, err := scanPayrollRecord(q.QueryRow(ctx, query,
		id, record.TenantID, record.EmployeeID, record.EmployeeName, record.PeriodStart, record.PeriodEnd,
		record.BasicSalary, record.OvertimePay, record.GrossSalary, record.Tax, record.NetSalary,
	))
	if err != nil {
		if violates(err, "uk_payroll_employee_period") {
			return payroll.Record{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.Record{}, fmt.Errorf("failed to create payroll record: %w", err)
	}
	return created, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, tenantID string, id string) (payroll.Record, error) {
	if !validID(id) {
		return payroll.Record{}, payroll.ErrPayrollRecordNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + payrollColumns + " FROM payroll_records WHERE id = $1 AND tenant_id = $2"

	p, err := scanPayrollRecord(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record by id %s: %w", id, err)
	}
	return p, nil
}

// GetByEmployeePeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByEmployeePeriod(ctx context.Context, tenantID string, employeeID string, periodStart, periodEnd time.Time) (payroll.Record, error) {
	if !validID(employeeID) {
		return payroll.Record{}, payroll.ErrPayrollRecordNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + payrollColumns + ` FROM payroll_records
		WHERE tenant_id = $1 AND employee_id = $2 AND period_start = $3 AND period_end = $4`

	p, err := scanPayrollRecord(q.QueryRow(ctx, query, tenantID, employeeID, periodStart, periodEnd))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record for employee %s: %w", employeeID, err)
	}
	return p, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, tenantID string, filter payroll.PayrollFilter) ([]payroll.Record, error) {
	records := []payroll.Record{}
	if filter.EmployeeID != nil && !validID(*filter.EmployeeID) {
		return records, nil
	}
	q := GetQuerier(ctx, r.db)

	where := "WHERE tenant_id = $1"
	args := []interface{}{tenantID}
	argIdx := 2

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.From != nil {
		where += fmt.Sprintf(" AND period_start >= $%d", argIdx)
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND period_end <= $%d", argIdx)
		args = append(args, *filter.To)
		argIdx++
	}

	query := "SELECT " + payrollColumns + " FROM payroll_records " + where +
		" ORDER BY period_start, employee_name, id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Update(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	if !validID(record.ID) {
		return payroll.Record{}, payroll.ErrPayrollRecordNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records SET
			employee_name = $3, basic_salary = $4, overtime_pay = $5,
			gross_salary = $6, tax = $7, net_salary = $8, updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2
		RETURNING ` + payrollColumns

	p, err := scanPayrollRecord(q.QueryRow(ctx, query,
		record.ID, record.TenantID, record.EmployeeName, record.BasicSalary, record.OvertimePay,
		record.GrossSalary, record.Tax, record.NetSalary,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to update payroll record with id %s: %w", record.ID, err)
	}
	return p, nil
}

// Delete implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Delete(ctx context.Context, tenantID string, id string) error {
	if !validID(id) {
		return payroll.ErrPayrollRecordNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM payroll_records WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}
	return nil
}
