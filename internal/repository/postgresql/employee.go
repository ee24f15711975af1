package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `id, tenant_id, name, email, phone, department, job_title, contract_type,
		monthly_salary, work_hours, age, date_of_birth, gender, address, city, state, start_date,
		created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.TenantID, &e.Name, &e.Email, &e.Phone, &e.Department, &e.JobTitle, &e.ContractType,
		&e.MonthlySalary, &e.WorkHours, &e.Age, &e.DOB, &e.Gender, &e.Address, &e.City, &e.State, &e.StartDate,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, tenantID string, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE tenant_id = $1"
	args := []interface{}{tenantID}
	argIdx := 2

	if filter.Department != nil {
		where += fmt.Sprintf(" AND department = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		where += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	query := "SELECT " + employeeColumns + " FROM employees " + where + " ORDER BY name, id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, tenantID string, id string) (employee.Employee, error) {
	if !validID(id) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + employeeColumns + " FROM employees WHERE id = $1 AND tenant_id = $2"

	e, err := scanEmployee(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id %s: %w", id, err)
	}
	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	query := `
		INSERT INTO employees (
			id, tenant_id, name, email, phone, department, job_title, contract_type,
			monthly_salary, work_hours, age, date_of_birth, gender, address, city, state, start_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		id, newEmployee.TenantID, newEmployee.Name, newEmployee.Email, newEmployee.Phone,
		newEmployee.Department, newEmployee.JobTitle, newEmployee.ContractType,
		newEmployee.MonthlySalary, newEmployee.WorkHours, newEmployee.Age, newEmployee.DOB,
		newEmployee.Gender, newEmployee.Address, newEmployee.City, newEmployee.State, newEmployee.StartDate,
	))
	if err != nil {
		if violates(err, "uk_employee_tenant_email") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, updated employee.Employee) (employee.Employee, error) {
	if !validID(updated.ID) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			name = $3, email = $4, phone = $5, department = $6, job_title = $7, contract_type = $8,
			monthly_salary = $9, work_hours = $10, age = $11, date_of_birth = $12, gender = $13,
			address = $14, city = $15, state = $16, start_date = $17, updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2
		RETURNING ` + employeeColumns

	e, err := scanEmployee(q.QueryRow(ctx, query,
		updated.ID, updated.TenantID, updated.Name, updated.Email, updated.Phone,
		updated.Department, updated.JobTitle, updated.ContractType,
		updated.MonthlySalary, updated.WorkHours, updated.Age, updated.DOB,
		updated.Gender, updated.Address, updated.City, updated.State, updated.StartDate,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if violates(err, "uk_employee_tenant_email") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee with id %s: %w", updated.ID, err)
	}
	return e, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, tenantID string, id string) error {
	if !validID(id) {
		return employee.ErrEmployeeNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM employees WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete employee with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
