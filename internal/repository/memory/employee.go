package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	s *Store
}

func NewEmployeeRepository(s *Store) employee.EmployeeRepository {
	return &employeeRepositoryImpl{s: s}
}

func (r *employeeRepositoryImpl) List(ctx context.Context, tenantID string, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	employees := []employee.Employee{}
	for _, e := range r.s.employees {
		if e.TenantID != tenantID {
			continue
		}
		if filter.Department != nil && e.Department != *filter.Department {
			continue
		}
		if filter.Search != nil && *filter.Search != "" &&
			!strings.Contains(strings.ToLower(e.Name), strings.ToLower(*filter.Search)) {
			continue
		}
		employees = append(employees, e)
	}

	sort.Slice(employees, func(i, j int) bool {
		if employees[i].Name != employees[j].Name {
			return employees[i].Name < employees[j].Name
		}
		return employees[i].ID < employees[j].ID
	})
	return employees, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, tenantID string, id string) (employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.employees[id]
	if !ok || e.TenantID != tenantID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.emailTaken(newEmployee.TenantID, newEmployee.Email, "") {
		return employee.Employee{}, employee.ErrEmailExists
	}

	id, err := newID()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to generate employee id: %w", err)
	}
	now := r.s.now()
	newEmployee.ID = id
	newEmployee.CreatedAt = now
	newEmployee.UpdatedAt = now
	r.s.employees[id] = newEmployee
	return newEmployee, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, updated employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.employees[updated.ID]
	if !ok || current.TenantID != updated.TenantID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if r.emailTaken(updated.TenantID, updated.Email, updated.ID) {
		return employee.Employee{}, employee.ErrEmailExists
	}

	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = r.s.now()
	r.s.employees[updated.ID] = updated
	return updated, nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, tenantID string, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.employees[id]
	if !ok || e.TenantID != tenantID {
		return employee.ErrEmployeeNotFound
	}
	delete(r.s.employees, id)
	return nil
}

// emailTaken must be called with the lock held.
func (r *employeeRepositoryImpl) emailTaken(tenantID, email, exceptID string) bool {
	for id, e := range r.s.employees {
		if id != exceptID && e.TenantID == tenantID && e.Email == email {
			return true
		}
	}
	return false
}
