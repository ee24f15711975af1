package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/payroll"
)

type payrollRepositoryImpl struct {
	s *Store
}

func NewPayrollRepository(s *Store) payroll.PayrollRepository {
	return &payrollRepositoryImpl{s: s}
}

func (r *payrollRepositoryImpl) Create(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.findByEmployeePeriod(record.TenantID, record.EmployeeID, record.PeriodStart, record.PeriodEnd); ok {
		return payroll.Record{}, payroll.ErrPayrollRecordAlreadyExists
	}

	id, err := newID()
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to generate payroll id: %w", err)
	}
	now := r.s.now()
	record.ID = id
	record.CreatedAt = now
	record.UpdatedAt = now
	r.s.payroll[id] = record
	return record, nil
}

func (r *payrollRepositoryImpl) GetByID(ctx context.Context, tenantID string, id string) (payroll.Record, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.payroll[id]
	if !ok || p.TenantID != tenantID {
		return payroll.Record{}, payroll.ErrPayrollRecordNotFound
	}
	return p, nil
}

func (r *payrollRepositoryImpl) GetByEmployeePeriod(ctx context.Context, tenantID string, employeeID string, periodStart, periodEnd time.Time) (payroll.Record, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.findByEmployeePeriod(tenantID, employeeID, periodStart, periodEnd)
	if !ok {
		return payroll.Record{}, payroll.ErrPayrollRecordNotFound
	}
	return p, nil
}

func (r *payrollRepositoryImpl) List(ctx context.Context, tenantID string, filter payroll.PayrollFilter) ([]payroll.Record, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	records := []payroll.Record{}
	for _, p := range r.s.payroll {
		if p.TenantID != tenantID {
			continue
		}
		if filter.EmployeeID != nil && p.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.From != nil && p.PeriodStart.Before(*filter.From) {
			continue
		}
		if filter.To != nil && p.PeriodEnd.After(*filter.To) {
			continue
		}
		records = append(records, p)
	}

	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.PeriodStart.Equal(b.PeriodStart) {
			return a.PeriodStart.Before(b.PeriodStart)
		}
		if a.EmployeeName != b.EmployeeName {
			return a.EmployeeName < b.EmployeeName
		}
		return a.ID < b.ID
	})
	return records, nil
}

func (r *payrollRepositoryImpl) Update(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.payroll[record.ID]
	if !ok || current.TenantID != record.TenantID {
		return payroll.Record{}, payroll.ErrPayrollRecordNotFound
	}

	current.EmployeeName = record.EmployeeName
	current.BasicSalary = record.BasicSalary
	current.OvertimePay = record.OvertimePay
	current.GrossSalary = record.GrossSalary
	current.Tax = record.Tax
	current.NetSalary = record.NetSalary
	current.UpdatedAt = r.s.now()
	r.s.payroll[record.ID] = current
	return current, nil
}

func (r *payrollRepositoryImpl) Delete(ctx context.Context, tenantID string, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.payroll[id]
	if !ok || p.TenantID != tenantID {
		return payroll.ErrPayrollRecordNotFound
	}
	delete(r.s.payroll, id)
	return nil
}

// findByEmployeePeriod must be called with the lock held.
func (r *payrollRepositoryImpl) findByEmployeePeriod(tenantID, employeeID string, start, end time.Time) (payroll.Record, bool) {
	for _, p := range r.s.payroll {
		if p.TenantID == tenantID && p.EmployeeID == employeeID &&
			p.PeriodStart.Equal(start) && p.PeriodEnd.Equal(end) {
			return p, true
		}
	}
	return payroll.Record{}, false
}
