package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/attendance"
)

type attendanceRepositoryImpl struct {
	s *Store
}

func NewAttendanceRepository(s *Store) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{s: s}
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	day := record.Date.Format("2006-01-02")
	for _, existing := range r.s.attendance {
		if existing.TenantID == record.TenantID && existing.EmployeeID == record.EmployeeID &&
			existing.Date.Format("2006-01-02") == day {
			return attendance.Record{}, attendance.ErrAttendanceExists
		}
	}

	id, err := newID()
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}
	record.ID = id
	record.CreatedAt = r.s.now()
	r.s.attendance[id] = record
	return record, nil
}

func (r *attendanceRepositoryImpl) ListByDateRange(ctx context.Context, tenantID string, dateRange attendance.DateRange, employeeID *string) ([]attendance.Record, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	records := []attendance.Record{}
	for _, rec := range r.s.attendance {
		if rec.TenantID != tenantID || !dateRange.Contains(rec.Date) {
			continue
		}
		if employeeID != nil && rec.EmployeeID != *employeeID {
			continue
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.Before(records[j].Date)
		}
		return records[i].EmployeeID < records[j].EmployeeID
	})
	return records, nil
}
