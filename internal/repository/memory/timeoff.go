package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/timeoff"
)

type timeOffRepositoryImpl struct {
	s *Store
}

func NewTimeOffRepository(s *Store) timeoff.TimeOffRepository {
	return &timeOffRepositoryImpl{s: s}
}

func (r *timeOffRepositoryImpl) Create(ctx context.Context, req timeoff.Request) (timeoff.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, err := newID()
	if err != nil {
		return timeoff.Request{}, fmt.Errorf("failed to generate time-off id: %w", err)
	}
	now := r.s.now()
	req.ID = id
	req.CreatedAt = now
	req.UpdatedAt = now
	r.s.timeOff[id] = req
	return req, nil
}

func (r *timeOffRepositoryImpl) GetByID(ctx context.Context, tenantID string, id string) (timeoff.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.timeOff[id]
	if !ok || t.TenantID != tenantID {
		return timeoff.Request{}, timeoff.ErrTimeOffNotFound
	}
	return t, nil
}

func (r *timeOffRepositoryImpl) List(ctx context.Context, tenantID string, filter timeoff.TimeOffFilter) ([]timeoff.Request, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	requests := []timeoff.Request{}
	for _, t := range r.s.timeOff {
		if t.TenantID != tenantID {
			continue
		}
		if filter.EmployeeID != nil && t.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		requests = append(requests, t)
	}

	// newest first; v7 ids sort by creation time
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID > requests[j].ID })
	return requests, nil
}

func (r *timeOffRepositoryImpl) UpdateStatus(ctx context.Context, tenantID string, id string, status timeoff.Status) (timeoff.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.timeOff[id]
	if !ok || t.TenantID != tenantID {
		return timeoff.Request{}, timeoff.ErrTimeOffNotFound
	}
	if t.Status != timeoff.StatusPending {
		return timeoff.Request{}, timeoff.ErrInvalidTransition
	}

	t.Status = status
	t.UpdatedAt = r.s.now()
	r.s.timeOff[id] = t
	return t, nil
}

func (r *timeOffRepositoryImpl) Delete(ctx context.Context, tenantID string, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.timeOff[id]
	if !ok || t.TenantID != tenantID {
		return timeoff.ErrTimeOffNotFound
	}
	delete(r.s.timeOff, id)
	return nil
}
