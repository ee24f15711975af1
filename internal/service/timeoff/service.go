package timeoff

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/tenant"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/timeoff"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/metrics"
)

type TimeOffServiceImpl struct {
	timeOffRepo  timeoff.TimeOffRepository
	employeeRepo employee.EmployeeRepository
}

func NewTimeOffService(
	timeOffRepo timeoff.TimeOffRepository,
	employeeRepo employee.EmployeeRepository,
) timeoff.TimeOffService {
	return &TimeOffServiceImpl{
		timeOffRepo:  timeOffRepo,
		employeeRepo: employeeRepo,
	}
}

// Submit implements timeoff.TimeOffService.
func (s *TimeOffServiceImpl) Submit(ctx context.Context, tenantID string, req timeoff.SubmitTimeOffRequest) (timeoff.TimeOffResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return timeoff.TimeOffResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return timeoff.TimeOffResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, tenantID, req.EmployeeID)
	if err != nil {
		return timeoff.TimeOffResponse{}, err
	}

	created, err := s.timeOffRepo.Create(ctx, req.ToEntity(tenantID, emp.Name))
	if err != nil {
		return timeoff.TimeOffResponse{}, err
	}

	metrics.TimeOffTransitions.WithLabelValues(string(created.Status)).Inc()
	return timeoff.NewTimeOffResponse(created), nil
}

// Approve implements timeoff.TimeOffService.
func (s *TimeOffServiceImpl) Approve(ctx context.Context, tenantID string, id string) (timeoff.TimeOffResponse, error) {
	return s.transition(ctx, tenantID, id, timeoff.StatusApproved)
}

// Reject implements timeoff.TimeOffService.
func (s *TimeOffServiceImpl) Reject(ctx context.Context, tenantID string, id string) (timeoff.TimeOffResponse, error) {
	return s.transition(ctx, tenantID, id, timeoff.StatusRejected)
}

// SetStatus implements timeoff.TimeOffService.
func (s *TimeOffServiceImpl) SetStatus(ctx context.Context, tenantID string, req timeoff.SetStatusRequest) (timeoff.TimeOffResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return timeoff.TimeOffResponse{}, err
	}
	if strings.TrimSpace(req.ID) == "" {
		return timeoff.TimeOffResponse{}, timeoff.ErrTimeOffIDRequired
	}
	if err := req.Validate(); err != nil {
		return timeoff.TimeOffResponse{}, err
	}
	return s.transition(ctx, tenantID, req.ID, timeoff.Status(req.Status))
}

func (s *TimeOffServiceImpl) transition(ctx context.Context, tenantID string, id string, to timeoff.Status) (timeoff.TimeOffResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return timeoff.TimeOffResponse{}, err
	}
	if strings.TrimSpace(id) == "" {
		return timeoff.TimeOffResponse{}, timeoff.ErrTimeOffIDRequired
	}
	if !timeoff.CanTransition(timeoff.StatusPending, to) {
		// Only terminal targets exist; make sure the request is there first.
		if _, err := s.timeOffRepo.GetByID(ctx, tenantID, id); err != nil {
			return timeoff.TimeOffResponse{}, err
		}
		return timeoff.TimeOffResponse{}, timeoff.ErrInvalidTransition
	}

	updated, err := s.timeOffRepo.UpdateStatus(ctx, tenantID, id, to)
	if err != nil {
		return timeoff.TimeOffResponse{}, err
	}

	metrics.TimeOffTransitions.WithLabelValues(string(to)).Inc()
	slog.InfoContext(ctx, "time-off request status changed",
		slog.String("tenant_id", tenantID),
		slog.String("request_id", id),
		slog.String("status", string(to)),
	)
	return timeoff.NewTimeOffResponse(updated), nil
}

// Get implements timeoff.TimeOffService.
func (s *TimeOffServiceImpl) Get(ctx context.Context, tenantID string, id string) (timeoff.TimeOffResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return timeoff.TimeOffResponse{}, err
	}
	if strings.TrimSpace(id) == "" {
		return timeoff.TimeOffResponse{}, timeoff.ErrTimeOffIDRequired
	}

	req, err := s.timeOffRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return timeoff.TimeOffResponse{}, err
	}
	return timeoff.NewTimeOffResponse(req), nil
}

// List implements timeoff.TimeOffService.
func (s *TimeOffServiceImpl) List(ctx context.Context, tenantID string, filter timeoff.TimeOffFilter) ([]timeoff.TimeOffResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return nil, err
	}

	requests, err := s.timeOffRepo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]timeoff.TimeOffResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, timeoff.NewTimeOffResponse(r))
	}
	return responses, nil
}

// Delete implements timeoff.TimeOffService.
func (s *TimeOffServiceImpl) Delete(ctx context.Context, tenantID string, id string) error {
	if err := tenant.Require(tenantID); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return timeoff.ErrTimeOffIDRequired
	}

	current, err := s.timeOffRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	// Terminal states never change, so the check cannot go stale.
	if !current.Status.IsTerminal() {
		return timeoff.ErrDeletePending
	}
	return s.timeOffRepo.Delete(ctx, tenantID, id)
}
