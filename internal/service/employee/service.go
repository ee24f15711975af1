package employee

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/tenant"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, tenantID string, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e))
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, tenantID string, id string) (employee.EmployeeResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if strings.TrimSpace(id) == "" {
		return employee.EmployeeResponse{}, employee.ErrEmployeeIDRequired
	}

	e, err := s.employeeRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(e), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, tenantID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, req.ToEntity(tenantID))
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, tenantID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, tenantID, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	req.Apply(&current)

	updated, err := s.employeeRepo.Update(ctx, current)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, tenantID string, id string) error {
	if err := tenant.Require(tenantID); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return employee.ErrEmployeeIDRequired
	}
	return s.employeeRepo.Delete(ctx, tenantID, id)
}

// AgeDistribution implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AgeDistribution(ctx context.Context, tenantID string) ([]employee.AgeBucket, error) {
	if err := tenant.Require(tenantID); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.List(ctx, tenantID, employee.EmployeeFilter{})
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int)
	for _, e := range employees {
		counts[e.Age/10*10]++
	}

	decades := make([]int, 0, len(counts))
	for decade := range counts {
		decades = append(decades, decade)
	}
	sort.Ints(decades)

	buckets := make([]employee.AgeBucket, 0, len(decades))
	for _, decade := range decades {
		buckets = append(buckets, employee.AgeBucket{
			AgeRange: fmt.Sprintf("%d-%d", decade, decade+9),
			Count:    counts[decade],
		})
	}
	return buckets, nil
}
