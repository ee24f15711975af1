package company

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/company"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/tenant"
)

type CompanyServiceImpl struct {
	companyRepo company.CompanyRepository
}

func NewCompanyService(companyRepo company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{companyRepo: companyRepo}
}

// Create implements company.CompanyService.
func (s *CompanyServiceImpl) Create(ctx context.Context, tenantID string, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return company.CompanyResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	created, err := s.companyRepo.Create(ctx, req.ToEntity(tenantID))
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.NewCompanyResponse(created), nil
}

// GetByID implements company.CompanyService.
func (s *CompanyServiceImpl) GetByID(ctx context.Context, tenantID string, id string) (company.CompanyResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return company.CompanyResponse{}, err
	}
	if strings.TrimSpace(id) == "" {
		return company.CompanyResponse{}, company.ErrCompanyIDRequired
	}

	c, err := s.companyRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.NewCompanyResponse(c), nil
}

// List implements company.CompanyService.
func (s *CompanyServiceImpl) List(ctx context.Context, tenantID string) ([]company.CompanyResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return nil, err
	}

	companies, err := s.companyRepo.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		responses = append(responses, company.NewCompanyResponse(c))
	}
	return responses, nil
}

// Delete implements company.CompanyService. Invoices that reference the
// company keep its id.
func (s *CompanyServiceImpl) Delete(ctx context.Context, tenantID string, id string) error {
	if err := tenant.Require(tenantID); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return company.ErrCompanyIDRequired
	}
	return s.companyRepo.Delete(ctx, tenantID, id)
}
