package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/company"
)

type companyRepositoryImpl struct {
	s *Store
}

func NewCompanyRepository(s *Store) company.CompanyRepository {
	return &companyRepositoryImpl{s: s}
}

func (r *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.companies {
		if c.TenantID == newCompany.TenantID && c.Name == newCompany.Name {
			return company.Company{}, company.ErrCompanyNameExists
		}
	}

	id, err := newID()
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to generate company id: %w", err)
	}
	now := r.s.now()
	newCompany.ID = id
	newCompany.CreatedAt = now
	newCompany.UpdatedAt = now
	r.s.companies[id] = newCompany
	return newCompany, nil
}

func (r *companyRepositoryImpl) GetByID(ctx context.Context, tenantID string, id string) (company.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.companies[id]
	if !ok || c.TenantID != tenantID {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return c, nil
}

func (r *companyRepositoryImpl) List(ctx context.Context, tenantID string) ([]company.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	companies := []company.Company{}
	for _, c := range r.s.companies {
		if c.TenantID == tenantID {
			companies = append(companies, c)
		}
	}
	sort.Slice(companies, func(i, j int) bool { return companies[i].Name < companies[j].Name })
	return companies, nil
}

func (r *companyRepositoryImpl) Delete(ctx context.Context, tenantID string, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.companies[id]
	if !ok || c.TenantID != tenantID {
		return company.ErrCompanyNotFound
	}
	delete(r.s.companies, id)
	return nil
}
