package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, newCompany Company) (Company, error)
	GetByID(ctx context.Context, tenantID string, id string) (Company, error)
	List(ctx context.Context, tenantID string) ([]Company, error)
	Delete(ctx context.Context, tenantID string, id string) error
}
