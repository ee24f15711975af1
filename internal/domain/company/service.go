package company

import "context"

type CompanyService interface {
	Create(ctx context.Context, tenantID string, req CreateCompanyRequest) (CompanyResponse, error)
	GetByID(ctx context.Context, tenantID string, id string) (CompanyResponse, error)
	List(ctx context.Context, tenantID string) ([]CompanyResponse, error)
	Delete(ctx context.Context, tenantID string, id string) error
}
