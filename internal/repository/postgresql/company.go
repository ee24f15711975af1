package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/company"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// Create implements company.CompanyRepository.
func (r *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to generate company id: %w", err)
	}

	query := `
		INSERT INTO companies (id, tenant_id, name, address, email, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, tenant_id, name, address, email, phone, created_at, updated_at
	`

	var created company.Company
	err = q.QueryRow(ctx, query,
		id, newCompany.TenantID, newCompany.Name, newCompany.Address, newCompany.Email, newCompany.Phone,
	).Scan(
		&created.ID, &created.TenantID, &created.Name, &created.Address,
		&created.Email, &created.Phone, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if violates(err, "uk_company_tenant_name") {
			return company.Company{}, company.ErrCompanyNameExists
		}
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}
	return created, nil
}

// GetByID implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByID(ctx context.Context, tenantID string, id string) (company.Company, error) {
	if !validID(id) {
		return company.Company{}, company.ErrCompanyNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, name, address, email, phone, created_at, updated_at
		FROM companies
		WHERE id = $1 AND tenant_id = $2
	`

	var c company.Company
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&c.ID, &c.TenantID, &c.Name, &c.Address, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company by id %s: %w", id, err)
	}
	return c, nil
}

// List implements company.CompanyRepository.
func (r *companyRepositoryImpl) List(ctx context.Context, tenantID string) ([]company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, name, address, email, phone, created_at, updated_at
		FROM companies
		WHERE tenant_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := []company.Company{}
	for rows.Next() {
		var c company.Company
		if err := rows.Scan(
			&c.ID, &c.TenantID, &c.Name, &c.Address, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}

// Delete implements company.CompanyRepository.
func (r *companyRepositoryImpl) Delete(ctx context.Context, tenantID string, id string) error {
	if !validID(id) {
		return company.ErrCompanyNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM companies WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete company with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}
