package company

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/validator"
)

type CreateCompanyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "is required")
	}
	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs.Add("email", "must be a valid email address")
	}

	return errs.Err()
}

func (r *CreateCompanyRequest) ToEntity(tenantID string) Company {
	return Company{
		TenantID: tenantID,
		Name:     strings.TrimSpace(r.Name),
		Address:  r.Address,
		Email:    r.Email,
		Phone:    r.Phone,
	}
}

type CompanyResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
}

func NewCompanyResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
