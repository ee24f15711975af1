package company

import "time"

// Company is a customer organisation the tenant bills. Invoices reference
// it by id.
type Company struct {
	ID        string
	TenantID  string
	Name      string
	Address   string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
