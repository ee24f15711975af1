package invoice

import "context"

type InvoiceService interface {
	// AllocateInvoiceNumber reserves and returns the tenant's next number.
	AllocateInvoiceNumber(ctx context.Context, tenantID string) (int, error)
	// PeekNextInvoiceNumber returns the number the next allocation would
	// likely receive without reserving it.
	PeekNextInvoiceNumber(ctx context.Context, tenantID string) (int, error)

	CreateInvoice(ctx context.Context, tenantID string, req CreateInvoiceRequest) (InvoiceResponse, error)
	GetInvoice(ctx context.Context, tenantID string, id string) (InvoiceResponse, error)
	ListInvoices(ctx context.Context, tenantID string, filter InvoiceFilter) ([]InvoiceResponse, error)
	UpdateInvoice(ctx context.Context, tenantID string, req UpdateInvoiceRequest) (InvoiceResponse, error)
	DeleteInvoice(ctx context.Context, tenantID string, id string) error

	MonthlyTotals(ctx context.Context, tenantID string) ([]MonthlyTotal, error)
}
