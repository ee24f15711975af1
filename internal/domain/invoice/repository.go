package invoice

import "context"

// Sequencer hands out invoice numbers. Next reserves the tenant's next
// number atomically; two callers never receive the same number.
type Sequencer interface {
	Next(ctx context.Context, tenantID string) (int, error)
}

// InvoiceRepository defines data access methods for invoices.
// All methods include tenantID parameter to prevent cross-tenant data access.
type InvoiceRepository interface {
	Sequencer

	// CreateWithNextNumber reserves the next number and stores the invoice
	// under it as one atomic step. If the insert fails the reservation is
	// released.
	CreateWithNextNumber(ctx context.Context, inv Invoice) (Invoice, error)
	GetByID(ctx context.Context, tenantID string, id string) (Invoice, error)
	List(ctx context.Context, tenantID string, filter InvoiceFilter) ([]Invoice, error)
	Update(ctx context.Context, inv Invoice) (Invoice, error)
	Delete(ctx context.Context, tenantID string, id string) error

	// MaxInvoiceNumber returns the highest number handed out so far, and
	// false when the tenant has none.
	MaxInvoiceNumber(ctx context.Context, tenantID string) (int, bool, error)
}
