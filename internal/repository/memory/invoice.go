package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/invoice"
)

type invoiceRepositoryImpl struct {
	s *Store
}

func NewInvoiceRepository(s *Store) invoice.InvoiceRepository {
	return &invoiceRepositoryImpl{s: s}
}

func cloneInvoice(inv invoice.Invoice) invoice.Invoice {
	inv.Items = append([]invoice.Item(nil), inv.Items...)
	if inv.CompanyID != nil {
		id := *inv.CompanyID
		inv.CompanyID = &id
	}
	return inv
}

// Next implements invoice.Sequencer.
func (r *invoiceRepositoryImpl) Next(ctx context.Context, tenantID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.next(tenantID), nil
}

// next must be called with the write lock held. The first reservation for a
// tenant starts after the highest stored number.
func (r *invoiceRepositoryImpl) next(tenantID string) int {
	last, ok := r.s.counters[tenantID]
	if !ok {
		last = r.highestStored(tenantID)
	}
	last++
	r.s.counters[tenantID] = last
	return last
}

func (r *invoiceRepositoryImpl) highestStored(tenantID string) int {
	highest := 0
	for _, inv := range r.s.invoices {
		if inv.TenantID == tenantID && inv.InvoiceNumber > highest {
			highest = inv.InvoiceNumber
		}
	}
	return highest
}

func (r *invoiceRepositoryImpl) MaxInvoiceNumber(ctx context.Context, tenantID string) (int, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	last, ok := r.s.counters[tenantID]
	if stored := r.highestStored(tenantID); stored > last {
		last, ok = stored, true
	}
	return last, ok, nil
}

func (r *invoiceRepositoryImpl) CreateWithNextNumber(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	id, err := newID()
	if err != nil {
		return invoice.Invoice{}, fmt.Errorf("failed to generate invoice id: %w", err)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	inv = cloneInvoice(inv)
	inv.ID = id
	inv.InvoiceNumber = r.next(inv.TenantID)
	inv.CreatedAt = now
	inv.UpdatedAt = now
	r.s.invoices[id] = inv
	return cloneInvoice(inv), nil
}

func (r *invoiceRepositoryImpl) GetByID(ctx context.Context, tenantID string, id string) (invoice.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	inv, ok := r.s.invoices[id]
	if !ok || inv.TenantID != tenantID {
		return invoice.Invoice{}, invoice.ErrInvoiceNotFound
	}
	return cloneInvoice(inv), nil
}

func (r *invoiceRepositoryImpl) List(ctx context.Context, tenantID string, filter invoice.InvoiceFilter) ([]invoice.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	invoices := []invoice.Invoice{}
	for _, inv := range r.s.invoices {
		if inv.TenantID != tenantID {
			continue
		}
		if filter.Status != nil && inv.Status != *filter.Status {
			continue
		}
		if filter.CompanyID != nil && (inv.CompanyID == nil || *inv.CompanyID != *filter.CompanyID) {
			continue
		}
		invoices = append(invoices, cloneInvoice(inv))
	}
	sort.Slice(invoices, func(i, j int) bool { return invoices[i].InvoiceNumber < invoices[j].InvoiceNumber })
	return invoices, nil
}

func (r *invoiceRepositoryImpl) Update(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.invoices[inv.ID]
	if !ok || current.TenantID != inv.TenantID {
		return invoice.Invoice{}, invoice.ErrInvoiceNotFound
	}

	inv = cloneInvoice(inv)
	inv.InvoiceNumber = current.InvoiceNumber
	inv.CreatedAt = current.CreatedAt
	inv.UpdatedAt = r.s.now()
	r.s.invoices[inv.ID] = inv
	return cloneInvoice(inv), nil
}

func (r *invoiceRepositoryImpl) Delete(ctx context.Context, tenantID string, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	inv, ok := r.s.invoices[id]
	if !ok || inv.TenantID != tenantID {
		return invoice.ErrInvoiceNotFound
	}
	delete(r.s.invoices, id)
	return nil
}
