package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/invoice"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const invoiceColumns = `id, tenant_id, invoice_number, customer_name, customer_email, company_id, items,
		sub_total, vat, total, status, invoice_date, due_date, created_at, updated_at`

type invoiceRepositoryImpl struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) invoice.InvoiceRepository {
	return &invoiceRepositoryImpl{db: db}
}

func scanInvoice(row pgx.Row) (invoice.Invoice, error) {
	var inv invoice.Invoice
	err := row.Scan(
		&inv.ID, &inv.TenantID, &inv.InvoiceNumber, &inv.CustomerName, &inv.CustomerEmail, &inv.CompanyID, &inv.Items,
		&inv.SubTotal, &inv.VAT, &inv.Total, &inv.Status, &inv.InvoiceDate, &inv.DueDate, &inv.CreatedAt, &inv.UpdatedAt,
	)
	return inv, err
}

func items(inv invoice.Invoice) []invoice.Item {
	if inv.Items == nil {
		return []invoice.Item{}
	}
	return inv.Items
}

// contended maps lost races on the counter or the number constraint to
// invoice.ErrAllocationContention so the caller can retry.
func contended(err error) error {
	switch pgErrorCode(err) {
	case pgUniqueViolation, pgSerializationFailure, pgDeadlockDetected:
		return fmt.Errorf("%w: %v", invoice.ErrAllocationContention, err)
	}
	return err
}

// ========== SEQUENCE ==========

// Next implements invoice.Sequencer. The first call for a tenant seeds the
// counter from the highest stored invoice number; later calls increment
// it under the counter row's lock.
func (r *invoiceRepositoryImpl) Next(ctx context.Context, tenantID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invoice_counters (tenant_id, last_number)
		SELECT $1, COALESCE(MAX(invoice_number), 0) + 1 FROM invoices WHERE tenant_id = $1
		ON CONFLICT (tenant_id) DO UPDATE
			SET last_number = invoice_counters.last_number + 1, updated_at = NOW()
		RETURNING last_number
	`

	var number int
	if err := q.QueryRow(ctx, query, tenantID).Scan(&number); err != nil {
		return 0, fmt.Errorf("failed to reserve invoice number: %w", contended(err))
	}
	return number, nil
}

// MaxInvoiceNumber implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) MaxInvoiceNumber(ctx context.Context, tenantID string) (int, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT GREATEST(
			(SELECT last_number FROM invoice_counters WHERE tenant_id = $1),
			(SELECT MAX(invoice_number) FROM invoices WHERE tenant_id = $1)
		)
	`

	var latest *int
	if err := q.QueryRow(ctx, query, tenantID).Scan(&latest); err != nil {
		return 0, false, fmt.Errorf("failed to query max invoice number: %w", err)
	}
	if latest == nil {
		return 0, false, nil
	}
	return *latest, true, nil
}

// ========== INVOICES ==========

// CreateWithNextNumber implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) CreateWithNextNumber(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	id, err := newID()
	if err != nil {
		return invoice.Invoice{}, fmt.Errorf("failed to generate invoice id: %w", err)
	}

	var created invoice.Invoice
	err = WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := withTx(ctx, tx)

		number, err := r.Next(txCtx, inv.TenantID)
		if err != nil {
			return err
		}

		query := `
			INSERT INTO invoices (
				id, tenant_id, invoice_number, customer_name, customer_email, company_id, items,
				sub_total, vat, total, status, invoice_date, due_date
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING ` + invoiceColumns

		created, err = scanInvoice(GetQuerier(txCtx, r.db).QueryRow(txCtx, query,
			id, inv.TenantID, number, inv.CustomerName, inv.CustomerEmail, inv.CompanyID, items(inv),
			inv.SubTotal, inv.VAT, inv.Total, inv.Status, inv.InvoiceDate, inv.DueDate,
		))
		if err != nil {
			return fmt.Errorf("failed to create invoice: %w", contended(err))
		}
		return nil
	})
	if err != nil {
		return invoice.Invoice{}, err
	}
	return created, nil
}

// GetByID implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) GetByID(ctx context.Context, tenantID string, id string) (invoice.Invoice, error) {
	if !validID(id) {
		return invoice.Invoice{}, invoice.ErrInvoiceNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + invoiceColumns + " FROM invoices WHERE id = $1 AND tenant_id = $2"

	inv, err := scanInvoice(q.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.Invoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.Invoice{}, fmt.Errorf("failed to get invoice by id %s: %w", id, err)
	}
	return inv, nil
}

// List implements invoice.InvoiceRepository.
func (r *invoiceRepositoryImpl) List(ctx context.Context, tenantID string, filter invoice.InvoiceFilter) ([]invoice.Invoice, error) {
	invoices := []invoice.Invoice{}
	if filter.CompanyID != nil && !validID(*filter.CompanyID) {
		return invoices, nil
	}
	q := GetQuerier(ctx, r.db)

	where := "WHERE tenant_id = $1"
	args := []interface{}{tenantID}
	argIdx := 2

	if filter.Status != nil {
		where += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(*filter.Status))
		argIdx++
	}
	if filter.CompanyID != nil {
		where += fmt.Sprintf(" AND company_id = $%d", argIdx)
		args = append(args, *filter.CompanyID)
		argIdx++
	}

	query := "SELECT " + invoiceColumns + " FROM invoices " + where + " ORDER BY invoice_number"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}

// Update implements invoice.InvoiceRepository. The invoice number is never
// written.
func (r *invoiceRepositoryImpl) Update(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	if !validID(inv.ID) {
		return invoice.Invoice{}, invoice.ErrInvoiceNotFound
	}
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invoices SET
			customer_name = $3, customer_email = $4, company_id = $5, items = $6,
			sub_total = $7, vat = $8, total = $9, status = $10,
			invoice_date = $11, due_date = $12, updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2
		RETURNING ` + invoiceColumns

	updated, err := scanInvoice(q.QueryRow(ctx, query,
		inv.ID, inv.TenantID, inv.CustomerName, inv.CustomerEmail, inv.CompanyID, items(inv),
		inv.SubTotal, inv.VAT, inv.Total, inv.Status, inv.InvoiceDate, inv.DueDate,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invoice.Invoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.Invoice{}, fmt.Errorf("failed to update invoice with id %s: %w", inv.ID, err)
	}
	return updated, nil
}

// Delete implements invoice.InvoiceRepository. The counter is left as is,
// so a deleted number is never handed out again.
func (r *invoiceRepositoryImpl) Delete(ctx context.Context, tenantID string, id string) error {
	if !validID(id) {
		return invoice.ErrInvoiceNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM invoices WHERE id = $1 AND tenant_id = $2", id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return invoice.ErrInvoiceNotFound
	}
	return nil
}
