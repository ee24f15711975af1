package invoice

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/company"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/invoice"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/tenant"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/metrics"
	"github.com/shopspring/decimal"
)

const (
	defaultMaxRetries = 5
	defaultBackoff    = 10 * time.Millisecond
)

type InvoiceServiceImpl struct {
	invoiceRepo invoice.InvoiceRepository
	companyRepo company.CompanyRepository
	maxRetries  int
	backoff     time.Duration
}

func NewInvoiceService(
	invoiceRepo invoice.InvoiceRepository,
	companyRepo company.CompanyRepository,
	maxRetries int,
) invoice.InvoiceService {
	if maxRetries < 0 {
		maxRetries = defaultMaxRetries
	}
	return &InvoiceServiceImpl{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
		maxRetries:  maxRetries,
		backoff:     defaultBackoff,
	}
}

// ========== NUMBERING ==========

// AllocateInvoiceNumber implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) AllocateInvoiceNumber(ctx context.Context, tenantID string) (int, error) {
	if err := tenant.Require(tenantID); err != nil {
		return 0, err
	}

	var number int
	err := s.withRetry(ctx, tenantID, func() error {
		n, err := s.invoiceRepo.Next(ctx, tenantID)
		number = n
		return err
	})
	if err != nil {
		return 0, err
	}

	metrics.InvoiceNumbersAllocated.Inc()
	return number, nil
}

// PeekNextInvoiceNumber implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) PeekNextInvoiceNumber(ctx context.Context, tenantID string) (int, error) {
	if err := tenant.Require(tenantID); err != nil {
		return 0, err
	}

	latest, ok, err := s.invoiceRepo.MaxInvoiceNumber(ctx, tenantID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 1, nil
	}
	return latest + 1, nil
}

// withRetry runs fn until it succeeds, fails with anything other than
// contention, or exhausts maxRetries.
func (s *InvoiceServiceImpl) withRetry(ctx context.Context, tenantID string, fn func() error) error {
	for attempt := 0; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !errors.Is(err, invoice.ErrAllocationContention) {
			return err
		}

		if attempt >= s.maxRetries {
			metrics.InvoiceAllocationConflicts.Inc()
			slog.ErrorContext(ctx, "invoice number allocation gave up",
				slog.String("tenant_id", tenantID),
				slog.Int("attempts", attempt+1),
				slog.Any("error", err),
			)
			return invoice.ErrInvoiceNumberConflict
		}

		metrics.InvoiceAllocationRetries.Inc()
		slog.WarnContext(ctx, "invoice number allocation contended, retrying",
			slog.String("tenant_id", tenantID),
			slog.Int("attempt", attempt+1),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.jitter(attempt)):
		}
	}
}

func (s *InvoiceServiceImpl) jitter(attempt int) time.Duration {
	if s.backoff <= 0 {
		return 0
	}
	base := s.backoff * time.Duration(attempt+1)
	return base + time.Duration(rand.Int63n(int64(s.backoff)))
}

// ========== INVOICES ==========

// CreateInvoice implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) CreateInvoice(ctx context.Context, tenantID string, req invoice.CreateInvoiceRequest) (invoice.InvoiceResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return invoice.InvoiceResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}
	if err := s.checkCompany(ctx, tenantID, req.CompanyID); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	draft := req.ToEntity(tenantID)
	var created invoice.Invoice
	err := s.withRetry(ctx, tenantID, func() error {
		inv, err := s.invoiceRepo.CreateWithNextNumber(ctx, draft)
		created = inv
		return err
	})
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	metrics.InvoiceNumbersAllocated.Inc()
	slog.InfoContext(ctx, "invoice created",
		slog.String("tenant_id", tenantID),
		slog.String("invoice_id", created.ID),
		slog.Int("invoice_number", created.InvoiceNumber),
	)
	return invoice.NewInvoiceResponse(created), nil
}

// GetInvoice implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) GetInvoice(ctx context.Context, tenantID string, id string) (invoice.InvoiceResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return invoice.InvoiceResponse{}, err
	}
	if strings.TrimSpace(id) == "" {
		return invoice.InvoiceResponse{}, invoice.ErrInvoiceIDRequired
	}

	inv, err := s.invoiceRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	return invoice.NewInvoiceResponse(inv), nil
}

// ListInvoices implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) ListInvoices(ctx context.Context, tenantID string, filter invoice.InvoiceFilter) ([]invoice.InvoiceResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]invoice.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		responses = append(responses, invoice.NewInvoiceResponse(inv))
	}
	return responses, nil
}

// UpdateInvoice implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) UpdateInvoice(ctx context.Context, tenantID string, req invoice.UpdateInvoiceRequest) (invoice.InvoiceResponse, error) {
	if err := tenant.Require(tenantID); err != nil {
		return invoice.InvoiceResponse{}, err
	}
	if strings.TrimSpace(req.ID) == "" {
		return invoice.InvoiceResponse{}, invoice.ErrInvoiceIDRequired
	}
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}
	if req.CompanyID != nil && *req.CompanyID != "" {
		if err := s.checkCompany(ctx, tenantID, req.CompanyID); err != nil {
			return invoice.InvoiceResponse{}, err
		}
	}

	current, err := s.invoiceRepo.GetByID(ctx, tenantID, req.ID)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	if err := req.Apply(&current); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	updated, err := s.invoiceRepo.Update(ctx, current)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	return invoice.NewInvoiceResponse(updated), nil
}

// DeleteInvoice implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) DeleteInvoice(ctx context.Context, tenantID string, id string) error {
	if err := tenant.Require(tenantID); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return invoice.ErrInvoiceIDRequired
	}
	return s.invoiceRepo.Delete(ctx, tenantID, id)
}

// MonthlyTotals implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) MonthlyTotals(ctx context.Context, tenantID string) ([]invoice.MonthlyTotal, error) {
	if err := tenant.Require(tenantID); err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.List(ctx, tenantID, invoice.InvoiceFilter{})
	if err != nil {
		return nil, err
	}

	sums := make(map[string]decimal.Decimal)
	for _, inv := range invoices {
		month := inv.InvoiceDate.Format("2006-01")
		sums[month] = sums[month].Add(decimal.NewFromFloat(inv.Total))
	}

	months := make([]string, 0, len(sums))
	for month := range sums {
		months = append(months, month)
	}
	sort.Strings(months)

	totals := make([]invoice.MonthlyTotal, 0, len(months))
	for _, month := range months {
		totals = append(totals, invoice.MonthlyTotal{
			Month: month,
			Total: sums[month].Round(2).InexactFloat64(),
		})
	}
	return totals, nil
}

func (s *InvoiceServiceImpl) checkCompany(ctx context.Context, tenantID string, companyID *string) error {
	if companyID == nil {
		return nil
	}
	_, err := s.companyRepo.GetByID(ctx, tenantID, *companyID)
	return err
}
