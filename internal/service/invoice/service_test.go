package invoice

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/company"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/invoice"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/payroll-core-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contendedRepo reports contention for its first `failures` reservations.
type contendedRepo struct {
	invoice.InvoiceRepository
	failures int32
	calls    atomic.Int32
}

func (r *contendedRepo) Next(ctx context.Context, tenantID string) (int, error) {
	if r.calls.Add(1) <= r.failures {
		return 0, invoice.ErrAllocationContention
	}
	return r.InvoiceRepository.Next(ctx, tenantID)
}

func (r *contendedRepo) CreateWithNextNumber(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	if r.calls.Add(1) <= r.failures {
		return invoice.Invoice{}, invoice.ErrAllocationContention
	}
	return r.InvoiceRepository.CreateWithNextNumber(ctx, inv)
}

func newService(repo invoice.InvoiceRepository, companies company.CompanyRepository, maxRetries int) *InvoiceServiceImpl {
	svc := NewInvoiceService(repo, companies, maxRetries).(*InvoiceServiceImpl)
	svc.backoff = 0
	return svc
}

func createRequest() invoice.CreateInvoiceRequest {
	return invoice.CreateInvoiceRequest{
		CustomerName: "Acme",
		Items:        []invoice.Item{{Description: "Widget", Quantity: 2, Price: 50}},
		VAT:          10,
		InvoiceDate:  "2024-03-01",
		DueDate:      "2024-03-31",
	}
}

func TestAllocateInvoiceNumber_Sequential(t *testing.T) {
	store := memory.NewStore()
	svc := newService(memory.NewInvoiceRepository(store), memory.NewCompanyRepository(store), 5)
	ctx := context.Background()

	next, err := svc.PeekNextInvoiceNumber(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	for want := 1; want <= 3; want++ {
		got, err := svc.AllocateInvoiceNumber(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	created, err := svc.CreateInvoice(ctx, "t1", createRequest())
	require.NoError(t, err)
	assert.Equal(t, 4, created.InvoiceNumber)

	next, err = svc.PeekNextInvoiceNumber(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 5, next)

	other, err := svc.AllocateInvoiceNumber(ctx, "t2")
	require.NoError(t, err)
	assert.Equal(t, 1, other)

	_, err = svc.AllocateInvoiceNumber(ctx, " ")
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))
}

func TestCreateInvoice_ConcurrentNumbersAreUnique(t *testing.T) {
	store := memory.NewStore()
	svc := newService(memory.NewInvoiceRepository(store), memory.NewCompanyRepository(store), 5)
	ctx := context.Background()

	const n = 30
	numbers := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			created, err := svc.CreateInvoice(ctx, "t1", createRequest())
			assert.NoError(t, err)
			numbers[i] = created.InvoiceNumber
		}(i)
	}
	wg.Wait()

	sort.Ints(numbers)
	for i, got := range numbers {
		assert.Equal(t, i+1, got)
	}
}

func TestAllocateInvoiceNumber_RetriesContention(t *testing.T) {
	store := memory.NewStore()
	repo := &contendedRepo{InvoiceRepository: memory.NewInvoiceRepository(store), failures: 2}
	svc := newService(repo, memory.NewCompanyRepository(store), 5)

	got, err := svc.AllocateInvoiceNumber(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Equal(t, int32(3), repo.calls.Load())
}

func TestAllocateInvoiceNumber_GivesUpAfterMaxRetries(t *testing.T) {
	store := memory.NewStore()
	repo := &contendedRepo{InvoiceRepository: memory.NewInvoiceRepository(store), failures: 100}
	svc := newService(repo, memory.NewCompanyRepository(store), 3)

	_, err := svc.AllocateInvoiceNumber(context.Background(), "t1")
	assert.ErrorIs(t, err, invoice.ErrInvoiceNumberConflict)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Equal(t, int32(4), repo.calls.Load())

	_, err = svc.CreateInvoice(context.Background(), "t1", createRequest())
	assert.ErrorIs(t, err, invoice.ErrInvoiceNumberConflict)
}

func TestCreateInvoice_Validation(t *testing.T) {
	store := memory.NewStore()
	companies := memory.NewCompanyRepository(store)
	svc := newService(memory.NewInvoiceRepository(store), companies, 5)
	ctx := context.Background()

	req := createRequest()
	req.Items = nil
	_, err := svc.CreateInvoice(ctx, "t1", req)
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))

	missing := "0190a000-0000-7000-8000-000000000001"
	req = createRequest()
	req.CompanyID = &missing
	_, err = svc.CreateInvoice(ctx, "t1", req)
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)

	acme, err := companies.Create(ctx, company.Company{TenantID: "t1", Name: "Acme"})
	require.NoError(t, err)
	req.CompanyID = &acme.ID
	created, err := svc.CreateInvoice(ctx, "t1", req)
	require.NoError(t, err)
	assert.Equal(t, acme.ID, *created.CompanyID)
	assert.Equal(t, 100.0, created.SubTotal)
	assert.InDelta(t, 110.0, created.Total, 1e-9)
	assert.Equal(t, invoice.StatusDraft, created.Status)

	// The same company id means nothing to another tenant.
	_, err = svc.CreateInvoice(ctx, "t2", req)
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}

func TestUpdateInvoice_KeepsNumber(t *testing.T) {
	store := memory.NewStore()
	svc := newService(memory.NewInvoiceRepository(store), memory.NewCompanyRepository(store), 5)
	ctx := context.Background()

	created, err := svc.CreateInvoice(ctx, "t1", createRequest())
	require.NoError(t, err)

	status := string(invoice.StatusSent)
	updated, err := svc.UpdateInvoice(ctx, "t1", invoice.UpdateInvoiceRequest{
		ID:     created.ID,
		Status: &status,
		Items:  []invoice.Item{{Description: "Widget", Quantity: 4, Price: 50}},
	})
	require.NoError(t, err)
	assert.Equal(t, created.InvoiceNumber, updated.InvoiceNumber)
	assert.Equal(t, invoice.StatusSent, updated.Status)
	assert.InDelta(t, 220.0, updated.Total, 1e-9)

	bogus := "void"
	_, err = svc.UpdateInvoice(ctx, "t1", invoice.UpdateInvoiceRequest{ID: created.ID, Status: &bogus})
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))

	_, err = svc.UpdateInvoice(ctx, "t2", invoice.UpdateInvoiceRequest{ID: created.ID, Status: &status})
	assert.ErrorIs(t, err, invoice.ErrInvoiceNotFound)

	assert.ErrorIs(t, svc.DeleteInvoice(ctx, "t1", ""), invoice.ErrInvoiceIDRequired)
	require.NoError(t, svc.DeleteInvoice(ctx, "t1", created.ID))

	// Deleting does not free the number.
	next, err := svc.AllocateInvoiceNumber(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 2, next)
}

func TestMonthlyTotals(t *testing.T) {
	store := memory.NewStore()
	svc := newService(memory.NewInvoiceRepository(store), memory.NewCompanyRepository(store), 5)
	ctx := context.Background()

	for _, d := range []string{"2024-02-10", "2024-01-05", "2024-02-20"} {
		req := createRequest()
		req.InvoiceDate = d
		req.DueDate = d
		_, err := svc.CreateInvoice(ctx, "t1", req)
		require.NoError(t, err)
	}

	totals, err := svc.MonthlyTotals(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, invoice.MonthlyTotal{Month: "2024-01", Total: 110}, totals[0])
	assert.Equal(t, invoice.MonthlyTotal{Month: "2024-02", Total: 220}, totals[1])
}
