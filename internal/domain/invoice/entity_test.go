package invoice

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	items := []Item{
		{Description: "Consulting", Quantity: 10, Price: 150},
		{Description: "Hosting", Quantity: 1, Price: 49.5},
	}

	subTotal, total := ComputeTotals(items, 10)
	assert.InDelta(t, 1549.5, subTotal, 1e-9)
	assert.InDelta(t, 1704.45, total, 1e-9)

	subTotal, total = ComputeTotals(nil, 21)
	assert.Zero(t, subTotal)
	assert.Zero(t, total)
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusSent, StatusPaid, StatusOverdue} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Status("void").IsValid())
	assert.False(t, Status("").IsValid())
}

func validCreateRequest() CreateInvoiceRequest {
	return CreateInvoiceRequest{
		CustomerName: "Acme Corp",
		Items:        []Item{{Description: "Widget", Quantity: 2, Price: 50}},
		VAT:          20,
		InvoiceDate:  "2024-03-01",
		DueDate:      "2024-03-31",
	}
}

func TestCreateInvoiceRequest_Validate(t *testing.T) {
	req := validCreateRequest()
	require.NoError(t, req.Validate())

	inv := req.ToEntity("t1")
	assert.Equal(t, StatusDraft, inv.Status)
	assert.Equal(t, 100.0, inv.SubTotal)
	assert.InDelta(t, 120.0, inv.Total, 1e-9)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), inv.InvoiceDate)
	assert.Zero(t, inv.InvoiceNumber)

	bad := CreateInvoiceRequest{
		CustomerEmail: "nope",
		Items:         []Item{{Quantity: 0, Price: -1}},
		VAT:           150,
		Status:        "void",
		InvoiceDate:   "2024-03-31",
		DueDate:       "2024-03-01",
	}
	err := bad.Validate()
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidArgument, apperror.KindOf(err))
	for _, field := range []string{"customer_name", "customer_email", "items[0].description", "items[0].quantity", "items[0].price", "vat", "status", "due_date"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestUpdateInvoiceRequest_Apply(t *testing.T) {
	req := validCreateRequest()
	inv := req.ToEntity("t1")
	inv.InvoiceNumber = 7

	status := string(StatusPaid)
	vat := 0.0
	update := UpdateInvoiceRequest{
		ID:     "inv-1",
		Items:  []Item{{Description: "Widget", Quantity: 3, Price: 50}},
		VAT:    &vat,
		Status: &status,
	}
	require.NoError(t, update.Validate())
	require.NoError(t, update.Apply(&inv))

	assert.Equal(t, 7, inv.InvoiceNumber)
	assert.Equal(t, StatusPaid, inv.Status)
	assert.Equal(t, 150.0, inv.SubTotal)
	assert.Equal(t, 150.0, inv.Total)

	early := "2024-02-01"
	badDates := UpdateInvoiceRequest{ID: "inv-1", DueDate: &early}
	require.NoError(t, badDates.Validate())
	assert.Error(t, badDates.Apply(&inv))
}
