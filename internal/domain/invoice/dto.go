package invoice

import (
	"strconv"
	"time"

	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/validator"
)

type CreateInvoiceRequest struct {
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CompanyID     *string `json:"company_id,omitempty"`
	Items         []Item  `json:"items"`
	VAT           float64 `json:"vat"`
	Status        string  `json:"status,omitempty"` // defaults to draft
	InvoiceDate   string  `json:"invoice_date"`
	DueDate       string  `json:"due_date"`
}

func (r *CreateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CustomerName) {
		errs.Add("customer_name", "is required")
	}
	if r.CustomerEmail != "" && !validator.IsValidEmail(r.CustomerEmail) {
		errs.Add("customer_email", "must be a valid email address")
	}
	if r.CompanyID != nil && validator.IsEmpty(*r.CompanyID) {
		errs.Add("company_id", "must not be empty")
	}
	validateItems(&errs, r.Items)
	validateVAT(&errs, r.VAT)
	if r.Status != "" && !Status(r.Status).IsValid() {
		errs.Add("status", "must be one of draft, sent, paid, overdue")
	}
	validator.DateRange(&errs, "invoice_date", r.InvoiceDate, "due_date", r.DueDate)

	return errs.Err()
}

// ToEntity builds the invoice with computed totals. The number is assigned
// by the store. Validate must have passed.
func (r *CreateInvoiceRequest) ToEntity(tenantID string) Invoice {
	status := StatusDraft
	if r.Status != "" {
		status = Status(r.Status)
	}
	invoiceDate, _ := validator.IsValidDate(r.InvoiceDate)
	dueDate, _ := validator.IsValidDate(r.DueDate)
	subTotal, total := ComputeTotals(r.Items, r.VAT)

	return Invoice{
		TenantID:      tenantID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CompanyID:     r.CompanyID,
		Items:         append([]Item(nil), r.Items...),
		SubTotal:      subTotal,
		VAT:           r.VAT,
		Total:         total,
		Status:        status,
		InvoiceDate:   invoiceDate,
		DueDate:       dueDate,
	}
}

// UpdateInvoiceRequest changes anything but the invoice number. Status
// changes are not restricted to any particular order.
type UpdateInvoiceRequest struct {
	ID            string   `json:"-"`
	CustomerName  *string  `json:"customer_name,omitempty"`
	CustomerEmail *string  `json:"customer_email,omitempty"`
	CompanyID     *string  `json:"company_id,omitempty"`
	Items         []Item   `json:"items,omitempty"`
	VAT           *float64 `json:"vat,omitempty"`
	Status        *string  `json:"status,omitempty"`
	InvoiceDate   *string  `json:"invoice_date,omitempty"`
	DueDate       *string  `json:"due_date,omitempty"`
}

func (r *UpdateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "is required")
	}
	if r.CustomerName != nil && validator.IsEmpty(*r.CustomerName) {
		errs.Add("customer_name", "must not be empty")
	}
	if r.CustomerEmail != nil && *r.CustomerEmail != "" && !validator.IsValidEmail(*r.CustomerEmail) {
		errs.Add("customer_email", "must be a valid email address")
	}
	if r.Items != nil {
		validateItems(&errs, r.Items)
	}
	if r.VAT != nil {
		validateVAT(&errs, *r.VAT)
	}
	if r.Status != nil && !Status(*r.Status).IsValid() {
		errs.Add("status", "must be one of draft, sent, paid, overdue")
	}
	if r.InvoiceDate != nil {
		if _, ok := validator.IsValidDate(*r.InvoiceDate); !ok {
			errs.Add("invoice_date", "must be a valid date in YYYY-MM-DD format")
		}
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs.Add("due_date", "must be a valid date in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}

// Apply merges the set fields into inv and recomputes its totals. It fails
// when the merged dates are out of order.
func (r *UpdateInvoiceRequest) Apply(inv *Invoice) error {
	if r.CustomerName != nil {
		inv.CustomerName = *r.CustomerName
	}
	if r.CustomerEmail != nil {
		inv.CustomerEmail = *r.CustomerEmail
	}
	if r.CompanyID != nil {
		if *r.CompanyID == "" {
			inv.CompanyID = nil
		} else {
			id := *r.CompanyID
			inv.CompanyID = &id
		}
	}
	if r.Items != nil {
		inv.Items = append([]Item(nil), r.Items...)
	}
	if r.VAT != nil {
		inv.VAT = *r.VAT
	}
	if r.Status != nil {
		inv.Status = Status(*r.Status)
	}
	if r.InvoiceDate != nil {
		inv.InvoiceDate, _ = validator.IsValidDate(*r.InvoiceDate)
	}
	if r.DueDate != nil {
		inv.DueDate, _ = validator.IsValidDate(*r.DueDate)
	}
	if inv.DueDate.Before(inv.InvoiceDate) {
		return validator.ValidationErrors{{Field: "due_date", Message: "must not be before invoice_date"}}
	}

	inv.SubTotal, inv.Total = ComputeTotals(inv.Items, inv.VAT)
	return nil
}

type InvoiceFilter struct {
	Status    *Status
	CompanyID *string
}

type InvoiceResponse struct {
	ID            string  `json:"id"`
	InvoiceNumber int     `json:"invoice_number"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CompanyID     *string `json:"company_id,omitempty"`
	Items         []Item  `json:"items"`
	SubTotal      float64 `json:"sub_total"`
	VAT           float64 `json:"vat"`
	Total         float64 `json:"total"`
	Status        Status  `json:"status"`
	InvoiceDate   string  `json:"invoice_date"`
	DueDate       string  `json:"due_date"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func NewInvoiceResponse(inv Invoice) InvoiceResponse {
	items := inv.Items
	if items == nil {
		items = []Item{}
	}
	return InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerName:  inv.CustomerName,
		CustomerEmail: inv.CustomerEmail,
		CompanyID:     inv.CompanyID,
		Items:         items,
		SubTotal:      inv.SubTotal,
		VAT:           inv.VAT,
		Total:         inv.Total,
		Status:        inv.Status,
		InvoiceDate:   inv.InvoiceDate.Format(validator.DateLayout),
		DueDate:       inv.DueDate.Format(validator.DateLayout),
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     inv.UpdatedAt.Format(time.RFC3339),
	}
}

func validateItems(errs *validator.ValidationErrors, items []Item) {
	if len(items) == 0 {
		errs.Add("items", "at least one item is required")
		return
	}
	for i, item := range items {
		prefix := "items[" + strconv.Itoa(i) + "]."
		if validator.IsEmpty(item.Description) {
			errs.Add(prefix+"description", "is required")
		}
		if !validator.IsPositiveAmount(item.Quantity) {
			errs.Add(prefix+"quantity", "must be greater than zero")
		}
		if !validator.IsNonNegativeAmount(item.Price) {
			errs.Add(prefix+"price", "must be a non-negative number")
		}
	}
}

func validateVAT(errs *validator.ValidationErrors, vat float64) {
	if !validator.IsNonNegativeAmount(vat) || vat > 100 {
		errs.Add("vat", "must be a percentage between 0 and 100")
	}
}
