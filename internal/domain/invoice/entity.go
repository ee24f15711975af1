package invoice

import "time"

type Status string

const (
	StatusDraft   Status = "draft"
	StatusSent    Status = "sent"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

type Item struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
}

// Invoice numbers are allocated per tenant starting at 1 and never change
// once assigned.
type Invoice struct {
	ID            string
	TenantID      string
	InvoiceNumber int
	CustomerName  string
	CustomerEmail string
	CompanyID     *string
	Items         []Item
	SubTotal      float64
	VAT           float64
	Total         float64
	Status        Status
	InvoiceDate   time.Time
	DueDate       time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ComputeTotals returns the sum of quantity x price and that sum with VAT
// (a percentage) applied.
func ComputeTotals(items []Item, vat float64) (subTotal, total float64) {
	for _, item := range items {
		subTotal += item.Quantity * item.Price
	}
	return subTotal, subTotal * (1 + vat/100)
}

// MonthlyTotal is the invoiced total for one calendar month ("2024-01").
type MonthlyTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}
