// Package memory keeps every repository in process memory. It backs the
// service tests and STORE_DRIVER=memory deployments; data is lost on exit.
package memory

import (
	"sync"
	"time"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/company"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/invoice"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/timeoff"
	"github.com/google/uuid"
)

// Store is shared by the repositories built from it. A single lock guards
// all collections, so each repository call is atomic.
type Store struct {
	mu sync.RWMutex

	employees  map[string]employee.Employee
	attendance map[string]attendance.Record
	payroll    map[string]payroll.Record
	companies  map[string]company.Company
	invoices   map[string]invoice.Invoice
	timeOff    map[string]timeoff.Request

	// last invoice number handed out per tenant
	counters map[string]int

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		employees:  make(map[string]employee.Employee),
		attendance: make(map[string]attendance.Record),
		payroll:    make(map[string]payroll.Record),
		companies:  make(map[string]company.Company),
		invoices:   make(map[string]invoice.Invoice),
		timeOff:    make(map[string]timeoff.Request),
		counters:   make(map[string]int),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
