package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payroll_core_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payroll_core_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// PayrollRecordsGenerated counts records created by payroll runs.
	PayrollRecordsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payroll_core_payroll_records_generated_total",
			Help: "Payroll records created by generation runs.",
		},
	)

	// PayrollEmployeesFailed counts employees left out of a payroll run, by error kind.
	PayrollEmployeesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payroll_core_payroll_employees_failed_total",
			Help: "Employees skipped or failed during payroll generation, by error kind.",
		},
		[]string{"kind"},
	)

	InvoiceNumbersAllocated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payroll_core_invoice_numbers_allocated_total",
			Help: "Invoice numbers successfully reserved.",
		},
	)

	InvoiceAllocationRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payroll_core_invoice_allocation_retries_total",
			Help: "Invoice number allocation attempts retried after contention.",
		},
	)

	InvoiceAllocationConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payroll_core_invoice_allocation_conflicts_total",
			Help: "Invoice number allocations abandoned after exhausting retries.",
		},
	)

	TimeOffTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payroll_core_time_off_transitions_total",
			Help: "Time-off status changes by resulting status.",
		},
		[]string{"status"},
	)
)
