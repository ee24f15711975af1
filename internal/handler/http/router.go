package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/payroll-core-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
}

type Handlers struct {
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Payroll    PayrollHandler
	Invoice    InvoiceHandler
	Company    CompanyHandler
	TimeOff    TimeOffHandler
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  opts.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(middleware.Metrics)
	r.Use(chiMiddleware.AllowContentType("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired)
		r.Use(middleware.RequireTenant)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.ListEmployees)
			r.Post("/", h.Employee.CreateEmployee)
			r.Get("/age-distribution", h.Employee.AgeDistribution)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Employee.GetEmployee)
				r.Put("/", h.Employee.UpdateEmployee)
				r.Delete("/", h.Employee.DeleteEmployee)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.List)
			r.Post("/", h.Attendance.Record)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Get("/", h.Payroll.ListPayrollRecords)
			r.Post("/generate", h.Payroll.GeneratePayroll)
			r.Post("/report", h.Payroll.DownloadReport)
			r.Get("/report/summary", h.Payroll.GetReportSummary)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Payroll.GetPayrollRecord)
				r.Put("/", h.Payroll.UpdatePayrollRecord)
				r.Delete("/", h.Payroll.DeletePayrollRecord)
			})
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", h.Invoice.List)
			r.Post("/", h.Invoice.Create)
			r.Post("/number", h.Invoice.AllocateNumber)
			r.Get("/next-number", h.Invoice.PeekNextNumber)
			r.Get("/monthly-totals", h.Invoice.MonthlyTotals)

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", h.Company.List)
				r.Post("/", h.Company.Create)
				r.Get("/{id}", h.Company.GetByID)
				r.Delete("/{id}", h.Company.Delete)
			})

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Invoice.Get)
				r.Put("/", h.Invoice.Update)
				r.Delete("/", h.Invoice.Delete)
			})
		})

		r.Route("/timeoff", func(r chi.Router) {
			r.Get("/", h.TimeOff.List)
			r.Post("/", h.TimeOff.Submit)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.TimeOff.Get)
				r.Delete("/", h.TimeOff.Delete)
				r.Put("/status", h.TimeOff.SetStatus)
				r.Post("/approve", h.TimeOff.Approve)
				r.Post("/reject", h.TimeOff.Reject)
			})
		})
	})
	return r
}
