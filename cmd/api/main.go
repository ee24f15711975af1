package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/payroll-core-go/internal/config"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/company"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/invoice"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-core-go/internal/domain/timeoff"
	appHTTP "github.com/cmlabs-hris/payroll-core-go/internal/handler/http"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-core-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/payroll-core-go/internal/repository/memory"
	"github.com/cmlabs-hris/payroll-core-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/payroll-core-go/internal/service/attendance"
	companyService "github.com/cmlabs-hris/payroll-core-go/internal/service/company"
	employeeService "github.com/cmlabs-hris/payroll-core-go/internal/service/employee"
	invoiceService "github.com/cmlabs-hris/payroll-core-go/internal/service/invoice"
	payrollService "github.com/cmlabs-hris/payroll-core-go/internal/service/payroll"
	timeOffService "github.com/cmlabs-hris/payroll-core-go/internal/service/timeoff"
	"github.com/go-chi/httplog/v3"
)

type repositories struct {
	employee   employee.EmployeeRepository
	attendance attendance.AttendanceRepository
	payroll    payroll.PayrollRepository
	company    company.CompanyRepository
	invoice    invoice.InvoiceRepository
	timeOff    timeoff.TimeOffRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open store", slog.String("driver", cfg.App.StoreDriver), slog.Any("error", err))
		os.Exit(1)
	}
	defer closeStore()

	rates := payroll.Rates{
		StandardHours:      cfg.Payroll.StandardHours,
		OvertimeMultiplier: cfg.Payroll.OvertimeMultiplier,
		TaxRate:            cfg.Payroll.TaxRate,
	}
	if err := rates.Validate(); err != nil {
		slog.Error("invalid payroll rates", slog.Any("error", err))
		os.Exit(1)
	}

	employeeSvc := employeeService.NewEmployeeService(repos.employee)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, repos.employee)
	payrollSvc := payrollService.NewPayrollService(repos.payroll, repos.employee, repos.attendance, payrollService.Config{
		Rates:          rates,
		MaxConcurrency: cfg.Payroll.MaxConcurrency,
	})
	companySvc := companyService.NewCompanyService(repos.company)
	invoiceSvc := invoiceService.NewInvoiceService(repos.invoice, repos.company, cfg.Invoice.AllocationMaxRetries)
	timeOffSvc := timeOffService.NewTimeOffService(repos.timeOff, repos.employee)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         logger,
			LogLevel:       level,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		JWTService,
		appHTTP.Handlers{
			Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
			Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
			Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
			Invoice:    appHTTP.NewInvoiceHandler(invoiceSvc),
			Company:    appHTTP.NewCompanyHandler(companySvc),
			TimeOff:    appHTTP.NewTimeOffHandler(timeOffSvc),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", slog.String("addr", server.Addr), slog.String("store", cfg.App.StoreDriver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", slog.Any("error", err))
	}
}

func openStore(ctx context.Context, cfg *config.Config) (repositories, func(), error) {
	if cfg.App.StoreDriver == config.StoreDriverMemory {
		store := memory.NewStore()
		return repositories{
			employee:   memory.NewEmployeeRepository(store),
			attendance: memory.NewAttendanceRepository(store),
			payroll:    memory.NewPayrollRepository(store),
			company:    memory.NewCompanyRepository(store),
			invoice:    memory.NewInvoiceRepository(store),
			timeOff:    memory.NewTimeOffRepository(store),
		}, func() {}, nil
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return repositories{}, nil, fmt.Errorf("connect to database: %w", err)
	}
	if cfg.Database.RunMigrations {
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return repositories{}, nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	return repositories{
		employee:   postgresql.NewEmployeeRepository(db),
		attendance: postgresql.NewAttendanceRepository(db),
		payroll:    postgresql.NewPayrollRepository(db),
		company:    postgresql.NewCompanyRepository(db),
		invoice:    postgresql.NewInvoiceRepository(db),
		timeOff:    postgresql.NewTimeOffRepository(db),
	}, db.Close, nil
}
