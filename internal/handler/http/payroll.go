package http

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-core-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	// Payroll Records
	GeneratePayroll(w http.ResponseWriter, r *http.Request)
	ListPayrollRecords(w http.ResponseWriter, r *http.Request)
	GetPayrollRecord(w http.ResponseWriter, r *http.Request)
	UpdatePayrollRecord(w http.ResponseWriter, r *http.Request)
	DeletePayrollRecord(w http.ResponseWriter, r *http.Request)

	// Reports
	DownloadReport(w http.ResponseWriter, r *http.Request)
	GetReportSummary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== PAYROLL RECORDS ==========

func (h *payrollHandlerImpl) GeneratePayroll(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", map[string]string{"body": err.Error()})
		return
	}

	result, err := h.payrollService.GeneratePayroll(r.Context(), tenantID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := fmt.Sprintf("Generated %d payroll records", len(result.CreatedIDs))
	if len(result.Failures) > 0 {
		message = fmt.Sprintf("%s, %d employees skipped", message, len(result.Failures))
	}
	response.Created(w, message, result)
}

func (h *payrollHandlerImpl) ListPayrollRecords(w http.ResponseWriter, r *http.Request) {
	req := payroll.ListPayrollRequest{
		EmployeeID:  queryPtr(r, "employee_id"),
		PeriodStart: queryPtr(r, "period_start"),
		PeriodEnd:   queryPtr(r, "period_end"),
	}

	result, err := h.payrollService.GetPayroll(r.Context(), tenantID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetPayrollRecord(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetPayrollRecord(r.Context(), tenantID(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpdatePayrollRecord(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdatePayrollRecordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", map[string]string{"body": err.Error()})
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.payrollService.UpdatePayroll(r.Context(), tenantID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record updated successfully", result)
}

func (h *payrollHandlerImpl) DeletePayrollRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.DeletePayroll(r.Context(), tenantID(r), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record deleted successfully", nil)
}

// ========== REPORTS ==========

// DownloadReport streams the report as CSV.
func (h *payrollHandlerImpl) DownloadReport(w http.ResponseWriter, r *http.Request) {
	var req payroll.PayrollReportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", map[string]string{"body": err.Error()})
		return
	}

	report, err := h.payrollService.BuildReport(r.Context(), tenantID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", payroll.ReportFilename(req)))
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(report.CSVRecords()); err != nil {
		// Headers are already sent; all we can do is log.
		slog.ErrorContext(r.Context(), "failed to write payroll report", slog.Any("error", err))
	}
}

// GetReportSummary returns the same report as JSON, selected by the
// start_date, end_date and employee_id query parameters.
func (h *payrollHandlerImpl) GetReportSummary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := payroll.PayrollReportRequest{
		StartDate:  query.Get("start_date"),
		EndDate:    query.Get("end_date"),
		EmployeeID: query.Get("employee_id"),
	}

	report, err := h.payrollService.BuildReport(r.Context(), tenantID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
