package http

import (
	"net/http"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/invoice"
	"github.com/cmlabs-hris/payroll-core-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type InvoiceHandler interface {
	AllocateNumber(w http.ResponseWriter, r *http.Request)
	PeekNextNumber(w http.ResponseWriter, r *http.Request)

	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	MonthlyTotals(w http.ResponseWriter, r *http.Request)
}

type invoiceHandlerImpl struct {
	invoiceService invoice.InvoiceService
}

func NewInvoiceHandler(invoiceService invoice.InvoiceService) InvoiceHandler {
	return &invoiceHandlerImpl{invoiceService: invoiceService}
}

type invoiceNumberResponse struct {
	InvoiceNumber int `json:"invoice_number"`
}

// ========== NUMBERING ==========

func (h *invoiceHandlerImpl) AllocateNumber(w http.ResponseWriter, r *http.Request) {
	number, err := h.invoiceService.AllocateInvoiceNumber(r.Context(), tenantID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invoice number reserved", invoiceNumberResponse{InvoiceNumber: number})
}

func (h *invoiceHandlerImpl) PeekNextNumber(w http.ResponseWriter, r *http.Request) {
	number, err := h.invoiceService.PeekNextInvoiceNumber(r.Context(), tenantID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, invoiceNumberResponse{InvoiceNumber: number})
}

// ========== INVOICES ==========

func (h *invoiceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req invoice.CreateInvoiceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", map[string]string{"body": err.Error()})
		return
	}

	result, err := h.invoiceService.CreateInvoice(r.Context(), tenantID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invoice created successfully", result)
}

// List accepts optional status and company_id filters.
func (h *invoiceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter invoice.InvoiceFilter
	if s := r.URL.Query().Get("status"); s != "" {
		status := invoice.Status(s)
		if !status.IsValid() {
			response.BadRequest(w, "Invalid status filter", map[string]string{"status": "must be one of draft, sent, paid, overdue"})
			return
		}
		filter.Status = &status
	}
	filter.CompanyID = queryPtr(r, "company_id")

	result, err := h.invoiceService.ListInvoices(r.Context(), tenantID(r), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *invoiceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.invoiceService.GetInvoice(r.Context(), tenantID(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *invoiceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req invoice.UpdateInvoiceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", map[string]string{"body": err.Error()})
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.invoiceService.UpdateInvoice(r.Context(), tenantID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice updated successfully", result)
}

func (h *invoiceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.invoiceService.DeleteInvoice(r.Context(), tenantID(r), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice deleted successfully", nil)
}

func (h *invoiceHandlerImpl) MonthlyTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.invoiceService.MonthlyTotals(r.Context(), tenantID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, totals)
}
