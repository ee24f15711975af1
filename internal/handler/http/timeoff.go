package http

import (
	"net/http"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/timeoff"
	"github.com/cmlabs-hris/payroll-core-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimeOffHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type timeOffHandlerImpl struct {
	timeOffService timeoff.TimeOffService
}

func NewTimeOffHandler(timeOffService timeoff.TimeOffService) TimeOffHandler {
	return &timeOffHandlerImpl{timeOffService: timeOffService}
}

func (h *timeOffHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req timeoff.SubmitTimeOffRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", map[string]string{"body": err.Error()})
		return
	}

	result, err := h.timeOffService.Submit(r.Context(), tenantID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time-off request submitted", result)
}

func (h *timeOffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := timeoff.TimeOffFilter{EmployeeID: queryPtr(r, "employee_id")}
	if s := r.URL.Query().Get("status"); s != "" {
		status := timeoff.Status(s)
		if !status.IsValid() {
			response.BadRequest(w, "Invalid status filter", map[string]string{"status": "must be one of Pending, Approved, Rejected"})
			return
		}
		filter.Status = &status
	}

	result, err := h.timeOffService.List(r.Context(), tenantID(r), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timeOffHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeOffService.Get(r.Context(), tenantID(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timeOffHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req timeoff.SetStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request body", map[string]string{"body": err.Error()})
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.timeOffService.SetStatus(r.Context(), tenantID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time-off request updated", result)
}

func (h *timeOffHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeOffService.Approve(r.Context(), tenantID(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time-off request approved", result)
}

func (h *timeOffHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeOffService.Reject(r.Context(), tenantID(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time-off request rejected", result)
}

func (h *timeOffHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.timeOffService.Delete(r.Context(), tenantID(r), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time-off request deleted", nil)
}
