package http

import (
	"net/http"

	"github.com/cmlabs-hris/payroll-core-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-core-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordAttendanceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Invalid request format", map[string]string{"body": err.Error()})
		return
	}

	result, err := h.attendanceService.Record(r.Context(), tenantID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded successfully", result)
}

// List expects ?from=YYYY-MM-DD&to=YYYY-MM-DD and an optional employee_id.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := attendance.ListAttendanceRequest{
		From:       query.Get("from"),
		To:         query.Get("to"),
		EmployeeID: queryPtr(r, "employee_id"),
	}

	results, err := h.attendanceService.List(r.Context(), tenantID(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
