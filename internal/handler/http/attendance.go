package http

import (
	"encoding/json"
	"net/http"

	"github.com/timetrackhq/timetrack-backend-go/internal/domain/attendance"
	"github.com/timetrackhq/timetrack-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	TodayStatus(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

type checkRequest struct {
	EmployeeID int64 `json:"employee_id"`
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.EmployeeID <= 0 {
		response.BadRequest(w, "A valid employee_id is required", nil)
		return
	}

	resp, err := h.attendanceService.CheckIn(r.Context(), req.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.EmployeeID <= 0 {
		response.BadRequest(w, "A valid employee_id is required", nil)
		return
	}

	resp, err := h.attendanceService.CheckOut(r.Context(), req.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// TodayStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) TodayStatus(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "A valid employee id is required", nil)
		return
	}

	status, err := h.attendanceService.TodayStatus(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, status)
}
