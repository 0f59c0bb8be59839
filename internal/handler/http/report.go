package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/timetrackhq/timetrack-backend-go/internal/domain/report"
	"github.com/timetrackhq/timetrack-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	EmployeeDetails(w http.ResponseWriter, r *http.Request)
	EmployeeMonthlyHours(w http.ResponseWriter, r *http.Request)
	EmployeeYearlyHours(w http.ResponseWriter, r *http.Request)
	AllEmployeesMonthlyHours(w http.ResponseWriter, r *http.Request)
	AllEmployeesYearlyHours(w http.ResponseWriter, r *http.Request)
	DepartmentAttendance(w http.ResponseWriter, r *http.Request)
	ExportDepartmentXLSX(w http.ResponseWriter, r *http.Request)
	ExportDepartmentPDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	exportService report.ExportService
}

func NewReportHandler(reportService report.ReportService, exportService report.ExportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		exportService: exportService,
	}
}

func periodParam(r *http.Request) report.Period {
	switch p := report.Period(r.URL.Query().Get("period")); p {
	case report.PeriodDaily, report.PeriodWeekly, report.PeriodMonthly, report.PeriodYearly:
		return p
	default:
		return report.PeriodAll
	}
}

// EmployeeDetails implements ReportHandler.
func (h *reportHandlerImpl) EmployeeDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	period := r.URL.Query().Get("period")
	if period == "" {
		period = "month"
	}

	detail, err := h.reportService.GetEmployeeDetails(r.Context(), id, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, detail)
}

// EmployeeMonthlyHours implements ReportHandler.
func (h *reportHandlerImpl) EmployeeMonthlyHours(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "Invalid year", nil)
		return
	}

	months, err := h.reportService.GetEmployeeMonthlyHours(r.Context(), id, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, months)
}

// EmployeeYearlyHours implements ReportHandler.
func (h *reportHandlerImpl) EmployeeYearlyHours(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	years, err := h.reportService.GetEmployeeYearlyHours(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, years)
}

// AllEmployeesMonthlyHours implements ReportHandler.
func (h *reportHandlerImpl) AllEmployeesMonthlyHours(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "Invalid year", nil)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		response.BadRequest(w, "Invalid month", nil)
		return
	}

	rows, err := h.reportService.GetAllEmployeesHoursForMonth(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

// AllEmployeesYearlyHours implements ReportHandler.
func (h *reportHandlerImpl) AllEmployeesYearlyHours(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "Invalid year", nil)
		return
	}

	rows, err := h.reportService.GetAllEmployeesHoursForYear(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rows)
}

// DepartmentAttendance implements ReportHandler. Polled alongside the
// dashboard, so it degrades to an empty list instead of erroring.
func (h *reportHandlerImpl) DepartmentAttendance(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.GetDepartmentAttendance(r.Context(), periodParam(r))
	if err != nil {
		slog.Error("failed to load department attendance", "error", err)
		response.Success(w, []report.DepartmentRow{})
		return
	}
	response.Success(w, rows)
}

// ExportDepartmentXLSX implements ReportHandler.
func (h *reportHandlerImpl) ExportDepartmentXLSX(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.exportService.DepartmentXLSX(r.Context(), periodParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	serveFile(w, data, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// ExportDepartmentPDF implements ReportHandler.
func (h *reportHandlerImpl) ExportDepartmentPDF(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.exportService.DepartmentPDF(r.Context(), periodParam(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	serveFile(w, data, filename, "application/pdf")
}

func serveFile(w http.ResponseWriter, data []byte, filename, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

func yearParam(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return time.Now().Year(), true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 2000 || year > 2200 {
		return 0, false
	}
	return year, true
}
