package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/employee"
	"github.com/timetrackhq/timetrack-backend-go/internal/handler/http/response"
	"github.com/timetrackhq/timetrack-backend-go/internal/service/photo"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	UploadPhoto(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	photoService    photo.PhotoService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, photoService photo.PhotoService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		photoService:    photoService,
	}
}

func employeeIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// Create implements EmployeeHandler.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created", created)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	emp, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, emp)
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employees)
}

// Update implements EmployeeHandler.
func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.employeeService.UpdateEmployee(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated", nil)
}

// Deactivate implements EmployeeHandler.
func (h *employeeHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	if err := h.employeeService.DeactivateEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deactivated", nil)
}

// UploadPhoto implements EmployeeHandler.
func (h *employeeHandlerImpl) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := employeeIDParam(r)
	if !ok {
		response.BadRequest(w, "Invalid employee ID", nil)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		response.BadRequest(w, "Field 'photo' is required", nil)
		return
	}
	defer file.Close()

	url, err := h.photoService.UploadEmployeePhoto(r.Context(), id, file, header.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Photo uploaded", map[string]string{"image_url": url})
}

// Search implements EmployeeHandler.
func (h *employeeHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	results, err := h.employeeService.SearchEmployees(r.Context(), query, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}
