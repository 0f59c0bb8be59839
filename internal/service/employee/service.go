package employee

import (
	"context"

	"github.com/timetrackhq/timetrack-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(repo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: repo}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	leaveCredits := employee.DefaultLeaveCredits
	if req.LeaveCredits != nil {
		leaveCredits = *req.LeaveCredits
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		FullName:     req.FullName,
		Position:     req.Position,
		Department:   req.Department,
		ImagePath:    req.ImagePath,
		LeaveCredits: leaveCredits,
		IsActive:     true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		out = append(out, toResponse(emp))
	}
	return out, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.EmployeeRepository.Update(ctx, id, req)
}

// DeactivateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeactivateEmployee(ctx context.Context, id int64) error {
	// Look the row up first so a repeat deactivate surfaces as not found
	// instead of silently succeeding.
	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.EmployeeRepository.Deactivate(ctx, id)
}

// SearchEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SearchEmployees(ctx context.Context, query string, limit int) ([]employee.SearchResult, error) {
	if query == "" {
		return []employee.SearchResult{}, nil
	}
	return s.EmployeeRepository.Search(ctx, query, limit)
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           emp.ID,
		FullName:     emp.FullName,
		Position:     emp.Position,
		Department:   emp.Department,
		ImagePath:    emp.ImagePath,
		LeaveCredits: emp.LeaveCredits,
		CreatedAt:    emp.CreatedAt.Format("2006-01-02"),
	}
}
