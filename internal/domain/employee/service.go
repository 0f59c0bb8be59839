package employee

import "context"

// EmployeeService manages the employee roster. All reads see active
// employees only; removal is a soft deactivate.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id int64) (EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id int64, req UpdateEmployeeRequest) error
	DeactivateEmployee(ctx context.Context, id int64) error
	SearchEmployees(ctx context.Context, query string, limit int) ([]SearchResult, error)
}
