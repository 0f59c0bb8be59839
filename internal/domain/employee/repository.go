package employee

import "context"

// EmployeeRepository defines data access for employee records. Deletion is
// always soft: rows are deactivated, never removed, so attendance history
// stays intact.
type EmployeeRepository interface {
	// Create inserts a new employee and returns it with the store-assigned ID.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an active employee by ID.
	GetByID(ctx context.Context, id int64) (Employee, error)

	// ListActive retrieves all active employees ordered by full name.
	ListActive(ctx context.Context) ([]Employee, error)

	// Update applies the non-nil fields of req to an existing employee.
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) error

	// Deactivate flips is_active to false (soft delete).
	Deactivate(ctx context.Context, id int64) error

	// SetImagePath updates only the image path.
	SetImagePath(ctx context.Context, id int64, imagePath string) error

	// Search matches active employees by name or ID substring.
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)

	// CountActive returns the number of active employees.
	CountActive(ctx context.Context) (int64, error)
}
