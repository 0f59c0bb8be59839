package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/employee"
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (full_name, position, department, image_path, leave_credits, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING employee_id, created_at
	`

	err := q.QueryRow(ctx, query,
		emp.FullName,
		emp.Position,
		emp.Department,
		emp.ImagePath,
		emp.LeaveCredits,
		emp.IsActive,
	).Scan(&emp.ID, &emp.CreatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, full_name, position, department, image_path, leave_credits, is_active, created_at
		FROM employees
		WHERE employee_id = $1 AND is_active = TRUE
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FullName, &emp.Position, &emp.Department,
		&emp.ImagePath, &emp.LeaveCredits, &emp.IsActive, &emp.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, full_name, position, department, image_path, leave_credits, is_active, created_at
		FROM employees
		WHERE is_active = TRUE
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.Position, &emp.Department,
			&emp.ImagePath, &emp.LeaveCredits, &emp.IsActive, &emp.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.FullName != nil {
		updates = append(updates, fmt.Sprintf("full_name = $%d", argIdx))
		args = append(args, *req.FullName)
		argIdx++
	}
	if req.Position != nil {
		updates = append(updates, fmt.Sprintf("position = $%d", argIdx))
		args = append(args, *req.Position)
		argIdx++
	}
	if req.Department != nil {
		updates = append(updates, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, *req.Department)
		argIdx++
	}
	if req.ImagePath != nil {
		updates = append(updates, fmt.Sprintf("image_path = $%d", argIdx))
		args = append(args, *req.ImagePath)
		argIdx++
	}
	if req.LeaveCredits != nil {
		updates = append(updates, fmt.Sprintf("leave_credits = $%d", argIdx))
		args = append(args, *req.LeaveCredits)
		argIdx++
	}

	if len(updates) == 0 {
		return nil
	}

	args = append(args, id)
	query := "UPDATE employees SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE employee_id = $%d AND is_active = TRUE RETURNING employee_id", argIdx)

	var updatedID int64
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// Deactivate implements employee.EmployeeRepository.
func (r *employeeRepository) Deactivate(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET is_active = FALSE WHERE employee_id = $1 AND is_active = TRUE`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// SetImagePath implements employee.EmployeeRepository.
func (r *employeeRepository) SetImagePath(ctx context.Context, id int64, imagePath string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE employees SET image_path = $1 WHERE employee_id = $2`,
		imagePath, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set employee image path: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Search implements employee.EmployeeRepository.
func (r *employeeRepository) Search(ctx context.Context, query string, limit int) ([]employee.SearchResult, error) {
	q := GetQuerier(ctx, r.db)

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}

	like := "%" + trimmed + "%"
	rows, err := q.Query(ctx, `
		SELECT employee_id, full_name
		FROM employees
		WHERE is_active = TRUE
		  AND (full_name ILIKE $1 OR CAST(employee_id AS TEXT) LIKE $1)
		ORDER BY full_name
		LIMIT $2
	`, like, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	defer rows.Close()

	var results []employee.SearchResult
	for rows.Next() {
		var res employee.SearchResult
		if err := rows.Scan(&res.ID, &res.FullName); err != nil {
			return nil, fmt.Errorf("failed to scan search result: %w", err)
		}
		results = append(results, res)
	}

	return results, rows.Err()
}

// CountActive implements employee.EmployeeRepository.
func (r *employeeRepository) CountActive(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}

	return count, nil
}
