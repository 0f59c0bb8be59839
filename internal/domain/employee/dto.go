package employee

import (
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName     string  `json:"full_name"`
	Position     string  `json:"position"`
	Department   string  `json:"department"`
	ImagePath    *string `json:"image_path,omitempty"`
	LeaveCredits *int    `json:"leave_credits,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full name is required",
		})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}
	if r.LeaveCredits != nil && *r.LeaveCredits < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_credits",
			Message: "leave credits cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FullName     *string `json:"full_name,omitempty"`
	Position     *string `json:"position,omitempty"`
	Department   *string `json:"department,omitempty"`
	ImagePath    *string `json:"image_path,omitempty"`
	LeaveCredits *int    `json:"leave_credits,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full name cannot be blank",
		})
	}
	if r.LeaveCredits != nil && *r.LeaveCredits < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_credits",
			Message: "leave credits cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           int64   `json:"employee_id"`
	FullName     string  `json:"full_name"`
	Position     string  `json:"position"`
	Department   string  `json:"department"`
	ImagePath    *string `json:"image_path,omitempty"`
	LeaveCredits int     `json:"leave_credits"`
	CreatedAt    string  `json:"created_at"`
}

// SearchResult is the trimmed row returned by the type-ahead employee search.
type SearchResult struct {
	ID       int64  `json:"employee_id"`
	FullName string `json:"full_name"`
}
