package staff

import (
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/validator"
)

var validRoles = []string{string(RoleAdmin), string(RoleStaff)}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if r.Password == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}
	if !validator.IsInSlice(string(r.Role), validRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be Admin or Staff",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   int64     `json:"expires_at"`
	User        StaffInfo `json:"user"`
}

type StaffInfo struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
	Position string `json:"position"`
}

type UpsertStaffRequest struct {
	Username string  `json:"username"`
	FullName string  `json:"full_name"`
	Role     Role    `json:"role"`
	Position string  `json:"position"`
	Password *string `json:"password,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpsertStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full name is required",
		})
	}
	if !validator.IsInSlice(string(r.Role), validRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be Admin or Staff",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
