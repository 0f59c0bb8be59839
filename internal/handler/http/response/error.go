package response

import (
	"errors"
	"net/http"

	"github.com/timetrackhq/timetrack-backend-go/internal/domain/attendance"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/employee"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/staff"
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Staff/auth domain errors
	case errors.Is(err, staff.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, staff.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, staff.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, staff.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff user not found")
	case errors.Is(err, staff.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, staff.ErrPasswordRequired):
		BadRequest(w, "Password is required", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUnsupportedImageType):
		BadRequest(w, "Only jpg, jpeg and png photos are accepted", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No open session to check out")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
