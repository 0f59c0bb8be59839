package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn = errors.New("already checked in today")

	// Check-out errors
	ErrNotCheckedIn = errors.New("not checked in today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
