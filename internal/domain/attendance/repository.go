package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. Records
// are inserted at check-in and updated exactly once at check-out; nothing
// ever deletes them. The store carries a partial unique index on
// (employee_id, date) where time_in is not null, and the check-in service
// additionally wraps its existence check and insert in one transaction, so
// concurrent check-ins cannot produce duplicate sessions.
type AttendanceRepository interface {
	// Create inserts a new record and returns it with the store-assigned ID.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// HasCheckedInOn reports whether a record with a non-null time_in exists
	// for the employee on the given date. Placeholder rows do not count.
	HasCheckedInOn(ctx context.Context, employeeID int64, date time.Time) (bool, error)

	// GetOpenSession returns the employee's record for the given date that
	// has a time_in but no time_out yet. ErrNotCheckedIn when there is none.
	GetOpenSession(ctx context.Context, employeeID int64, date time.Time) (Attendance, error)

	// SetTimeOut writes time_out on the identified record. Status and
	// time_in are left untouched.
	SetTimeOut(ctx context.Context, recordID int64, timeOut time.Time) error

	// GetByEmployeeAndDate returns the employee's record for the date, or
	// ErrAttendanceNotFound.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (Attendance, error)
}
