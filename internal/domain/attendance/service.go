package attendance

import "context"

// AttendanceService is the check-in/check-out state machine. Per employee
// and date the record moves NoRecord -> CheckedIn -> CheckedOut and never
// backwards.
type AttendanceService interface {
	// CheckIn records the employee's arrival for today and classifies it as
	// Present or Late. ErrAlreadyCheckedIn when a session already exists,
	// employee.ErrEmployeeNotFound when the ID is unknown or inactive.
	CheckIn(ctx context.Context, employeeID int64) (CheckResponse, error)

	// CheckOut closes today's open session. ErrNotCheckedIn when there is
	// no open session (never checked in, or already checked out).
	CheckOut(ctx context.Context, employeeID int64) (CheckResponse, error)

	// TodayStatus reports where the employee stands in today's cycle so
	// the kiosk can enable the right button. A placeholder row reads as
	// not checked in.
	TodayStatus(ctx context.Context, employeeID int64) (TodayStatusResponse, error)
}
