package attendance

import "time"

// Status classifies one employee's presence on one calendar date. It is
// decided at check-in and never revised afterwards, not even by check-out.
type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
)

// Attendance is one employee's record for one calendar date. A row with a
// nil TimeIn is a placeholder and does not count as a check-in.
type Attendance struct {
	RecordID   int64
	EmployeeID int64
	Date       time.Time
	TimeIn     *time.Time
	TimeOut    *time.Time
	Status     Status
}

// WorkedStatus reports whether the record counts as a worked day
// (Present or Late).
func (a Attendance) WorkedStatus() bool {
	return a.Status == StatusPresent || a.Status == StatusLate
}

// DurationHours is the session length in fractional hours. Open sessions run
// until now; negative spans (clock skew at check-out) clamp to 0.
func (a Attendance) DurationHours(now time.Time) float64 {
	if a.TimeIn == nil {
		return 0
	}
	end := now
	if a.TimeOut != nil {
		end = *a.TimeOut
	}
	hours := end.Sub(*a.TimeIn).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

// OvertimeHours is the portion of the session beyond the daily 8 hour
// threshold.
func (a Attendance) OvertimeHours(now time.Time) float64 {
	hours := a.DurationHours(now)
	if hours > overtimeThresholdHours {
		return hours - overtimeThresholdHours
	}
	return 0
}

const overtimeThresholdHours = 8.0
