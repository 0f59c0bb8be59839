package report

// Period selects the date window for the department rollup.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
	PeriodAll     Period = "all"
)

// Label returns the human-readable period name used by exports.
func (p Period) Label() string {
	switch p {
	case PeriodDaily:
		return "Today"
	case PeriodWeekly:
		return "Last 7 Days"
	case PeriodMonthly:
		return "Last 30 Days"
	case PeriodYearly:
		return "Last 365 Days"
	default:
		return "All Time"
	}
}

// EmployeeDetail is the computed stats card for one employee. Numbers are
// rounded for display here and only here; accumulation stays fractional.
type EmployeeDetail struct {
	Absences       int     `json:"absences"`
	Hours          int     `json:"hours"`
	LeaveCredits   int     `json:"leave_credits"`
	AttendanceRate int     `json:"attendance_rate"`
	AvgHours       float64 `json:"avg_hours"`
	Status         string  `json:"status"`
}

// MonthlyHours is one month bucket for a single employee.
type MonthlyHours struct {
	Month        int     `json:"month"`
	Hours        float64 `json:"hours"`
	Overtime     float64 `json:"overtime"`
	WorkedDays   int     `json:"worked_days"`
	AttendedDays int     `json:"attended_days"`
	ExpectedDays int     `json:"expected_days"`
	Absences     int     `json:"absences"`
}

// YearlyHours is one year bucket for a single employee.
type YearlyHours struct {
	Year         int     `json:"year"`
	Hours        float64 `json:"hours"`
	Overtime     float64 `json:"overtime"`
	WorkedDays   int     `json:"worked_days"`
	AttendedDays int     `json:"attended_days"`
	ExpectedDays int     `json:"expected_days"`
	Absences     int     `json:"absences"`
}

// EmployeeHours is one employee's totals in a fleet-wide month or year
// report. Every active employee appears, zero-filled when they have no
// records in the bucket.
type EmployeeHours struct {
	EmployeeID   int64   `json:"employee_id"`
	FullName     string  `json:"full_name"`
	Year         int     `json:"year,omitempty"`
	Hours        float64 `json:"hours"`
	Overtime     float64 `json:"overtime"`
	WorkedDays   int     `json:"worked_days"`
	AttendedDays int     `json:"attended_days"`
	ExpectedDays int     `json:"expected_days"`
	Absences     int     `json:"absences"`
}

// DepartmentRow is one department's counts in the rollup.
type DepartmentRow struct {
	Department     string `json:"department"`
	TotalEmployees int64  `json:"total_employees"`
	Present        int64  `json:"present"`
	Late           int64  `json:"late"`
	Absent         int64  `json:"absent"`
}
