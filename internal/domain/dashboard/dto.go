package dashboard

import "time"

// TimePlaceholder renders in the check-in/check-out columns when the
// timestamp is missing.
const TimePlaceholder = "--"

// TodayRow is one line of the live attendance table: every active employee,
// whether or not they have a record today.
type TodayRow struct {
	EmployeeID int64  `json:"employee_id"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Status     string `json:"status"`
}

// TodayStats is the dashboard headline. Absent is always derived from the
// active head count, never read from stored rows.
type TodayStats struct {
	Present int64  `json:"present"`
	Late    int64  `json:"late"`
	Absent  int64  `json:"absent"`
	Date    string `json:"date"`
}

// Snapshot bundles the table and the headline for the combined endpoint the
// dashboard polls.
type Snapshot struct {
	Stats TodayStats `json:"stats"`
	Rows  []TodayRow `json:"rows"`
}

// TodayRecord is the raw left-join row the repository returns before
// display formatting.
type TodayRecord struct {
	EmployeeID int64
	FullName   string
	Department string
	TimeIn     *time.Time
	TimeOut    *time.Time
	Status     *string
}
