package report

import "context"

// ReportService computes per-employee and fleet-wide attendance statistics
// over daily, monthly, and yearly windows.
type ReportService interface {
	// GetEmployeeDetails builds the stats card for one employee. A period of
	// "month" uses the trailing 30 day window adjusted for hire date; any
	// other period is the all-time window.
	GetEmployeeDetails(ctx context.Context, employeeID int64, period string) (EmployeeDetail, error)

	// GetEmployeeMonthlyHours buckets one employee's records by month of the
	// given year. Only months with records appear.
	GetEmployeeMonthlyHours(ctx context.Context, employeeID int64, year int) ([]MonthlyHours, error)

	// GetEmployeeYearlyHours buckets one employee's entire history by year.
	GetEmployeeYearlyHours(ctx context.Context, employeeID int64) ([]YearlyHours, error)

	// GetAllEmployeesHoursForMonth reports every active employee's totals
	// for the given month, zero-filled for employees without records.
	GetAllEmployeesHoursForMonth(ctx context.Context, year, month int) ([]EmployeeHours, error)

	// GetAllEmployeesHoursForYear is the year-bucket variant.
	GetAllEmployeesHoursForYear(ctx context.Context, year int) ([]EmployeeHours, error)

	// GetDepartmentAttendance groups records in the period's window by
	// department. The daily view derives absent counts from active head
	// count rather than trusting stored Absent rows.
	GetDepartmentAttendance(ctx context.Context, period Period) ([]DepartmentRow, error)
}
