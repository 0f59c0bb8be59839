package report

import (
	"context"
	"time"

	"github.com/timetrackhq/timetrack-backend-go/internal/domain/attendance"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/employee"
)

// EmployeeProfile is the slice of an employee row the aggregator needs.
type EmployeeProfile struct {
	LeaveCredits int
	CreatedAt    *time.Time
}

// ReportRepository supplies the raw rows the period aggregator folds. All
// methods are read-only and filter inactive employees.
type ReportRepository interface {
	// GetEmployeeProfile returns leave credits and hire timestamp for an
	// active employee, or employee.ErrEmployeeNotFound.
	GetEmployeeProfile(ctx context.Context, employeeID int64) (EmployeeProfile, error)

	// FirstAttendanceDate returns the employee's earliest record date, or
	// nil when they have no records at all.
	FirstAttendanceDate(ctx context.Context, employeeID int64) (*time.Time, error)

	// ListEmployeeRecords returns the employee's records ordered by date.
	// Nil bounds leave that side of the window open.
	ListEmployeeRecords(ctx context.Context, employeeID int64, from, to *time.Time) ([]attendance.Attendance, error)

	// ListRecordsBetween returns all active employees' records with
	// from <= date <= to, ordered by employee then date.
	ListRecordsBetween(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error)

	// ListActiveEmployees returns all active employees ordered by full name.
	ListActiveEmployees(ctx context.Context) ([]employee.Employee, error)

	// DepartmentCountsOn groups the single date's records by department.
	// Departments whose employees have no records still appear with zeros.
	DepartmentCountsOn(ctx context.Context, date time.Time) ([]DepartmentRow, error)

	// DepartmentCountsSince is DepartmentCountsOn over date >= since; a nil
	// since means no date filter at all.
	DepartmentCountsSince(ctx context.Context, since *time.Time) ([]DepartmentRow, error)
}
