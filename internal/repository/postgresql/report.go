package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/attendance"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/employee"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/report"
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// GetEmployeeProfile implements report.ReportRepository.
func (r *reportRepository) GetEmployeeProfile(ctx context.Context, employeeID int64) (report.EmployeeProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT leave_credits, created_at
		FROM employees
		WHERE employee_id = $1 AND is_active = TRUE
	`

	var profile report.EmployeeProfile
	err := q.QueryRow(ctx, query, employeeID).Scan(&profile.LeaveCredits, &profile.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.EmployeeProfile{}, employee.ErrEmployeeNotFound
		}
		return report.EmployeeProfile{}, fmt.Errorf("failed to get employee profile: %w", err)
	}

	return profile, nil
}

// FirstAttendanceDate implements report.ReportRepository.
func (r *reportRepository) FirstAttendanceDate(ctx context.Context, employeeID int64) (*time.Time, error) {
	q := GetQuerier(ctx, r.db)

	var first *time.Time
	err := q.QueryRow(ctx,
		`SELECT MIN(date) FROM attendance_records WHERE employee_id = $1`,
		employeeID,
	).Scan(&first)
	if err != nil {
		return nil, fmt.Errorf("failed to get first attendance date: %w", err)
	}

	return first, nil
}

// ListEmployeeRecords implements report.ReportRepository.
func (r *reportRepository) ListEmployeeRecords(ctx context.Context, employeeID int64, from, to *time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if from != nil {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *from)
		argIdx++
	}
	if to != nil {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *to)
	}

	query := `
		SELECT record_id, employee_id, date, time_in, time_out, status
		FROM attendance_records
		WHERE ` + baseWhere + `
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee records: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// ListRecordsBetween implements report.ReportRepository. Records of
// deactivated employees are excluded so they never surface in fleet-wide
// reports.
func (r *reportRepository) ListRecordsBetween(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.record_id, a.employee_id, a.date, a.time_in, a.time_out, a.status
		FROM attendance_records a
		INNER JOIN employees e ON e.employee_id = a.employee_id
		WHERE e.is_active = TRUE
		  AND a.date >= $1 AND a.date <= $2
		ORDER BY a.employee_id, a.date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list records between dates: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// ListActiveEmployees implements report.ReportRepository.
func (r *reportRepository) ListActiveEmployees(ctx context.Context) ([]employee.Employee, error) {
	return NewEmployeeRepository(r.db).ListActive(ctx)
}

// DepartmentCountsOn implements report.ReportRepository.
func (r *reportRepository) DepartmentCountsOn(ctx context.Context, date time.Time) ([]report.DepartmentRow, error) {
	return r.departmentCounts(ctx, "AND a.date = $1", []interface{}{date})
}

// DepartmentCountsSince implements report.ReportRepository.
func (r *reportRepository) DepartmentCountsSince(ctx context.Context, since *time.Time) ([]report.DepartmentRow, error) {
	if since == nil {
		return r.departmentCounts(ctx, "", nil)
	}
	return r.departmentCounts(ctx, "AND a.date >= $1", []interface{}{*since})
}

func (r *reportRepository) departmentCounts(ctx context.Context, dateFilter string, args []interface{}) ([]report.DepartmentRow, error) {
	q := GetQuerier(ctx, r.db)

	// The date filter lives in the join condition so departments without
	// matching records still produce a row with zero counts.
	query := fmt.Sprintf(`
		SELECT e.department,
		       COUNT(DISTINCT e.employee_id) AS total_employees,
		       COALESCE(SUM(CASE WHEN a.status IN ('Present', 'Late') THEN 1 ELSE 0 END), 0) AS present,
		       COALESCE(SUM(CASE WHEN a.status = 'Late' THEN 1 ELSE 0 END), 0) AS late,
		       COALESCE(SUM(CASE WHEN a.status = 'Absent' THEN 1 ELSE 0 END), 0) AS absent
		FROM employees e
		LEFT JOIN attendance_records a ON e.employee_id = a.employee_id %s
		WHERE e.is_active = TRUE
		GROUP BY e.department
		ORDER BY e.department
	`, dateFilter)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get department counts: %w", err)
	}
	defer rows.Close()

	var result []report.DepartmentRow
	for rows.Next() {
		var row report.DepartmentRow
		err := rows.Scan(&row.Department, &row.TotalEmployees, &row.Present, &row.Late, &row.Absent)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

func scanAttendanceRows(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(&att.RecordID, &att.EmployeeID, &att.Date, &att.TimeIn, &att.TimeOut, &att.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}
	return records, rows.Err()
}
