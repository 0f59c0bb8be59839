package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/attendance"
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (employee_id, date, time_in, time_out, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING record_id
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.TimeIn,
		att.TimeOut,
		att.Status,
	).Scan(&att.RecordID)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return att, nil
}

// HasCheckedInOn implements attendance.AttendanceRepository. Placeholder
// rows with a null time_in deliberately do not count.
func (r *attendanceRepository) HasCheckedInOn(ctx context.Context, employeeID int64, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM attendance_records
			WHERE employee_id = $1
			  AND date = $2
			  AND time_in IS NOT NULL
		)
	`

	var checkedIn bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&checkedIn); err != nil {
		return false, fmt.Errorf("failed to check existing check-in: %w", err)
	}

	return checkedIn, nil
}

// GetOpenSession implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetOpenSession(ctx context.Context, employeeID int64, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT record_id, employee_id, date, time_in, time_out, status
		FROM attendance_records
		WHERE employee_id = $1
		  AND date = $2
		  AND time_in IS NOT NULL
		  AND time_out IS NULL
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.RecordID, &att.EmployeeID, &att.Date, &att.TimeIn, &att.TimeOut, &att.Status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNotCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return att, nil
}

// SetTimeOut implements attendance.AttendanceRepository. Only time_out
// changes; status stays whatever check-in decided.
func (r *attendanceRepository) SetTimeOut(ctx context.Context, recordID int64, timeOut time.Time) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE attendance_records SET time_out = $1 WHERE record_id = $2`,
		timeOut, recordID,
	)
	if err != nil {
		return fmt.Errorf("failed to set time out: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT record_id, employee_id, date, time_in, time_out, status
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.RecordID, &att.EmployeeID, &att.Date, &att.TimeIn, &att.TimeOut, &att.Status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return att, nil
}
