package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/timetrackhq/timetrack-backend-go/internal/domain/dashboard"
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// ListTodayRecords implements dashboard.DashboardRepository.
func (r *dashboardRepository) ListTodayRecords(ctx context.Context, date time.Time) ([]dashboard.TodayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.employee_id, e.full_name, e.department,
		       a.time_in, a.time_out, a.status
		FROM employees e
		LEFT JOIN attendance_records a
		       ON e.employee_id = a.employee_id AND a.date = $1
		WHERE e.is_active = TRUE
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's records: %w", err)
	}
	defer rows.Close()

	var records []dashboard.TodayRecord
	for rows.Next() {
		var rec dashboard.TodayRecord
		err := rows.Scan(&rec.EmployeeID, &rec.FullName, &rec.Department, &rec.TimeIn, &rec.TimeOut, &rec.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to scan today's record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// CountStatusOn implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountStatusOn(ctx context.Context, date time.Time) (dashboard.StatusCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(CASE WHEN a.status = 'Present' THEN 1 ELSE 0 END), 0) AS present,
		       COALESCE(SUM(CASE WHEN a.status = 'Late' THEN 1 ELSE 0 END), 0) AS late
		FROM attendance_records a
		INNER JOIN employees e ON e.employee_id = a.employee_id
		WHERE e.is_active = TRUE AND a.date = $1
	`

	var counts dashboard.StatusCounts
	err := q.QueryRow(ctx, query, date).Scan(&counts.Present, &counts.Late)
	if err != nil {
		return dashboard.StatusCounts{}, fmt.Errorf("failed to count today's statuses: %w", err)
	}

	return counts, nil
}

// CountActiveEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountActiveEmployees(ctx context.Context) (int64, error) {
	return NewEmployeeRepository(r.db).CountActive(ctx)
}
