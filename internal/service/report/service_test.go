package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/attendance"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/employee"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/report"
)

type fakeReportRepo struct {
	profile   report.EmployeeProfile
	firstDate *time.Time
	records   []attendance.Attendance
	employees []employee.Employee

	deptOn    []report.DepartmentRow
	deptSince []report.DepartmentRow
	lastSince *time.Time
	gotSince  bool
}

func (f *fakeReportRepo) GetEmployeeProfile(context.Context, int64) (report.EmployeeProfile, error) {
	return f.profile, nil
}

func (f *fakeReportRepo) FirstAttendanceDate(context.Context, int64) (*time.Time, error) {
	return f.firstDate, nil
}

func (f *fakeReportRepo) ListEmployeeRecords(_ context.Context, employeeID int64, from, to *time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if r.EmployeeID != employeeID {
			continue
		}
		if from != nil && r.Date.Before(*from) {
			continue
		}
		if to != nil && r.Date.After(*to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReportRepo) ListRecordsBetween(_ context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if r.Date.Before(from) || r.Date.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReportRepo) ListActiveEmployees(context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeReportRepo) DepartmentCountsOn(context.Context, time.Time) ([]report.DepartmentRow, error) {
	return f.deptOn, nil
}

func (f *fakeReportRepo) DepartmentCountsSince(_ context.Context, since *time.Time) ([]report.DepartmentRow, error) {
	f.gotSince = true
	f.lastSince = since
	return f.deptSince, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clock(y int, m time.Month, d, hour, minute int) time.Time {
	return time.Date(y, m, d, hour, minute, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time { return &t }

// session builds a closed record spanning the given clock times on one date.
func session(employeeID int64, day time.Time, status attendance.Status, inHour, inMin, outHour, outMin int) attendance.Attendance {
	in := time.Date(day.Year(), day.Month(), day.Day(), inHour, inMin, 0, 0, time.UTC)
	out := time.Date(day.Year(), day.Month(), day.Day(), outHour, outMin, 0, 0, time.UTC)
	return attendance.Attendance{
		EmployeeID: employeeID,
		Date:       day,
		TimeIn:     &in,
		TimeOut:    &out,
		Status:     status,
	}
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGetEmployeeDetailsMonthWindow(t *testing.T) {
	t.Parallel()

	// Hired June 10, viewed June 28: 15 weekdays in the effective window.
	now := clock(2024, time.June, 28, 12, 0)
	hired := date(2024, time.June, 10)
	repo := &fakeReportRepo{
		profile: report.EmployeeProfile{LeaveCredits: 12, CreatedAt: timePtr(hired)},
		records: []attendance.Attendance{
			session(1, date(2024, time.June, 10), attendance.StatusPresent, 8, 0, 17, 0),
			session(1, date(2024, time.June, 11), attendance.StatusLate, 9, 0, 17, 0),
			{EmployeeID: 1, Date: date(2024, time.June, 12), Status: attendance.StatusAbsent},
		},
	}

	svc := NewReportService(repo, fixedNow(now))
	detail, err := svc.GetEmployeeDetails(context.Background(), 1, "month")
	require.NoError(t, err)

	assert.Equal(t, 12, detail.Absences, "15 expected weekdays minus 3 attended")
	assert.Equal(t, 17, detail.Hours)
	assert.Equal(t, 12, detail.LeaveCredits)
	assert.Equal(t, 13, detail.AttendanceRate, "2 worked of 15 expected")
	assert.Equal(t, 8.5, detail.AvgHours)
	assert.Equal(t, "Needs Improvement", detail.Status)
}

func TestGetEmployeeDetailsAllTime(t *testing.T) {
	t.Parallel()

	now := clock(2024, time.June, 28, 12, 0)
	repo := &fakeReportRepo{
		profile: report.EmployeeProfile{LeaveCredits: 15, CreatedAt: timePtr(date(2024, time.January, 2))},
	}
	day := date(2024, time.January, 8)
	for i := 0; i < 20; i++ {
		repo.records = append(repo.records, session(1, day, attendance.StatusPresent, 8, 0, 16, 0))
		day = day.AddDate(0, 0, 1)
	}
	repo.records = append(repo.records, attendance.Attendance{
		EmployeeID: 1, Date: day, Status: attendance.StatusAbsent,
	})

	svc := NewReportService(repo, fixedNow(now))
	detail, err := svc.GetEmployeeDetails(context.Background(), 1, "all")
	require.NoError(t, err)

	// Outside the month view absences come straight from stored Absent rows
	// and the rate denominator is the record count.
	assert.Equal(t, 1, detail.Absences)
	assert.Equal(t, 160, detail.Hours)
	assert.Equal(t, 95, detail.AttendanceRate, "20 of 21 records worked")
	assert.Equal(t, 8.0, detail.AvgHours)
	assert.Equal(t, "Excellent", detail.Status, "95.24 unrounded clears the 95 bar")
}

func TestGetEmployeeDetailsNoRecords(t *testing.T) {
	t.Parallel()

	// Saturday, no hire date, no records: every denominator is zero.
	now := clock(2024, time.June, 1, 12, 0)
	repo := &fakeReportRepo{profile: report.EmployeeProfile{LeaveCredits: 15}}

	svc := NewReportService(repo, fixedNow(now))
	detail, err := svc.GetEmployeeDetails(context.Background(), 1, "month")
	require.NoError(t, err)

	assert.Equal(t, 0, detail.Absences)
	assert.Equal(t, 0, detail.Hours)
	assert.Equal(t, 0, detail.AttendanceRate)
	assert.Equal(t, 0.0, detail.AvgHours)
	assert.Equal(t, "Needs Improvement", detail.Status)
}

func TestGetEmployeeDetailsOpenSession(t *testing.T) {
	t.Parallel()

	// An open session accrues up to now.
	now := clock(2024, time.June, 3, 10, 0)
	checkIn := clock(2024, time.June, 3, 8, 0)
	repo := &fakeReportRepo{
		profile: report.EmployeeProfile{LeaveCredits: 15, CreatedAt: timePtr(date(2024, time.June, 3))},
		records: []attendance.Attendance{
			{EmployeeID: 1, Date: date(2024, time.June, 3), TimeIn: &checkIn, Status: attendance.StatusPresent},
		},
	}

	svc := NewReportService(repo, fixedNow(now))
	detail, err := svc.GetEmployeeDetails(context.Background(), 1, "month")
	require.NoError(t, err)

	assert.Equal(t, 2, detail.Hours)
	assert.Equal(t, 2.0, detail.AvgHours)
}

func TestGetEmployeeMonthlyHours(t *testing.T) {
	t.Parallel()

	now := clock(2024, time.July, 15, 18, 0)
	repo := &fakeReportRepo{
		records: []attendance.Attendance{
			session(1, date(2024, time.June, 3), attendance.StatusPresent, 8, 0, 18, 0),
			session(1, date(2024, time.June, 4), attendance.StatusPresent, 8, 0, 16, 0),
			session(1, date(2024, time.July, 1), attendance.StatusLate, 9, 0, 17, 0),
		},
	}

	svc := NewReportService(repo, fixedNow(now))
	months, err := svc.GetEmployeeMonthlyHours(context.Background(), 1, 2024)
	require.NoError(t, err)
	require.Len(t, months, 2, "only months with records appear")

	june := months[0]
	assert.Equal(t, 6, june.Month)
	assert.Equal(t, 18.0, june.Hours)
	assert.Equal(t, 2.0, june.Overtime, "10 hour day yields 2 overtime hours")
	assert.Equal(t, 2, june.WorkedDays)
	assert.Equal(t, 2, june.AttendedDays)
	assert.Equal(t, 20, june.ExpectedDays)
	assert.Equal(t, 18, june.Absences)

	july := months[1]
	assert.Equal(t, 7, july.Month)
	assert.Equal(t, 11, july.ExpectedDays, "a running month is capped at today")
	assert.Equal(t, 10, july.Absences)
}

func TestGetEmployeeYearlyHours(t *testing.T) {
	t.Parallel()

	now := clock(2024, time.June, 28, 12, 0)
	hired := date(2023, time.July, 3)
	repo := &fakeReportRepo{
		profile: report.EmployeeProfile{LeaveCredits: 15, CreatedAt: timePtr(hired)},
		records: []attendance.Attendance{
			session(1, date(2023, time.July, 3), attendance.StatusPresent, 8, 0, 17, 0),
			session(1, date(2024, time.January, 8), attendance.StatusPresent, 8, 0, 16, 0),
		},
	}

	svc := NewReportService(repo, fixedNow(now))
	years, err := svc.GetEmployeeYearlyHours(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, years, 2)

	assert.Equal(t, 2023, years[0].Year)
	// Hired July 3 2023: only weekdays from the hire date count against 2023.
	assert.Equal(t, 130, years[0].ExpectedDays)
	assert.Equal(t, 129, years[0].Absences)

	assert.Equal(t, 2024, years[1].Year)
	// 2024 runs Jan 1 through today, June 28.
	assert.Equal(t, 130, years[1].ExpectedDays)
}

func TestGetAllEmployeesHoursForMonth(t *testing.T) {
	t.Parallel()

	now := clock(2024, time.June, 28, 12, 0)
	repo := &fakeReportRepo{
		employees: []employee.Employee{
			{ID: 1, FullName: "Alice Reyes", CreatedAt: date(2024, time.January, 1)},
			{ID: 2, FullName: "Bob Tan", CreatedAt: date(2024, time.June, 17)},
			{ID: 3, FullName: "Carol Uy", CreatedAt: date(2024, time.January, 1)},
		},
		records: []attendance.Attendance{
			session(1, date(2024, time.June, 3), attendance.StatusPresent, 8, 0, 17, 0),
			session(2, date(2024, time.June, 17), attendance.StatusPresent, 8, 0, 16, 0),
		},
	}

	svc := NewReportService(repo, fixedNow(now))
	rows, err := svc.GetAllEmployeesHoursForMonth(context.Background(), 2024, 6)
	require.NoError(t, err)
	require.Len(t, rows, 3, "every active employee appears")

	alice := rows[0]
	assert.Equal(t, int64(1), alice.EmployeeID)
	assert.Equal(t, 9.0, alice.Hours)
	assert.Equal(t, 1.0, alice.Overtime)
	assert.Equal(t, 20, alice.ExpectedDays)
	assert.Equal(t, 19, alice.Absences)

	// Bob was hired mid-month; his expected days start at the hire date.
	bob := rows[1]
	assert.Equal(t, 10, bob.ExpectedDays)
	assert.Equal(t, 9, bob.Absences)

	// Carol has no records and comes back zero-filled.
	carol := rows[2]
	assert.Equal(t, 0.0, carol.Hours)
	assert.Equal(t, 0, carol.WorkedDays)
	assert.Equal(t, 20, carol.ExpectedDays)
	assert.Equal(t, 20, carol.Absences)
}

func TestGetDepartmentAttendanceDaily(t *testing.T) {
	t.Parallel()

	repo := &fakeReportRepo{
		deptOn: []report.DepartmentRow{
			{Department: "Engineering", TotalEmployees: 10, Present: 7, Late: 2, Absent: 99},
			{Department: "Sales", TotalEmployees: 3, Present: 4, Late: 0, Absent: 0},
		},
	}

	svc := NewReportService(repo, fixedNow(clock(2024, time.June, 3, 9, 0)))
	rows, err := svc.GetDepartmentAttendance(context.Background(), report.PeriodDaily)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Daily absent is derived from head count, never read from stored rows.
	assert.Equal(t, int64(3), rows[0].Absent)
	assert.Equal(t, int64(0), rows[1].Absent, "derived absent never goes negative")
}

func TestGetDepartmentAttendanceWindows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		period   report.Period
		wantDays int
		wantNil  bool
	}{
		{report.PeriodWeekly, 7, false},
		{report.PeriodMonthly, 30, false},
		{report.PeriodYearly, 365, false},
		{report.PeriodAll, 0, true},
	}

	today := date(2024, time.June, 28)
	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			t.Parallel()

			repo := &fakeReportRepo{}
			svc := NewReportService(repo, fixedNow(clock(2024, time.June, 28, 9, 0)))

			_, err := svc.GetDepartmentAttendance(context.Background(), tt.period)
			require.NoError(t, err)
			require.True(t, repo.gotSince)

			if tt.wantNil {
				assert.Nil(t, repo.lastSince)
				return
			}
			require.NotNil(t, repo.lastSince)
			assert.Equal(t, today.AddDate(0, 0, -tt.wantDays), *repo.lastSince)
		})
	}
}
