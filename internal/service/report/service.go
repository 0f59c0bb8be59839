package report

import (
	"context"
	"math"
	"time"

	"github.com/timetrackhq/timetrack-backend-go/internal/domain/attendance"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/report"
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/calendar"
)

// detailWindowDays is the trailing window of the employee stats card, and
// doubles as the expected-days constant outside the month view.
const detailWindowDays = 30

type ReportServiceImpl struct {
	report.ReportRepository
	now func() time.Time
}

func NewReportService(repo report.ReportRepository, now func() time.Time) report.ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportServiceImpl{ReportRepository: repo, now: now}
}

// GetEmployeeDetails implements report.ReportService.
func (s *ReportServiceImpl) GetEmployeeDetails(ctx context.Context, employeeID int64, period string) (report.EmployeeDetail, error) {
	profile, err := s.ReportRepository.GetEmployeeProfile(ctx, employeeID)
	if err != nil {
		return report.EmployeeDetail{}, err
	}

	now := s.now()
	today := calendar.DateOnly(now)

	startDate, err := s.employeeStartDate(ctx, employeeID, profile, today)
	if err != nil {
		return report.EmployeeDetail{}, err
	}

	var from *time.Time
	var expectedDays int
	if period == "month" {
		// New hires get a window starting at their hire date so they are
		// not charged absences for days before they existed.
		effectiveStart := calendar.MaxDate(today.AddDate(0, 0, -detailWindowDays), startDate)
		expectedDays = calendar.CountWeekdays(effectiveStart, today)
		from = &effectiveStart
	} else {
		expectedDays = detailWindowDays
	}

	records, err := s.ReportRepository.ListEmployeeRecords(ctx, employeeID, from, nil)
	if err != nil {
		return report.EmployeeDetail{}, err
	}

	attendedDates := map[time.Time]struct{}{}
	var presentRows, totalRows, absentRows int
	var hours float64
	for _, r := range records {
		totalRows++
		attendedDates[calendar.DateOnly(r.Date)] = struct{}{}
		if r.WorkedStatus() {
			presentRows++
		}
		if r.Status == attendance.StatusAbsent {
			absentRows++
		}
		hours += r.DurationHours(now)
	}

	var absences int
	var rate float64
	if period == "month" {
		absences = expectedDays - len(attendedDates)
		if absences < 0 {
			absences = 0
		}
		if expectedDays > 0 {
			rate = float64(presentRows) / float64(expectedDays) * 100
		}
	} else {
		absences = absentRows
		if totalRows > 0 {
			rate = float64(presentRows) / float64(totalRows) * 100
		}
	}

	var avgHours float64
	if presentRows > 0 {
		avgHours = hours / float64(presentRows)
	}

	return report.EmployeeDetail{
		Absences:       absences,
		Hours:          int(math.Round(hours)),
		LeaveCredits:   profile.LeaveCredits,
		AttendanceRate: int(math.Round(rate)),
		AvgHours:       round1(avgHours),
		Status:         rateLabel(rate),
	}, nil
}

// employeeStartDate resolves when the employee's attendance history begins:
// the hire timestamp, else their earliest record, else today.
func (s *ReportServiceImpl) employeeStartDate(ctx context.Context, employeeID int64, profile report.EmployeeProfile, today time.Time) (time.Time, error) {
	if profile.CreatedAt != nil {
		return calendar.DateOnly(*profile.CreatedAt), nil
	}
	first, err := s.ReportRepository.FirstAttendanceDate(ctx, employeeID)
	if err != nil {
		return time.Time{}, err
	}
	if first != nil {
		return calendar.DateOnly(*first), nil
	}
	return today, nil
}

// GetEmployeeMonthlyHours implements report.ReportService.
func (s *ReportServiceImpl) GetEmployeeMonthlyHours(ctx context.Context, employeeID int64, year int) ([]report.MonthlyHours, error) {
	now := s.now()
	today := calendar.DateOnly(now)
	yearStart, yearEnd := calendar.YearBounds(year)

	records, err := s.ReportRepository.ListEmployeeRecords(ctx, employeeID, &yearStart, &yearEnd)
	if err != nil {
		return nil, err
	}

	buckets := map[int]*hoursAccumulator{}
	for _, r := range records {
		month := int(r.Date.Month())
		acc, ok := buckets[month]
		if !ok {
			acc = newHoursAccumulator()
			buckets[month] = acc
		}
		acc.add(r, now)
	}

	var out []report.MonthlyHours
	for month := 1; month <= 12; month++ {
		acc, ok := buckets[month]
		if !ok {
			continue
		}
		monthStart, monthEnd := calendar.MonthBounds(year, time.Month(month))
		expected := calendar.CountWeekdays(monthStart, calendar.MinDate(monthEnd, today))
		out = append(out, report.MonthlyHours{
			Month:        month,
			Hours:        round2(acc.hours),
			Overtime:     round2(acc.overtime),
			WorkedDays:   len(acc.workedDates),
			AttendedDays: len(acc.attendedDates),
			ExpectedDays: expected,
			Absences:     nonNegative(expected - len(acc.attendedDates)),
		})
	}
	return out, nil
}

// GetEmployeeYearlyHours implements report.ReportService.
func (s *ReportServiceImpl) GetEmployeeYearlyHours(ctx context.Context, employeeID int64) ([]report.YearlyHours, error) {
	profile, err := s.ReportRepository.GetEmployeeProfile(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := calendar.DateOnly(now)

	records, err := s.ReportRepository.ListEmployeeRecords(ctx, employeeID, nil, nil)
	if err != nil {
		return nil, err
	}

	buckets := map[int]*hoursAccumulator{}
	var years []int
	for _, r := range records {
		year := r.Date.Year()
		acc, ok := buckets[year]
		if !ok {
			acc = newHoursAccumulator()
			buckets[year] = acc
			years = append(years, year)
		}
		acc.add(r, now)
	}

	var out []report.YearlyHours
	for _, year := range years {
		acc := buckets[year]
		yearStart, yearEnd := calendar.YearBounds(year)
		hireDate := yearStart
		if profile.CreatedAt != nil {
			hireDate = calendar.DateOnly(*profile.CreatedAt)
		}
		expected := calendar.CountWeekdays(
			calendar.MaxDate(yearStart, hireDate),
			calendar.MinDate(yearEnd, today),
		)
		out = append(out, report.YearlyHours{
			Year:         year,
			Hours:        round2(acc.hours),
			Overtime:     round2(acc.overtime),
			WorkedDays:   len(acc.workedDates),
			AttendedDays: len(acc.attendedDates),
			ExpectedDays: expected,
			Absences:     nonNegative(expected - len(acc.attendedDates)),
		})
	}
	return out, nil
}

// GetAllEmployeesHoursForMonth implements report.ReportService.
func (s *ReportServiceImpl) GetAllEmployeesHoursForMonth(ctx context.Context, year, month int) ([]report.EmployeeHours, error) {
	bucketStart, bucketEnd := calendar.MonthBounds(year, time.Month(month))
	return s.fleetHours(ctx, bucketStart, bucketEnd, 0)
}

// GetAllEmployeesHoursForYear implements report.ReportService.
func (s *ReportServiceImpl) GetAllEmployeesHoursForYear(ctx context.Context, year int) ([]report.EmployeeHours, error) {
	bucketStart, bucketEnd := calendar.YearBounds(year)
	return s.fleetHours(ctx, bucketStart, bucketEnd, year)
}

// fleetHours builds one bucket row per active employee, zero-filled for
// employees with no records in the window.
func (s *ReportServiceImpl) fleetHours(ctx context.Context, bucketStart, bucketEnd time.Time, year int) ([]report.EmployeeHours, error) {
	now := s.now()
	today := calendar.DateOnly(now)

	employees, err := s.ReportRepository.ListActiveEmployees(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.ReportRepository.ListRecordsBetween(ctx, bucketStart, bucketEnd)
	if err != nil {
		return nil, err
	}

	perEmployee := map[int64]*hoursAccumulator{}
	for _, r := range records {
		acc, ok := perEmployee[r.EmployeeID]
		if !ok {
			acc = newHoursAccumulator()
			perEmployee[r.EmployeeID] = acc
		}
		acc.add(r, now)
	}

	out := make([]report.EmployeeHours, 0, len(employees))
	for _, emp := range employees {
		acc, ok := perEmployee[emp.ID]
		if !ok {
			acc = newHoursAccumulator()
		}

		hireDate := bucketStart
		if !emp.CreatedAt.IsZero() {
			hireDate = calendar.DateOnly(emp.CreatedAt)
		}
		expected := calendar.CountWeekdays(
			calendar.MaxDate(bucketStart, hireDate),
			calendar.MinDate(bucketEnd, today),
		)

		out = append(out, report.EmployeeHours{
			EmployeeID:   emp.ID,
			FullName:     emp.FullName,
			Year:         year,
			Hours:        round2(acc.hours),
			Overtime:     round2(acc.overtime),
			WorkedDays:   len(acc.workedDates),
			AttendedDays: len(acc.attendedDates),
			ExpectedDays: expected,
			Absences:     nonNegative(expected - len(acc.attendedDates)),
		})
	}
	return out, nil
}

// GetDepartmentAttendance implements report.ReportService.
func (s *ReportServiceImpl) GetDepartmentAttendance(ctx context.Context, period report.Period) ([]report.DepartmentRow, error) {
	today := calendar.DateOnly(s.now())

	if period == report.PeriodDaily {
		rows, err := s.ReportRepository.DepartmentCountsOn(ctx, today)
		if err != nil {
			return nil, err
		}
		// Stored Absent rows are unreliable for a single day; derive absent
		// from the department head count instead.
		for i := range rows {
			rows[i].Absent = rows[i].TotalEmployees - rows[i].Present
			if rows[i].Absent < 0 {
				rows[i].Absent = 0
			}
		}
		return rows, nil
	}

	var since *time.Time
	switch period {
	case report.PeriodWeekly:
		d := today.AddDate(0, 0, -7)
		since = &d
	case report.PeriodMonthly:
		d := today.AddDate(0, 0, -30)
		since = &d
	case report.PeriodYearly:
		d := today.AddDate(0, 0, -365)
		since = &d
	}
	return s.ReportRepository.DepartmentCountsSince(ctx, since)
}

// hoursAccumulator folds one employee's records inside one bucket.
type hoursAccumulator struct {
	hours         float64
	overtime      float64
	workedDates   map[time.Time]struct{}
	attendedDates map[time.Time]struct{}
}

func newHoursAccumulator() *hoursAccumulator {
	return &hoursAccumulator{
		workedDates:   map[time.Time]struct{}{},
		attendedDates: map[time.Time]struct{}{},
	}
}

func (a *hoursAccumulator) add(r attendance.Attendance, now time.Time) {
	date := calendar.DateOnly(r.Date)
	a.attendedDates[date] = struct{}{}
	if r.WorkedStatus() {
		a.workedDates[date] = struct{}{}
	}
	a.hours += r.DurationHours(now)
	a.overtime += r.OvertimeHours(now)
}

func rateLabel(rate float64) string {
	switch {
	case rate > 95:
		return "Excellent"
	case rate > 85:
		return "Good"
	default:
		return "Needs Improvement"
	}
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
