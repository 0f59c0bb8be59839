package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/attendance"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/employee"
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/calendar"
)

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[int64]employee.Employee
}

func (s *stubEmployeeRepo) GetByID(_ context.Context, id int64) (employee.Employee, error) {
	emp, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type memAttendanceRepo struct {
	records []attendance.Attendance
	nextID  int64
}

func (m *memAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	m.nextID++
	att.RecordID = m.nextID
	m.records = append(m.records, att)
	return att, nil
}

func (m *memAttendanceRepo) HasCheckedInOn(_ context.Context, employeeID int64, date time.Time) (bool, error) {
	for _, r := range m.records {
		if r.EmployeeID == employeeID && r.Date.Equal(date) && r.TimeIn != nil {
			return true, nil
		}
	}
	return false, nil
}

func (m *memAttendanceRepo) GetOpenSession(_ context.Context, employeeID int64, date time.Time) (attendance.Attendance, error) {
	for _, r := range m.records {
		if r.EmployeeID == employeeID && r.Date.Equal(date) && r.TimeIn != nil && r.TimeOut == nil {
			return r, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrNotCheckedIn
}

func (m *memAttendanceRepo) SetTimeOut(_ context.Context, recordID int64, timeOut time.Time) error {
	for i, r := range m.records {
		if r.RecordID == recordID {
			out := timeOut
			m.records[i].TimeOut = &out
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (m *memAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID int64, date time.Time) (attendance.Attendance, error) {
	for _, r := range m.records {
		if r.EmployeeID == employeeID && r.Date.Equal(date) {
			return r, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func passthroughTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(repo *memAttendanceRepo, clock time.Time) attendance.AttendanceService {
	emps := &stubEmployeeRepo{employees: map[int64]employee.Employee{
		1: {ID: 1, FullName: "Maria Santos", Department: "Engineering"},
	}}
	return NewAttendanceService(passthroughTx, repo, emps, func() time.Time { return clock })
}

func at(hour, minute, second int) time.Time {
	return time.Date(2024, 6, 3, hour, minute, second, 0, time.UTC)
}

func TestCheckInClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		clock time.Time
		want  attendance.Status
	}{
		{"workday start", at(8, 0, 0), attendance.StatusPresent},
		{"well before cutoff", at(7, 45, 12), attendance.StatusPresent},
		{"exactly on the cutoff", at(8, 15, 0), attendance.StatusPresent},
		{"half a second past the cutoff", at(8, 15, 0).Add(500 * time.Millisecond), attendance.StatusLate},
		{"one second past the cutoff", at(8, 15, 1), attendance.StatusLate},
		{"mid morning", at(10, 30, 0), attendance.StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &memAttendanceRepo{}
			svc := newTestService(repo, tt.clock)

			resp, err := svc.CheckIn(context.Background(), 1)
			require.NoError(t, err)
			assert.True(t, resp.Success)
			assert.Equal(t, tt.want, resp.Status)
			require.NotNil(t, resp.TimeIn)
			assert.Equal(t, tt.clock.Format("15:04"), *resp.TimeIn)
		})
	}
}

func TestCheckInTwiceSameDay(t *testing.T) {
	t.Parallel()

	repo := &memAttendanceRepo{}
	svc := newTestService(repo, at(8, 5, 0))

	_, err := svc.CheckIn(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), 1)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	assert.Len(t, repo.records, 1)
}

func TestCheckInUnknownEmployee(t *testing.T) {
	t.Parallel()

	svc := newTestService(&memAttendanceRepo{}, at(8, 0, 0))

	_, err := svc.CheckIn(context.Background(), 999)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCheckInIgnoresPlaceholderRow(t *testing.T) {
	t.Parallel()

	clock := at(8, 10, 0)
	repo := &memAttendanceRepo{
		records: []attendance.Attendance{
			{RecordID: 1, EmployeeID: 1, Date: calendar.DateOnly(clock), Status: attendance.StatusAbsent},
		},
		nextID: 1,
	}
	svc := newTestService(repo, clock)

	resp, err := svc.CheckIn(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, resp.Status)
}

func TestCheckOutClosesSession(t *testing.T) {
	t.Parallel()

	repo := &memAttendanceRepo{}

	in := newTestService(repo, at(8, 20, 0))
	resp, err := in.CheckIn(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, attendance.StatusLate, resp.Status)

	out := newTestService(repo, at(17, 2, 0))
	resp, err = out.CheckOut(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.TimeOut)
	assert.Equal(t, "17:02", *resp.TimeOut)

	// Check-out never upgrades a Late arrival.
	assert.Equal(t, attendance.StatusLate, resp.Status)
	assert.Equal(t, attendance.StatusLate, repo.records[0].Status)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	t.Parallel()

	svc := newTestService(&memAttendanceRepo{}, at(17, 0, 0))

	_, err := svc.CheckOut(context.Background(), 1)
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestTodayStatusFollowsTheCycle(t *testing.T) {
	t.Parallel()

	repo := &memAttendanceRepo{}

	status, err := newTestService(repo, at(7, 50, 0)).TodayStatus(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, status.CheckedIn)
	assert.False(t, status.CheckedOut)

	_, err = newTestService(repo, at(8, 25, 0)).CheckIn(context.Background(), 1)
	require.NoError(t, err)

	status, err = newTestService(repo, at(8, 30, 0)).TodayStatus(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, status.CheckedIn)
	assert.False(t, status.CheckedOut)
	assert.Equal(t, attendance.StatusLate, status.Status)
	require.NotNil(t, status.TimeIn)
	assert.Equal(t, "08:25", *status.TimeIn)

	_, err = newTestService(repo, at(17, 0, 0)).CheckOut(context.Background(), 1)
	require.NoError(t, err)

	status, err = newTestService(repo, at(17, 5, 0)).TodayStatus(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, status.CheckedIn)
	assert.True(t, status.CheckedOut)
	require.NotNil(t, status.TimeOut)
	assert.Equal(t, "17:00", *status.TimeOut)
}

func TestTodayStatusIgnoresPlaceholderRow(t *testing.T) {
	t.Parallel()

	clock := at(9, 0, 0)
	repo := &memAttendanceRepo{
		records: []attendance.Attendance{
			{RecordID: 1, EmployeeID: 1, Date: calendar.DateOnly(clock), Status: attendance.StatusAbsent},
		},
		nextID: 1,
	}

	status, err := newTestService(repo, clock).TodayStatus(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, status.CheckedIn)
	assert.Empty(t, status.Status)
}

func TestTodayStatusUnknownEmployee(t *testing.T) {
	t.Parallel()

	_, err := newTestService(&memAttendanceRepo{}, at(9, 0, 0)).TodayStatus(context.Background(), 999)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCheckOutTwice(t *testing.T) {
	t.Parallel()

	repo := &memAttendanceRepo{}

	_, err := newTestService(repo, at(8, 0, 0)).CheckIn(context.Background(), 1)
	require.NoError(t, err)

	_, err = newTestService(repo, at(12, 0, 0)).CheckOut(context.Background(), 1)
	require.NoError(t, err)

	_, err = newTestService(repo, at(18, 0, 0)).CheckOut(context.Background(), 1)
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}
