package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/timetrackhq/timetrack-backend-go/internal/domain/attendance"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/employee"
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/calendar"
)

// Workday boundaries. Arrival at or before 08:15:00 counts as Present,
// anything after is Late. The status is fixed at check-in and check-out
// never revises it.
const (
	lateCutoffHour   = 8
	lateCutoffMinute = 15
)

// TxRunner executes fn atomically. The production wiring runs fn inside a
// database transaction; tests pass a plain passthrough.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

type AttendanceServiceImpl struct {
	runTx TxRunner
	attendance.AttendanceRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewAttendanceService(
	runTx TxRunner,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	now func() time.Time,
) attendance.AttendanceService {
	if now == nil {
		now = time.Now
	}
	return &AttendanceServiceImpl{
		runTx:                runTx,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		now:                  now,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID int64) (attendance.CheckResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.CheckResponse{}, err
	}

	now := s.now()
	today := calendar.DateOnly(now)
	status := classifyArrival(now)

	var created attendance.Attendance
	err := s.runTx(ctx, func(ctx context.Context) error {
		checkedIn, err := s.AttendanceRepository.HasCheckedInOn(ctx, employeeID, today)
		if err != nil {
			return fmt.Errorf("failed to check existing session: %w", err)
		}
		if checkedIn {
			return attendance.ErrAlreadyCheckedIn
		}

		timeIn := now
		created, err = s.AttendanceRepository.Create(ctx, attendance.Attendance{
			EmployeeID: employeeID,
			Date:       today,
			TimeIn:     &timeIn,
			Status:     status,
		})
		if err != nil {
			return fmt.Errorf("failed to create attendance record: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	return attendance.NewCheckResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID int64) (attendance.CheckResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.CheckResponse{}, err
	}

	now := s.now()
	today := calendar.DateOnly(now)

	session, err := s.AttendanceRepository.GetOpenSession(ctx, employeeID, today)
	if err != nil {
		return attendance.CheckResponse{}, err
	}

	if err := s.AttendanceRepository.SetTimeOut(ctx, session.RecordID, now); err != nil {
		return attendance.CheckResponse{}, fmt.Errorf("failed to close session: %w", err)
	}

	session.TimeOut = &now
	return attendance.NewCheckResponse(session), nil
}

// TodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayStatus(ctx context.Context, employeeID int64) (attendance.TodayStatusResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.TodayStatusResponse{}, err
	}

	today := calendar.DateOnly(s.now())
	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.TodayStatusResponse{}, nil
	}
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to load today's record: %w", err)
	}

	return attendance.NewTodayStatusResponse(record), nil
}

// classifyArrival decides Present or Late from the wall clock. The 08:15:00
// cutoff itself still counts as Present; any instant after it, including
// fractions of that second, is Late.
func classifyArrival(now time.Time) attendance.Status {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(),
		lateCutoffHour, lateCutoffMinute, 0, 0, now.Location())
	if now.After(cutoff) {
		return attendance.StatusLate
	}
	return attendance.StatusPresent
}
