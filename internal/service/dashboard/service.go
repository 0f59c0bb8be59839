package dashboard

import (
	"context"
	"time"

	"github.com/timetrackhq/timetrack-backend-go/internal/domain/dashboard"
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/calendar"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	now func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository, now func() time.Time) dashboard.DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardServiceImpl{DashboardRepository: repo, now: now}
}

// GetTodayRows implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetTodayRows(ctx context.Context) ([]dashboard.TodayRow, error) {
	today := calendar.DateOnly(s.now())

	records, err := s.DashboardRepository.ListTodayRecords(ctx, today)
	if err != nil {
		return nil, err
	}

	rows := make([]dashboard.TodayRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, formatTodayRow(rec))
	}
	return rows, nil
}

// formatTodayRow maps a raw left-join row into its display shape. An
// employee without a check-in shows as Absent regardless of any stored
// status, so placeholder rows cannot leak a stale value.
func formatTodayRow(rec dashboard.TodayRecord) dashboard.TodayRow {
	row := dashboard.TodayRow{
		EmployeeID: rec.EmployeeID,
		FullName:   rec.FullName,
		Department: rec.Department,
		CheckIn:    dashboard.TimePlaceholder,
		CheckOut:   dashboard.TimePlaceholder,
		Status:     "Absent",
	}
	if rec.TimeIn == nil {
		return row
	}
	row.CheckIn = rec.TimeIn.Format("15:04")
	if rec.TimeOut != nil {
		row.CheckOut = rec.TimeOut.Format("15:04")
	}
	if rec.Status != nil {
		row.Status = *rec.Status
	}
	return row
}

// GetTodayStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetTodayStats(ctx context.Context) (dashboard.TodayStats, error) {
	today := calendar.DateOnly(s.now())

	totalActive, err := s.DashboardRepository.CountActiveEmployees(ctx)
	if err != nil {
		return dashboard.TodayStats{}, err
	}

	counts, err := s.DashboardRepository.CountStatusOn(ctx, today)
	if err != nil {
		return dashboard.TodayStats{}, err
	}

	absent := totalActive - (counts.Present + counts.Late)
	if absent < 0 {
		absent = 0
	}

	return dashboard.TodayStats{
		Present: counts.Present,
		Late:    counts.Late,
		Absent:  absent,
		Date:    today.Format("2006-01-02"),
	}, nil
}

// GetSnapshot implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetSnapshot(ctx context.Context) (dashboard.Snapshot, error) {
	var snapshot dashboard.Snapshot

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.GetTodayRows(gCtx)
		if err != nil {
			return err
		}
		snapshot.Rows = rows
		return nil
	})

	g.Go(func() error {
		stats, err := s.GetTodayStats(gCtx)
		if err != nil {
			return err
		}
		snapshot.Stats = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.Snapshot{}, err
	}
	return snapshot, nil
}
