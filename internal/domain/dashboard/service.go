package dashboard

import "context"

// DashboardService builds the today snapshot the dashboard polls.
type DashboardService interface {
	// GetTodayRows returns one display row per active employee, with "--"
	// placeholders where timestamps are missing.
	GetTodayRows(ctx context.Context) ([]TodayRow, error)

	// GetTodayStats returns the headline counts for today.
	GetTodayStats(ctx context.Context) (TodayStats, error)

	// GetSnapshot returns rows and stats together, fetched concurrently.
	GetSnapshot(ctx context.Context) (Snapshot, error)
}
