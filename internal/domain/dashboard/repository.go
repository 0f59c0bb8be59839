package dashboard

import (
	"context"
	"time"
)

// StatusCounts holds direct counts of status rows for one date.
type StatusCounts struct {
	Present int64
	Late    int64
}

// DashboardRepository supplies the today-snapshot queries. All methods are
// read-only; stale reads during concurrent check-ins are acceptable.
type DashboardRepository interface {
	// ListTodayRecords left-joins active employees against the date's
	// attendance; employees without a record come back with nil times.
	ListTodayRecords(ctx context.Context, date time.Time) ([]TodayRecord, error)

	// CountStatusOn counts Present and Late rows for active employees on
	// the date.
	CountStatusOn(ctx context.Context, date time.Time) (StatusCounts, error)

	// CountActiveEmployees returns the active head count.
	CountActiveEmployees(ctx context.Context) (int64, error)
}
