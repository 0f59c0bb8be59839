package http

import (
	"log/slog"
	"net/http"

	"github.com/timetrackhq/timetrack-backend-go/internal/domain/dashboard"
	"github.com/timetrackhq/timetrack-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	TodayRows(w http.ResponseWriter, r *http.Request)
	TodayStats(w http.ResponseWriter, r *http.Request)
	Snapshot(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// The dashboard polls these endpoints every few seconds. A backend hiccup
// degrades to an empty payload instead of an error so the poll loop keeps
// its last rendering and simply refreshes on the next tick.

// TodayRows implements DashboardHandler.
func (h *dashboardHandlerImpl) TodayRows(w http.ResponseWriter, r *http.Request) {
	rows, err := h.dashboardService.GetTodayRows(r.Context())
	if err != nil {
		slog.Error("failed to load today's attendance rows", "error", err)
		response.Success(w, []dashboard.TodayRow{})
		return
	}
	response.Success(w, rows)
}

// TodayStats implements DashboardHandler.
func (h *dashboardHandlerImpl) TodayStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetTodayStats(r.Context())
	if err != nil {
		slog.Error("failed to load today's stats", "error", err)
		response.Success(w, dashboard.TodayStats{})
		return
	}
	response.Success(w, stats)
}

// Snapshot implements DashboardHandler.
func (h *dashboardHandlerImpl) Snapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.dashboardService.GetSnapshot(r.Context())
	if err != nil {
		slog.Error("failed to load dashboard snapshot", "error", err)
		response.Success(w, dashboard.Snapshot{Rows: []dashboard.TodayRow{}})
		return
	}
	response.Success(w, snap)
}
