package attendance

import "time"

// CheckResponse is returned by the check-in and check-out endpoints. The
// kiosk UI only looks at Success; the rest is there so the today table can
// refresh without a second round trip.
type CheckResponse struct {
	Success  bool    `json:"success"`
	RecordID int64   `json:"record_id,omitempty"`
	Status   Status  `json:"status,omitempty"`
	TimeIn   *string `json:"time_in,omitempty"`
	TimeOut  *string `json:"time_out,omitempty"`
}

// NewCheckResponse maps a stored record into the wire shape.
func NewCheckResponse(att Attendance) CheckResponse {
	return CheckResponse{
		Success:  true,
		RecordID: att.RecordID,
		Status:   att.Status,
		TimeIn:   formatClock(att.TimeIn),
		TimeOut:  formatClock(att.TimeOut),
	}
}

// TodayStatusResponse describes the employee's position in today's
// check-in cycle.
type TodayStatusResponse struct {
	CheckedIn  bool    `json:"checked_in"`
	CheckedOut bool    `json:"checked_out"`
	Status     Status  `json:"status,omitempty"`
	TimeIn     *string `json:"time_in,omitempty"`
	TimeOut    *string `json:"time_out,omitempty"`
}

// NewTodayStatusResponse maps a stored record into the kiosk status shape.
// A placeholder row carries no session and maps to the zero value.
func NewTodayStatusResponse(att Attendance) TodayStatusResponse {
	if att.TimeIn == nil {
		return TodayStatusResponse{}
	}
	return TodayStatusResponse{
		CheckedIn:  true,
		CheckedOut: att.TimeOut != nil,
		Status:     att.Status,
		TimeIn:     formatClock(att.TimeIn),
		TimeOut:    formatClock(att.TimeOut),
	}
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}
