package employee

import "time"

type Employee struct {
	ID           int64
	FullName     string
	Position     string
	Department   string
	ImagePath    *string
	LeaveCredits int
	IsActive     bool
	CreatedAt    time.Time
}

// DefaultLeaveCredits is granted to every new employee.
const DefaultLeaveCredits = 15
