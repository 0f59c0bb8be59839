package staff

// Role separates the two console user types. Admins manage employees and
// staff accounts; staff only operate the attendance dashboard.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleStaff Role = "Staff"
)

type StaffUser struct {
	Username     string
	FullName     string
	Role         Role
	Position     string
	PasswordHash string
	IsActive     bool
}
