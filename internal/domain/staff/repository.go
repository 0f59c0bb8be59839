package staff

import "context"

// StaffRepository defines data access for console user accounts. Staff are
// soft-deleted like employees.
type StaffRepository interface {
	// GetActive retrieves an active staff user by username and role.
	GetActive(ctx context.Context, username string, role Role) (StaffUser, error)

	// Create inserts a new staff user. ErrUsernameExists on conflict.
	Create(ctx context.Context, user StaffUser) error

	// Update rewrites the mutable fields of an existing staff user. An empty
	// PasswordHash leaves the stored hash untouched.
	Update(ctx context.Context, user StaffUser) error

	// ListActiveStaff lists active users with the Staff role.
	ListActiveStaff(ctx context.Context) ([]StaffUser, error)

	// Deactivate flips is_active to false.
	Deactivate(ctx context.Context, username string) error
}
