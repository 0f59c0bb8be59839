package staff

import "context"

// TokenPair carries the refresh token alongside the login payload; the
// handler turns it into an HTTP-only cookie.
type TokenPair struct {
	Response         LoginResponse
	RefreshToken     string
	RefreshExpiresAt int64
}

// AuthService authenticates console users and manages staff accounts.
type AuthService interface {
	// Login verifies credentials against the stored bcrypt hash and issues
	// an access/refresh token pair. ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, req LoginRequest) (TokenPair, error)

	// Refresh rotates a refresh token: the old token's JTI is revoked and a
	// fresh pair is issued. ErrRefreshTokenRevoked when the token was
	// already spent.
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)

	// Logout revokes the refresh token so it cannot be replayed.
	Logout(refreshToken string) error

	// CreateStaff registers a new console account. Admin only.
	CreateStaff(ctx context.Context, req UpsertStaffRequest) error

	// UpdateStaff rewrites an account; a nil password keeps the old hash.
	UpdateStaff(ctx context.Context, req UpsertStaffRequest) error

	// ListStaff lists active Staff-role accounts.
	ListStaff(ctx context.Context) ([]StaffInfo, error)

	// DeactivateStaff soft-deletes an account.
	DeactivateStaff(ctx context.Context, username string) error
}
