package staff

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrStaffNotFound       = errors.New("staff user not found")
	ErrUsernameExists      = errors.New("username already exists")
	ErrPasswordRequired    = errors.New("password is required")
	ErrAdminRequired       = errors.New("admin privilege required")
)
