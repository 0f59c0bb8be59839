package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/staff"
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/jwt"
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type fakeStaffRepo struct {
	users map[string]staff.StaffUser
}

func (f *fakeStaffRepo) GetActive(_ context.Context, username string, role staff.Role) (staff.StaffUser, error) {
	user, ok := f.users[username]
	if !ok || !user.IsActive || user.Role != role {
		return staff.StaffUser{}, staff.ErrStaffNotFound
	}
	return user, nil
}

func (f *fakeStaffRepo) Create(_ context.Context, user staff.StaffUser) error {
	if _, ok := f.users[user.Username]; ok {
		return staff.ErrUsernameExists
	}
	f.users[user.Username] = user
	return nil
}

func (f *fakeStaffRepo) Update(_ context.Context, user staff.StaffUser) error {
	existing, ok := f.users[user.Username]
	if !ok {
		return staff.ErrStaffNotFound
	}
	if user.PasswordHash == "" {
		user.PasswordHash = existing.PasswordHash
	}
	f.users[user.Username] = user
	return nil
}

func (f *fakeStaffRepo) ListActiveStaff(context.Context) ([]staff.StaffUser, error) {
	var out []staff.StaffUser
	for _, u := range f.users {
		if u.IsActive && u.Role == staff.RoleStaff {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeStaffRepo) Deactivate(_ context.Context, username string) error {
	user, ok := f.users[username]
	if !ok {
		return staff.ErrStaffNotFound
	}
	user.IsActive = false
	f.users[username] = user
	return nil
}

func newTestAuth(t *testing.T) (staff.AuthService, *fakeStaffRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeStaffRepo{users: map[string]staff.StaffUser{
		"admin": {
			Username:     "admin",
			FullName:     "Site Admin",
			Role:         staff.RoleAdmin,
			Position:     "Administrator",
			PasswordHash: string(hash),
			IsActive:     true,
		},
	}}

	jwtService := jwt.NewJWTService("test-secret-key", "15m", "168h")
	return NewAuthService(repo, jwtService), repo
}

func TestLogin(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuth(t)

	pair, err := svc.Login(context.Background(), staff.LoginRequest{
		Username: "admin", Password: "hunter22", Role: staff.RoleAdmin,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, pair.Response.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Site Admin", pair.Response.User.FullName)
	assert.Equal(t, staff.RoleAdmin, pair.Response.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuth(t)

	_, err := svc.Login(context.Background(), staff.LoginRequest{
		Username: "admin", Password: "wrong", Role: staff.RoleAdmin,
	})
	assert.ErrorIs(t, err, staff.ErrInvalidCredentials)
}

func TestLoginUnknownUserAndWrongRole(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuth(t)

	_, err := svc.Login(context.Background(), staff.LoginRequest{
		Username: "ghost", Password: "hunter22", Role: staff.RoleAdmin,
	})
	assert.ErrorIs(t, err, staff.ErrInvalidCredentials)

	// Right credentials under the wrong role tab fail identically.
	_, err = svc.Login(context.Background(), staff.LoginRequest{
		Username: "admin", Password: "hunter22", Role: staff.RoleStaff,
	})
	assert.ErrorIs(t, err, staff.ErrInvalidCredentials)
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuth(t)

	_, err := svc.Login(context.Background(), staff.LoginRequest{
		Username: "admin", Password: "hunter22", Role: staff.Role("Root"),
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "role")
}

func TestRefreshRotatesToken(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuth(t)

	pair, err := svc.Login(context.Background(), staff.LoginRequest{
		Username: "admin", Password: "hunter22", Role: staff.RoleAdmin,
	})
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.Response.AccessToken)

	// The spent token cannot be replayed.
	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, staff.ErrRefreshTokenRevoked)
}

func TestRefreshGarbageToken(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuth(t)

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, staff.ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuth(t)

	pair, err := svc.Login(context.Background(), staff.LoginRequest{
		Username: "admin", Password: "hunter22", Role: staff.RoleAdmin,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(pair.RefreshToken))

	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, staff.ErrRefreshTokenRevoked)
}

func TestCreateStaff(t *testing.T) {
	t.Parallel()

	svc, repo := newTestAuth(t)

	password := "s3cret!!"
	err := svc.CreateStaff(context.Background(), staff.UpsertStaffRequest{
		Username: "mlopez",
		FullName: "Mia Lopez",
		Role:     staff.RoleStaff,
		Position: "Front Desk",
		Password: &password,
	})
	require.NoError(t, err)

	stored := repo.users["mlopez"]
	assert.True(t, stored.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(password)))

	// Duplicate usernames are rejected by the store.
	err = svc.CreateStaff(context.Background(), staff.UpsertStaffRequest{
		Username: "mlopez", FullName: "Mia Lopez", Role: staff.RoleStaff, Password: &password,
	})
	assert.ErrorIs(t, err, staff.ErrUsernameExists)
}

func TestCreateStaffRequiresPassword(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuth(t)

	err := svc.CreateStaff(context.Background(), staff.UpsertStaffRequest{
		Username: "mlopez", FullName: "Mia Lopez", Role: staff.RoleStaff,
	})
	assert.ErrorIs(t, err, staff.ErrPasswordRequired)
}

func TestUpdateStaffKeepsHashWithoutPassword(t *testing.T) {
	t.Parallel()

	svc, repo := newTestAuth(t)
	before := repo.users["admin"].PasswordHash

	err := svc.UpdateStaff(context.Background(), staff.UpsertStaffRequest{
		Username: "admin",
		FullName: "Site Administrator",
		Role:     staff.RoleAdmin,
		Position: "Administrator",
	})
	require.NoError(t, err)

	assert.Equal(t, "Site Administrator", repo.users["admin"].FullName)
	assert.Equal(t, before, repo.users["admin"].PasswordHash)
}
