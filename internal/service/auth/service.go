package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/timetrackhq/timetrack-backend-go/internal/domain/staff"
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	staff.StaffRepository
	jwtService jwt.Service
}

func NewAuthService(repo staff.StaffRepository, jwtService jwt.Service) staff.AuthService {
	return &AuthServiceImpl{
		StaffRepository: repo,
		jwtService:      jwtService,
	}
}

// Login implements staff.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req staff.LoginRequest) (staff.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return staff.TokenPair{}, err
	}

	user, err := s.StaffRepository.GetActive(ctx, req.Username, req.Role)
	if err != nil {
		if errors.Is(err, staff.ErrStaffNotFound) {
			// Same error as a bad password so login probes can't tell
			// usernames apart.
			return staff.TokenPair{}, staff.ErrInvalidCredentials
		}
		return staff.TokenPair{}, fmt.Errorf("failed to load staff user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return staff.TokenPair{}, staff.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Refresh implements staff.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (staff.TokenPair, error) {
	username, jti, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return staff.TokenPair{}, staff.ErrInvalidToken
	}

	if s.jwtService.IsTokenRevoked(jti) {
		return staff.TokenPair{}, staff.ErrRefreshTokenRevoked
	}

	user, err := s.findActiveByUsername(ctx, username)
	if err != nil {
		return staff.TokenPair{}, err
	}

	// Rotate: the spent token is dead whether or not issuing succeeds.
	s.jwtService.RevokeToken(jti)

	return s.issueTokens(user)
}

// Logout implements staff.AuthService.
func (s *AuthServiceImpl) Logout(refreshToken string) error {
	_, jti, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return staff.ErrInvalidToken
	}
	s.jwtService.RevokeToken(jti)
	return nil
}

// CreateStaff implements staff.AuthService.
func (s *AuthServiceImpl) CreateStaff(ctx context.Context, req staff.UpsertStaffRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.Password == nil || *req.Password == "" {
		return staff.ErrPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.StaffRepository.Create(ctx, staff.StaffUser{
		Username:     req.Username,
		FullName:     req.FullName,
		Role:         req.Role,
		Position:     req.Position,
		PasswordHash: string(hash),
		IsActive:     true,
	})
}

// UpdateStaff implements staff.AuthService.
func (s *AuthServiceImpl) UpdateStaff(ctx context.Context, req staff.UpsertStaffRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	user := staff.StaffUser{
		Username: req.Username,
		FullName: req.FullName,
		Role:     req.Role,
		Position: req.Position,
		IsActive: true,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	return s.StaffRepository.Update(ctx, user)
}

// ListStaff implements staff.AuthService.
func (s *AuthServiceImpl) ListStaff(ctx context.Context) ([]staff.StaffInfo, error) {
	users, err := s.StaffRepository.ListActiveStaff(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]staff.StaffInfo, 0, len(users))
	for _, u := range users {
		out = append(out, staff.StaffInfo{
			Username: u.Username,
			FullName: u.FullName,
			Role:     u.Role,
			Position: u.Position,
		})
	}
	return out, nil
}

// DeactivateStaff implements staff.AuthService.
func (s *AuthServiceImpl) DeactivateStaff(ctx context.Context, username string) error {
	if _, err := s.findActiveByUsername(ctx, username); err != nil {
		return err
	}
	return s.StaffRepository.Deactivate(ctx, username)
}

// findActiveByUsername resolves a user without knowing the role up front.
// Usernames are unique across roles, so at most one lookup succeeds.
func (s *AuthServiceImpl) findActiveByUsername(ctx context.Context, username string) (staff.StaffUser, error) {
	for _, role := range []staff.Role{staff.RoleAdmin, staff.RoleStaff} {
		user, err := s.StaffRepository.GetActive(ctx, username, role)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, staff.ErrStaffNotFound) {
			return staff.StaffUser{}, fmt.Errorf("failed to load staff user: %w", err)
		}
	}
	return staff.StaffUser{}, staff.ErrStaffNotFound
}

func (s *AuthServiceImpl) issueTokens(user staff.StaffUser) (staff.TokenPair, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(user.Username, user.FullName, user.Role)
	if err != nil {
		return staff.TokenPair{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(user.Username)
	if err != nil {
		return staff.TokenPair{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return staff.TokenPair{
		Response: staff.LoginResponse{
			AccessToken: accessToken,
			ExpiresAt:   expiresAt,
			User: staff.StaffInfo{
				Username: user.Username,
				FullName: user.FullName,
				Role:     user.Role,
				Position: user.Position,
			},
		},
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}
