package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/staff"
	"github.com/timetrackhq/timetrack-backend-go/internal/handler/http/response"
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	CreateStaff(w http.ResponseWriter, r *http.Request)
	UpdateStaff(w http.ResponseWriter, r *http.Request)
	ListStaff(w http.ResponseWriter, r *http.Request)
	DeactivateStaff(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService staff.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService staff.AuthService, jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req staff.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	pair, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(pair.RefreshToken, pair.RefreshExpiresAt))
	response.Success(w, pair.Response)
}

// RefreshToken implements AuthHandler.
func (h *authHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.Unauthorized(w, "Refresh token missing")
		return
	}

	pair, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(pair.RefreshToken, pair.RefreshExpiresAt))
	response.Success(w, pair.Response)
}

// Logout implements AuthHandler.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		_ = h.authService.Logout(cookie.Value)
	}

	// Expire the cookie either way.
	expired := h.jwtService.RefreshTokenCookie("", 0)
	expired.MaxAge = -1
	http.SetCookie(w, expired)

	response.SuccessWithMessage(w, "Logged out", nil)
}

// CreateStaff implements AuthHandler.
func (h *authHandlerImpl) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req staff.UpsertStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.authService.CreateStaff(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Staff account created", nil)
}

// UpdateStaff implements AuthHandler.
func (h *authHandlerImpl) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	var req staff.UpsertStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Username = chi.URLParam(r, "username")

	if err := h.authService.UpdateStaff(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Staff account updated", nil)
}

// ListStaff implements AuthHandler.
func (h *authHandlerImpl) ListStaff(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListStaff(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, users)
}

// DeactivateStaff implements AuthHandler.
func (h *authHandlerImpl) DeactivateStaff(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.authService.DeactivateStaff(r.Context(), username); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Staff account deactivated", nil)
}
