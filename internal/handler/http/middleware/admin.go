package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/staff"
	"github.com/timetrackhq/timetrack-backend-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, staff.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(staff.RoleAdmin) {
			response.HandleError(w, staff.ErrAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
