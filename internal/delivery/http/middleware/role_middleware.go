package middleware

import (
	"net/http"

	"go-medical-frontdesk/internal/domain/entity"
	"go-medical-frontdesk/pkg/response"
)

// RequireRole creates a middleware that checks if the session has any of the required roles
// Role is read from context (set by SessionMiddleware from JWT claims)
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetSessionRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Session token is required")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}
