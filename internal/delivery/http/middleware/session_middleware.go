package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go-medical-frontdesk/internal/domain/entity"
	"go-medical-frontdesk/pkg/jwt"
	"go-medical-frontdesk/pkg/response"
)

type contextKey string

const (
	SessionRoleKey contextKey = "session_role"
	SessionNameKey contextKey = "session_name"
	SessionExpKey  contextKey = "session_exp"
	RequestIDKey   contextKey = "request_id"
)

type SessionMiddleware struct {
	jwtService *jwt.JWTService
}

func NewSessionMiddleware(jwtService *jwt.JWTService) *SessionMiddleware {
	return &SessionMiddleware{
		jwtService: jwtService,
	}
}

// Identify attaches the session role to the context when a bearer token is presented.
// Requests without an Authorization header pass through anonymously.
func (m *SessionMiddleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		role := entity.Role(claims.Role)
		if !role.IsValid() {
			response.Unauthorized(w, "Invalid session role")
			return
		}

		ctx := WithSession(r.Context(), role, claims.Name)
		if claims.ExpiresAt != nil {
			ctx = context.WithValue(ctx, SessionExpKey, claims.ExpiresAt.Time)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithSession returns a context carrying the session role and display name
func WithSession(ctx context.Context, role entity.Role, name string) context.Context {
	ctx = context.WithValue(ctx, SessionRoleKey, role)
	return context.WithValue(ctx, SessionNameKey, name)
}

// GetSessionRoleFromContext extracts the session role from context
func GetSessionRoleFromContext(ctx context.Context) (entity.Role, bool) {
	role, ok := ctx.Value(SessionRoleKey).(entity.Role)
	return role, ok
}

// GetSessionNameFromContext extracts the session display name from context
func GetSessionNameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(SessionNameKey).(string)
	return name, ok
}

// GetSessionExpiryFromContext extracts the token expiry from context
func GetSessionExpiryFromContext(ctx context.Context) (time.Time, bool) {
	exp, ok := ctx.Value(SessionExpKey).(time.Time)
	return exp, ok
}

// GetRequestIDFromContext extracts the request ID from context
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	return requestID, ok
}
