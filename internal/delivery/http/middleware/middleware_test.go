package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-medical-frontdesk/config"
	"go-medical-frontdesk/internal/domain/entity"
	"go-medical-frontdesk/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestLatency_DelaysOnlyReads(t *testing.T) {
	h := Latency(30 * time.Millisecond)(http.HandlerFunc(okHandler))

	start := time.Now()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/doctors", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)

	start = time.Now()
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/doctors", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Less(t, time.Since(start), 30*time.Millisecond)
}

func TestLatency_CancelledRequestIsDropped(t *testing.T) {
	served := false
	h := Latency(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served = true
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil).WithContext(ctx)
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.False(t, served)
}

func TestRecovery(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	h := Recovery(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/doctors", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestLogging_StampsRequest(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	var seen string
	h := NewLoggingMiddleware(log).Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetRequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, rec.Header().Get("X-Response-Time"))
}

func TestCORS_AllowList(t *testing.T) {
	h := NewCORSMiddleware([]string{"http://desk.test"}).Handle(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	req.Header.Set("Origin", "http://desk.test")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "http://desk.test", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))

	req = httptest.NewRequest(http.MethodGet, "/api/doctors", nil)
	req.Header.Set("Origin", "http://elsewhere.test")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSessionMiddleware_Identify(t *testing.T) {
	jwtService := jwt.NewJWTService(config.SessionConfig{Secret: "secret", Expiry: time.Hour})
	token, _, err := jwtService.GenerateSessionToken("doctor", "Dr. Sarah Johnson")
	require.NoError(t, err)

	var role entity.Role
	var name string
	var identified bool
	h := NewSessionMiddleware(jwtService).Identify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, identified = GetSessionRoleFromContext(r.Context())
		name, _ = GetSessionNameFromContext(r.Context())
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantRole   entity.Role
	}{
		{name: "anonymous", header: "", wantStatus: http.StatusOK},
		{name: "bearer", header: "Bearer " + token, wantStatus: http.StatusOK, wantRole: entity.RoleDoctor},
		{name: "malformed", header: "Token " + token, wantStatus: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer abc", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, name, identified = "", "", false

			req := httptest.NewRequest(http.MethodGet, "/api/queue", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRole, role)
			assert.Equal(t, tt.wantRole != "", identified)
			if tt.wantRole == entity.RoleDoctor {
				assert.Equal(t, "Dr. Sarah Johnson", name)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	h := RequireAdmin(http.HandlerFunc(okHandler))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/activity", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/activity", nil)
	req = req.WithContext(WithSession(req.Context(), entity.RolePatient, "John Smith"))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/activity", nil)
	req = req.WithContext(WithSession(req.Context(), entity.RoleAdmin, ""))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
