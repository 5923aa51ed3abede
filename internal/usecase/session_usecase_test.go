package usecase

import (
	"context"
	"testing"
	"time"

	"go-medical-frontdesk/config"
	"go-medical-frontdesk/internal/delivery/dto"
	"go-medical-frontdesk/internal/delivery/http/middleware"
	"go-medical-frontdesk/internal/domain/entity"
	"go-medical-frontdesk/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionUsecase(f *fixture) (SessionUsecase, *jwt.JWTService) {
	jwtService := jwt.NewJWTService(config.SessionConfig{Secret: "test-secret", Expiry: time.Hour})
	return NewSessionUsecase(f.log, jwtService, f.audit), jwtService
}

func TestCreateSession(t *testing.T) {
	f := newFixture()
	u, jwtService := newSessionUsecase(f)

	session, err := u.CreateSession(context.Background(), &dto.CreateSessionRequest{Role: "Doctor", Name: " Dr. Priya Sharma "})
	require.NoError(t, err)

	assert.Equal(t, "doctor", session.Role)
	assert.Equal(t, "Dr. Priya Sharma", session.Name)
	assert.Equal(t, int64(3600), session.ExpiresIn)

	claims, err := jwtService.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "doctor", claims.Role)
	assert.Equal(t, "Dr. Priya Sharma", claims.Name)

	logs, _ := f.auditLogs.FindRecent(context.Background(), 1)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.AuditActionSessionStart, logs[0].Action)
	assert.Equal(t, "doctor", logs[0].ActorRole)
}

func TestCreateSession_Rejections(t *testing.T) {
	f := newFixture()
	u, _ := newSessionUsecase(f)
	ctx := context.Background()

	_, err := u.CreateSession(ctx, &dto.CreateSessionRequest{Role: "doctor"})
	assert.ErrorIs(t, err, ErrDoctorNameRequired)

	_, err = u.CreateSession(ctx, &dto.CreateSessionRequest{Role: "nurse"})
	assert.ErrorIs(t, err, ErrInvalidRole)

	admin, err := u.CreateSession(ctx, &dto.CreateSessionRequest{Role: "admin"})
	require.NoError(t, err)
	assert.Empty(t, admin.Name)
}

func TestCurrentSession(t *testing.T) {
	f := newFixture()
	u, _ := newSessionUsecase(f)

	_, err := u.CurrentSession(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	ctx := middleware.WithSession(context.Background(), entity.RoleAdmin, "Front Desk")
	session, err := u.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", session.Role)
	assert.Equal(t, "Front Desk", session.Name)
	assert.Empty(t, session.Token)
}
