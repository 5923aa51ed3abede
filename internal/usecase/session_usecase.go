package usecase

import (
	"context"
	"errors"
	"strings"

	"go-medical-frontdesk/internal/delivery/dto"
	"go-medical-frontdesk/internal/delivery/http/middleware"
	"go-medical-frontdesk/internal/domain/entity"
	"go-medical-frontdesk/internal/service"
	"go-medical-frontdesk/pkg/jwt"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidRole        = errors.New("invalid role")
	ErrDoctorNameRequired = errors.New("name is required for the doctor role")
	ErrSessionNotFound    = errors.New("no active session")
)

type SessionUsecase interface {
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	CurrentSession(ctx context.Context) (*dto.SessionResponse, error)
}

type sessionUsecase struct {
	log          *logrus.Logger
	jwtService   *jwt.JWTService
	auditService service.AuditService
}

func NewSessionUsecase(
	log *logrus.Logger,
	jwtService *jwt.JWTService,
	auditService service.AuditService,
) SessionUsecase {
	return &sessionUsecase{
		log:          log,
		jwtService:   jwtService,
		auditService: auditService,
	}
}

// CreateSession issues a role token. No credentials are checked.
func (u *sessionUsecase) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	role := entity.Role(strings.ToLower(req.Role))
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	name := strings.TrimSpace(req.Name)
	// the doctor role scopes the queue by name
	if role == entity.RoleDoctor && name == "" {
		return nil, ErrDoctorNameRequired
	}

	token, expiresAt, err := u.jwtService.GenerateSessionToken(string(role), name)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	sessionCtx := middleware.WithSession(ctx, role, name)
	if err := u.auditService.LogEvent(sessionCtx, entity.AuditActionSessionStart, "session", "", nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.SessionResponse{
		Token:     token,
		Role:      string(role),
		Name:      name,
		ExpiresAt: expiresAt,
		ExpiresIn: int64(u.jwtService.GetExpiry().Seconds()),
	}, nil
}

// CurrentSession echoes the session identified by the request token.
func (u *sessionUsecase) CurrentSession(ctx context.Context) (*dto.SessionResponse, error) {
	role, ok := middleware.GetSessionRoleFromContext(ctx)
	if !ok {
		return nil, ErrSessionNotFound
	}
	name, _ := middleware.GetSessionNameFromContext(ctx)
	expiresAt, _ := middleware.GetSessionExpiryFromContext(ctx)

	return &dto.SessionResponse{
		Role:      string(role),
		Name:      name,
		ExpiresAt: expiresAt,
	}, nil
}
