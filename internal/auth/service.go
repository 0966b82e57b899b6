package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/northhaul/northhaul-backend/internal/admins"
	"github.com/northhaul/northhaul-backend/pkg/auth/session"
	pkgerrors "github.com/northhaul/northhaul-backend/pkg/errors"
	"github.com/northhaul/northhaul-backend/pkg/security"
)

// LoginInput is the admin credential payload.
type LoginInput struct {
	Username string `json:"username" validate:"required,max=200"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries the authenticated identity and the opaque session id
// the controller turns into a cookie. The password hash never leaves the
// service layer.
type LoginResult struct {
	AdminID   uuid.UUID
	Username  string
	SessionID string
}

// Service handles admin login and logout.
type Service interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
}

type service struct {
	repo     *admins.Repository
	sessions *session.Manager
}

// NewService constructs an auth service instance.
func NewService(repo *admins.Repository, sessions *session.Manager) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("admins repository required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session manager required")
	}
	return &service{repo: repo, sessions: sessions}, nil
}

// Login verifies the credential and issues a server-side session. Unknown
// usernames and wrong passwords produce the same answer.
func (s *service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	admin, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load admin")
	}

	ok, err := security.VerifyPassword(input.Password, admin.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	sessionID, err := s.sessions.Issue(ctx, session.Session{
		AdminID:  admin.ID,
		Username: admin.Username,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "issue session")
	}

	if err := s.repo.TouchLastLogin(ctx, admin.ID, time.Now().UTC()); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: record login")
	}

	return &LoginResult{
		AdminID:   admin.ID,
		Username:  admin.Username,
		SessionID: sessionID,
	}, nil
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}
