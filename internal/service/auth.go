// Package service contains the business logic between the HTTP handlers
// and the repositories.
package service

import (
	"context"
	"crypto/subtle"

	"github.com/portfoliohub/hub-server/internal/config"
	"github.com/portfoliohub/hub-server/internal/domain"
	domainerrors "github.com/portfoliohub/hub-server/internal/errors"
	"github.com/portfoliohub/hub-server/internal/logger"
	"github.com/portfoliohub/hub-server/internal/session"
)

// AuthService handles the single-admin login flow.
type AuthService struct {
	sessions session.Store
	username string
	password string
	logger   *logger.Logger
}

// NewAuthService creates an AuthService checking against the configured
// admin credentials.
func NewAuthService(cfg *config.Config, sessions session.Store, log *logger.Logger) *AuthService {
	return &AuthService{
		sessions: sessions,
		username: cfg.Admin.Username,
		password: cfg.Admin.Password,
		logger:   log,
	}
}

// Login checks the credentials and creates a session. Both comparisons are
// constant-time and both always run, so response timing never narrows down
// which half was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, string, error) {
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.username))
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(s.password))

	if userMatch&passMatch != 1 {
		s.logger.Warn("failed login attempt", "username", username)
		return nil, "", domainerrors.InvalidCredentials("invalid credentials")
	}

	token, err := s.sessions.Create(username)
	if err != nil {
		return nil, "", domainerrors.Wrap(err, domainerrors.CodeInternal, "create session")
	}

	s.logger.Info("admin logged in", "username", username)

	return &domain.Session{
		Token:    token,
		Username: username,
		IsAdmin:  true,
	}, token, nil
}

// Logout destroys the session. Destroying an unknown token is a no-op, so
// logging out twice succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) {
	s.sessions.Destroy(token)
}

// CurrentUser resolves the session behind a token.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.Session, error) {
	sess, ok := s.sessions.Resolve(token)
	if !ok {
		return nil, domainerrors.Unauthorized("not authenticated")
	}
	return sess, nil
}
