package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfoliohub/hub-server/internal/config"
	domainerrors "github.com/portfoliohub/hub-server/internal/errors"
	"github.com/portfoliohub/hub-server/internal/logger"
	"github.com/portfoliohub/hub-server/internal/session"
)

func newAuthService() (*AuthService, session.Store) {
	cfg := &config.Config{
		Admin: config.AdminConfig{Username: "admin", Password: "secret"},
	}
	sessions := session.NewMemoryStore()
	return NewAuthService(cfg, sessions, logger.Discard()), sessions
}

func TestLoginSuccess(t *testing.T) {
	svc, sessions := newAuthService()

	sess, token, err := svc.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin", sess.Username)
	assert.True(t, sess.IsAdmin)

	resolved, ok := sessions.Resolve(token)
	require.True(t, ok)
	assert.True(t, resolved.IsAdmin)
}

func TestLoginWrongCredentials(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	tests := []struct {
		username string
		password string
	}{
		{"admin", "wrong"},
		{"wrong", "secret"},
		{"", ""},
	}
	for _, tt := range tests {
		_, token, err := svc.Login(ctx, tt.username, tt.password)
		require.Error(t, err)
		assert.True(t, domainerrors.Is(err, domainerrors.ErrInvalidCredentials))
		assert.Empty(t, token)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, token, err := svc.Login(ctx, "admin", "secret")
	require.NoError(t, err)

	svc.Logout(ctx, token)

	_, err = svc.CurrentUser(ctx, token)
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrUnauthorized))

	// Logging out again is still fine.
	svc.Logout(ctx, token)
}

func TestCurrentUser(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, token, err := svc.Login(ctx, "admin", "secret")
	require.NoError(t, err)

	sess, err := svc.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", sess.Username)

	_, err = svc.CurrentUser(ctx, "bogus-token")
	assert.True(t, domainerrors.Is(err, domainerrors.ErrUnauthorized))
}
