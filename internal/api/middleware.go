package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/portfoliohub/hub-server/internal/domain"
	"github.com/portfoliohub/hub-server/internal/http/response"
)

type contextKey string

const sessionContextKey contextKey = "session"

// requireAdmin guards mutating routes. It resolves the bearer token
// through the session store and rejects anything else with a 401.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			response.Unauthorized(w, "Authentication required", s.logger)
			return
		}

		sess, ok := s.sessions.Resolve(token)
		if !ok || !sess.IsAdmin {
			response.Unauthorized(w, "Authentication required", s.logger)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// sessionFromContext returns the session stored by requireAdmin.
func sessionFromContext(ctx context.Context) *domain.Session {
	sess, _ := ctx.Value(sessionContextKey).(*domain.Session)
	return sess
}
