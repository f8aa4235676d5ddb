package api

import (
	"net/http"

	"github.com/portfoliohub/hub-server/internal/http/response"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleLogin checks credentials and issues a session token. The token
// travels back as sessionId and comes in on later requests as a bearer
// token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	sess, token, err := s.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		response.Unauthorized(w, "Invalid credentials", s.logger)
		return
	}

	response.OK(w, map[string]any{
		"success": true,
		"user": map[string]any{
			"username": sess.Username,
			"isAdmin":  sess.IsAdmin,
		},
		"sessionId": token,
	}, s.logger)
}

// handleLogout destroys the session if one was presented. It always
// succeeds; logging out with a stale token is not an error.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := bearerToken(r); token != "" {
		s.authService.Logout(r.Context(), token)
	}

	response.OK(w, map[string]any{"success": true}, s.logger)
}

// handleCurrentUser returns the session owner, or 401.
func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	sess, err := s.authService.CurrentUser(r.Context(), bearerToken(r))
	if err != nil {
		response.Unauthorized(w, "Not authenticated", s.logger)
		return
	}

	response.OK(w, map[string]any{
		"user": map[string]any{
			"username": sess.Username,
			"isAdmin":  sess.IsAdmin,
		},
	}, s.logger)
}
