// Package api provides the HTTP server and handlers for the portfolio hub.
package api

import (
	"encoding/json/v2"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	domainerrors "github.com/portfoliohub/hub-server/internal/errors"
	"github.com/portfoliohub/hub-server/internal/http/response"
	"github.com/portfoliohub/hub-server/internal/service"
	"github.com/portfoliohub/hub-server/internal/session"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	authService         *service.AuthService
	blogService         *service.BlogService
	productivityService *service.ProductivityService
	sessions            session.Store
	router              *chi.Mux
	logger              *slog.Logger

	uploadsDir string
	webRoot    string
}

// NewServer creates an HTTP server with all routes configured.
func NewServer(authService *service.AuthService, blogService *service.BlogService, productivityService *service.ProductivityService, sessions session.Store, uploadsDir, webRoot string, logger *slog.Logger) *Server {
	s := &Server{
		authService:         authService,
		blogService:         blogService,
		productivityService: productivityService,
		sessions:            sessions,
		router:              chi.NewRouter(),
		logger:              logger,
		uploadsDir:          uploadsDir,
		webRoot:             webRoot,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealthCheck)

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", s.handleLogin)
			r.Post("/logout", s.handleLogout)
			r.Get("/me", s.handleCurrentUser)
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", s.handleListPosts)
			r.Get("/search", s.handleSearchPosts)
			r.Get("/{id}", s.handleGetPost)

			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)
				r.Post("/", s.handleCreatePost)
				r.Put("/{id}", s.handleUpdatePost)
				r.Delete("/{id}", s.handleDeletePost)
			})
		})

		r.Get("/productivity-data", s.handleGetProductivityData)
		r.Get("/books", s.handleListBooks)
		r.Get("/screen-time", s.handleScreenTime)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAdmin)
			r.Post("/productivity-data", s.handleReplaceProductivityData)
			r.Post("/books", s.handleAddBook)
			r.Post("/upload-journal-photo", s.handleUploadPhoto)
			r.Delete("/journal-photo/{filename}", s.handleDeletePhoto)
		})

		// Unknown API paths get a JSON 404, never the portfolio shell.
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			response.NotFound(w, "not found", s.logger)
		})
	})

	s.router.Get("/uploads/{filename}", s.handleServeUpload)

	// Everything else falls through to the portfolio shell.
	s.router.NotFound(s.handleStatic)
}

// handleHealthCheck reports server health.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]string{"status": "healthy"}, s.logger)
}

// decodeJSON parses a request body, converting syntax errors into
// validation errors so they surface as 400s.
func decodeJSON(r *http.Request, v any) error {
	if err := json.UnmarshalRead(r.Body, v); err != nil {
		return domainerrors.Validation("invalid request body").WithCause(err)
	}
	return nil
}
