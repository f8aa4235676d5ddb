package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/portfoliohub/hub-server/internal/domain"
	"github.com/portfoliohub/hub-server/internal/http/response"
	"github.com/portfoliohub/hub-server/internal/service"
)

// handleListPosts returns all posts, newest first, as a bare array.
func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.blogService.List(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if posts == nil {
		posts = []domain.BlogPost{}
	}
	response.OK(w, posts, s.logger)
}

// handleSearchPosts returns published posts matching ?q=.
func (s *Server) handleSearchPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.blogService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.OK(w, posts, s.logger)
}

// handleGetPost returns a single post by ID.
func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.blogService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.OK(w, post, s.logger)
}

// handleCreatePost creates a post attributed to the logged-in admin and
// returns it.
func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var input service.CreatePostInput
	if err := decodeJSON(r, &input); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	author := "admin"
	if sess := sessionFromContext(r.Context()); sess != nil {
		author = sess.Username
	}

	post, err := s.blogService.Create(r.Context(), author, input)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.OK(w, post, s.logger)
}

// handleUpdatePost applies a partial update and returns the updated post.
func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	var input service.UpdatePostInput
	if err := decodeJSON(r, &input); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	post, err := s.blogService.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.OK(w, post, s.logger)
}

// handleDeletePost removes a post.
func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	if err := s.blogService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.OK(w, map[string]any{"success": true}, s.logger)
}
