package api

import (
	"net/http"

	"github.com/portfoliohub/hub-server/internal/domain"
	"github.com/portfoliohub/hub-server/internal/http/response"
	"github.com/portfoliohub/hub-server/internal/service"
)

// handleGetProductivityData returns the whole productivity document.
func (s *Server) handleGetProductivityData(w http.ResponseWriter, r *http.Request) {
	state, err := s.productivityService.State(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.OK(w, state, s.logger)
}

// handleReplaceProductivityData overwrites the whole document with the
// submitted state.
func (s *Server) handleReplaceProductivityData(w http.ResponseWriter, r *http.Request) {
	var state domain.ProductivityState
	if err := decodeJSON(r, &state); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	saved, err := s.productivityService.Replace(r.Context(), &state)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.OK(w, map[string]any{"success": true, "data": saved}, s.logger)
}

// handleListBooks returns the tracked books as a bare array.
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := s.productivityService.Books(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if books == nil {
		books = []domain.Book{}
	}
	response.OK(w, books, s.logger)
}

// handleAddBook stores a new book and returns it.
func (s *Server) handleAddBook(w http.ResponseWriter, r *http.Request) {
	var input service.AddBookInput
	if err := decodeJSON(r, &input); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	book, err := s.productivityService.AddBook(r.Context(), input)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.OK(w, book, s.logger)
}

// handleScreenTime returns current stats from the provider.
func (s *Server) handleScreenTime(w http.ResponseWriter, r *http.Request) {
	stats, err := s.productivityService.ScreenTime(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.OK(w, stats, s.logger)
}
