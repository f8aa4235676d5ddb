package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/portfoliohub/hub-server/internal/http/response"
	"github.com/portfoliohub/hub-server/internal/media/images"
	"github.com/portfoliohub/hub-server/internal/service"
)

// multipartMemoryLimit is how much of a parsed form stays in memory
// before spilling to temp files.
const multipartMemoryLimit = 4 << 20

// handleUploadPhoto accepts a multipart "photo" field plus an optional
// "caption" and stores the journal photo.
func (s *Server) handleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	// Cap the whole request a little above the photo ceiling so the
	// caption field still fits next to a maximum-size photo.
	r.Body = http.MaxBytesReader(w, r.Body, images.MaxUploadBytes+(1<<20))

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			response.BadRequest(w, "File size too large", s.logger)
			return
		}
		response.BadRequest(w, "No photo uploaded", s.logger)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		response.BadRequest(w, "No photo uploaded", s.logger)
		return
	}
	defer file.Close()

	photo, err := s.productivityService.UploadPhoto(r.Context(), service.PhotoUpload{
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         header.Size,
		Caption:      r.FormValue("caption"),
		Data:         file,
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.OK(w, map[string]any{"success": true, "photo": photo}, s.logger)
}

// handleDeletePhoto removes a journal photo and its file.
func (s *Server) handleDeletePhoto(w http.ResponseWriter, r *http.Request) {
	if err := s.productivityService.DeletePhoto(r.Context(), chi.URLParam(r, "filename")); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.OK(w, map[string]any{"success": true}, s.logger)
}
