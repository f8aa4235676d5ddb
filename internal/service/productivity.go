package service

import (
	"context"
	"io"
	"time"

	"github.com/portfoliohub/hub-server/internal/domain"
	"github.com/portfoliohub/hub-server/internal/logger"
	"github.com/portfoliohub/hub-server/internal/media/images"
	"github.com/portfoliohub/hub-server/internal/screentime"
	"github.com/portfoliohub/hub-server/internal/store"
	"github.com/portfoliohub/hub-server/internal/validation"
)

// AddBookInput is the request body for adding a book. Progress carries no
// range constraint on purpose; the documents on disk already hold
// out-of-range values and the dashboard tolerates them.
type AddBookInput struct {
	Title     string `json:"title" validate:"required,max=300"`
	Author    string `json:"author" validate:"required,max=200"`
	Progress  int    `json:"progress"`
	Status    string `json:"status" validate:"omitempty,oneof=reading completed paused abandoned"`
	StartDate string `json:"startDate"`
	Notes     string `json:"notes"`
}

// PhotoUpload carries one multipart photo upload into the service.
type PhotoUpload struct {
	OriginalName string
	ContentType  string
	Size         int64
	Caption      string
	Data         io.Reader
}

// ProductivityService manages the productivity document, journal photo
// uploads, and screen-time stats.
type ProductivityService struct {
	store     *store.Store
	uploads   *images.Storage
	provider  screentime.Provider
	validator *validation.Validator
	logger    *logger.Logger
}

// NewProductivityService creates a ProductivityService.
func NewProductivityService(st *store.Store, uploads *images.Storage, provider screentime.Provider, v *validation.Validator, log *logger.Logger) *ProductivityService {
	return &ProductivityService{
		store:     st,
		uploads:   uploads,
		provider:  provider,
		validator: v,
		logger:    log,
	}
}

// State returns the whole productivity document.
func (s *ProductivityService) State(ctx context.Context) (*domain.ProductivityState, error) {
	return s.store.Productivity(ctx)
}

// Replace overwrites the whole document. The client always sends the full
// state; anything missing from the payload is gone after this call.
func (s *ProductivityService) Replace(ctx context.Context, state *domain.ProductivityState) (*domain.ProductivityState, error) {
	return s.store.ReplaceProductivity(ctx, state)
}

// Books lists the tracked books.
func (s *ProductivityService) Books(ctx context.Context) ([]domain.Book, error) {
	return s.store.Books(ctx)
}

// AddBook validates and stores a new book.
func (s *ProductivityService) AddBook(ctx context.Context, input AddBookInput) (*domain.Book, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	book, err := domain.NewBook(input.Title, input.Author, input.Progress, domain.BookStatus(input.Status), input.StartDate, input.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.store.AddBook(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// UploadPhoto validates, stores, and records a journal photo. If the
// metadata save fails after the file hit disk, the file is deleted again
// so the uploads directory never collects orphans.
func (s *ProductivityService) UploadPhoto(ctx context.Context, upload PhotoUpload) (*domain.JournalPhoto, error) {
	if err := images.ValidateUpload(upload.OriginalName, upload.ContentType, upload.Size); err != nil {
		return nil, err
	}

	filename := images.GenerateFilename(upload.OriginalName)
	if err := s.uploads.Save(filename, upload.Data); err != nil {
		return nil, err
	}

	photo := &domain.JournalPhoto{
		Filename:     filename,
		OriginalName: upload.OriginalName,
		Path:         "/uploads/" + filename,
		Date:         time.Now().UTC(),
		Caption:      upload.Caption,
	}

	if path, err := s.uploads.Path(filename); err == nil {
		if hash, hashErr := images.ComputeBlurHash(path); hashErr == nil {
			photo.BlurHash = hash
		} else {
			s.logger.WithError(hashErr).Warn("failed to compute blurhash", "filename", filename)
		}
	}

	if err := s.store.AddJournalPhoto(ctx, photo); err != nil {
		if cleanupErr := s.uploads.Delete(filename); cleanupErr != nil {
			s.logger.WithError(cleanupErr).Warn("failed to clean up photo after metadata error", "filename", filename)
		}
		return nil, err
	}

	s.logger.Info("journal photo uploaded", "filename", filename, "size", upload.Size)

	return photo, nil
}

// DeletePhoto removes the metadata record first, then the file. An
// unknown filename is NOT_FOUND; a file that is already gone from disk is
// not an error.
func (s *ProductivityService) DeletePhoto(ctx context.Context, filename string) error {
	removed, err := s.store.RemoveJournalPhoto(ctx, filename)
	if err != nil {
		return err
	}

	if err := s.uploads.Delete(removed.Filename); err != nil {
		s.logger.WithError(err).Warn("failed to delete photo file", "filename", removed.Filename)
	}

	return nil
}

// ScreenTime returns current stats from the provider.
func (s *ProductivityService) ScreenTime(ctx context.Context) (*domain.ScreenTimeStats, error) {
	return s.provider.Stats(ctx)
}
