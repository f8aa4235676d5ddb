package store

import (
	"context"

	"github.com/portfoliohub/hub-server/internal/domain"
	domainerrors "github.com/portfoliohub/hub-server/internal/errors"
)

// Productivity returns the current productivity document, defaulted when
// the file does not exist yet.
func (s *Store) Productivity(ctx context.Context) (*domain.ProductivityState, error) {
	s.productivityMu.Lock()
	defer s.productivityMu.Unlock()

	return s.readProductivity()
}

// ReplaceProductivity overwrites the whole document with the given state.
// Collections are normalized and LastUpdated is refreshed.
func (s *Store) ReplaceProductivity(ctx context.Context, state *domain.ProductivityState) (*domain.ProductivityState, error) {
	s.productivityMu.Lock()
	defer s.productivityMu.Unlock()

	state.Normalize()
	state.Touch()

	if err := writeDocument(s.productivityPath(), state); err != nil {
		return nil, err
	}

	return state, nil
}

// Books returns the book list from the productivity document.
func (s *Store) Books(ctx context.Context) ([]domain.Book, error) {
	state, err := s.Productivity(ctx)
	if err != nil {
		return nil, err
	}
	return state.Books, nil
}

// AddBook appends a book to the document. The whole read-modify-write
// happens under the document lock, so two concurrent adds both survive.
func (s *Store) AddBook(ctx context.Context, book *domain.Book) error {
	s.productivityMu.Lock()
	defer s.productivityMu.Unlock()

	state, err := s.readProductivity()
	if err != nil {
		return err
	}

	state.Books = append(state.Books, *book)
	state.Touch()

	return writeDocument(s.productivityPath(), state)
}

// AddJournalPhoto prepends a photo so the newest shows first.
func (s *Store) AddJournalPhoto(ctx context.Context, photo *domain.JournalPhoto) error {
	s.productivityMu.Lock()
	defer s.productivityMu.Unlock()

	state, err := s.readProductivity()
	if err != nil {
		return err
	}

	state.JournalPhotos = append([]domain.JournalPhoto{*photo}, state.JournalPhotos...)
	state.Touch()

	return writeDocument(s.productivityPath(), state)
}

// RemoveJournalPhoto drops the photo record for the given filename and
// returns it so the caller can remove the file afterwards.
func (s *Store) RemoveJournalPhoto(ctx context.Context, filename string) (*domain.JournalPhoto, error) {
	s.productivityMu.Lock()
	defer s.productivityMu.Unlock()

	state, err := s.readProductivity()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, photo := range state.JournalPhotos {
		if photo.Filename == filename {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domainerrors.NotFoundf("photo %q not found", filename)
	}

	removed := state.JournalPhotos[idx]
	state.JournalPhotos = append(state.JournalPhotos[:idx], state.JournalPhotos[idx+1:]...)
	state.Touch()

	if err := writeDocument(s.productivityPath(), state); err != nil {
		return nil, err
	}

	return &removed, nil
}

// readProductivity loads the document without locking. Callers hold
// productivityMu.
func (s *Store) readProductivity() (*domain.ProductivityState, error) {
	state, err := readDocument(s.productivityPath(), domain.DefaultProductivityState)
	if err != nil {
		return nil, err
	}
	state.Normalize()
	return state, nil
}
