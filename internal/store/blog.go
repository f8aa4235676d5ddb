package store

import (
	"context"
	"slices"

	"github.com/portfoliohub/hub-server/internal/domain"
	domainerrors "github.com/portfoliohub/hub-server/internal/errors"
)

// Posts returns all blog posts, newest first.
func (s *Store) Posts(ctx context.Context) ([]domain.BlogPost, error) {
	s.blogMu.Lock()
	defer s.blogMu.Unlock()

	posts, err := s.readPosts()
	if err != nil {
		return nil, err
	}

	domain.SortPostsByDateDesc(posts)
	return posts, nil
}

// GetPost returns a single post by ID.
func (s *Store) GetPost(ctx context.Context, id string) (*domain.BlogPost, error) {
	s.blogMu.Lock()
	defer s.blogMu.Unlock()

	posts, err := s.readPosts()
	if err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}

	return nil, domainerrors.NotFoundf("blog post %q not found", id)
}

// CreatePost prepends the post to the document.
func (s *Store) CreatePost(ctx context.Context, post *domain.BlogPost) error {
	s.blogMu.Lock()
	defer s.blogMu.Unlock()

	posts, err := s.readPosts()
	if err != nil {
		return err
	}

	posts = append([]domain.BlogPost{*post}, posts...)
	return writeDocument(s.BlogPath(), posts)
}

// UpdatePost applies a mutation to the post with the given ID. Read, apply,
// and write all happen under the document lock.
func (s *Store) UpdatePost(ctx context.Context, id string, apply func(*domain.BlogPost)) (*domain.BlogPost, error) {
	s.blogMu.Lock()
	defer s.blogMu.Unlock()

	posts, err := s.readPosts()
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(posts, func(p domain.BlogPost) bool { return p.ID == id })
	if idx < 0 {
		return nil, domainerrors.NotFoundf("blog post %q not found", id)
	}

	apply(&posts[idx])

	if err := writeDocument(s.BlogPath(), posts); err != nil {
		return nil, err
	}

	updated := posts[idx]
	return &updated, nil
}

// DeletePost removes the post with the given ID.
func (s *Store) DeletePost(ctx context.Context, id string) error {
	s.blogMu.Lock()
	defer s.blogMu.Unlock()

	posts, err := s.readPosts()
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(posts, func(p domain.BlogPost) bool { return p.ID == id })
	if idx < 0 {
		return domainerrors.NotFoundf("blog post %q not found", id)
	}

	posts = append(posts[:idx], posts[idx+1:]...)
	return writeDocument(s.BlogPath(), posts)
}

// readPosts loads the blog document without locking. Callers hold blogMu.
func (s *Store) readPosts() ([]domain.BlogPost, error) {
	return readDocument(s.BlogPath(), func() []domain.BlogPost {
		return []domain.BlogPost{}
	})
}
