package service

import (
	"context"
	"regexp"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/portfoliohub/hub-server/internal/domain"
	"github.com/portfoliohub/hub-server/internal/logger"
	"github.com/portfoliohub/hub-server/internal/search"
	"github.com/portfoliohub/hub-server/internal/store"
	"github.com/portfoliohub/hub-server/internal/validation"
)

// htmlTagPattern is a cheap signal that content was pasted from a rich
// editor rather than written as markdown.
var htmlTagPattern = regexp.MustCompile(`(?s)<([a-zA-Z][a-zA-Z0-9]*)\b[^>]*>.*</\s*[a-zA-Z]`)

// CreatePostInput is the request body for creating a post.
type CreatePostInput struct {
	Title     string   `json:"title" validate:"required,max=200"`
	Content   string   `json:"content" validate:"required"`
	Excerpt   string   `json:"excerpt"`
	Published bool     `json:"published"`
	Tags      []string `json:"tags"`
}

// UpdatePostInput is the request body for a partial post update. Nil
// fields are left untouched.
type UpdatePostInput struct {
	Title     *string  `json:"title" validate:"omitempty,max=200"`
	Content   *string  `json:"content"`
	Excerpt   *string  `json:"excerpt"`
	Published *bool    `json:"published"`
	Tags      []string `json:"tags"`
}

// BlogService manages blog posts and keeps the search index in step with
// the document on disk.
type BlogService struct {
	store     *store.Store
	index     *search.Index
	validator *validation.Validator
	logger    *logger.Logger
}

// NewBlogService creates a BlogService.
func NewBlogService(st *store.Store, index *search.Index, v *validation.Validator, log *logger.Logger) *BlogService {
	return &BlogService{
		store:     st,
		index:     index,
		validator: v,
		logger:    log,
	}
}

// List returns all posts, newest first.
func (s *BlogService) List(ctx context.Context) ([]domain.BlogPost, error) {
	return s.store.Posts(ctx)
}

// Get returns a single post by ID.
func (s *BlogService) Get(ctx context.Context, id string) (*domain.BlogPost, error) {
	return s.store.GetPost(ctx, id)
}

// Create validates the input and stores a new post attributed to the
// given author. Index failures are logged, not surfaced: the post is on
// disk, and the next reindex picks it up.
func (s *BlogService) Create(ctx context.Context, author string, input CreatePostInput) (*domain.BlogPost, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	content := normalizeContent(input.Content)

	post, err := domain.NewBlogPost(input.Title, content, input.Excerpt, author, input.Published, input.Tags)
	if err != nil {
		return nil, err
	}

	if err := s.store.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	if err := s.index.IndexPost(post); err != nil {
		s.logger.WithError(err).Warn("failed to index post", "id", post.ID)
	}

	return post, nil
}

// Update applies a partial update to a post.
func (s *BlogService) Update(ctx context.Context, id string, input UpdatePostInput) (*domain.BlogPost, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	if input.Content != nil {
		normalized := normalizeContent(*input.Content)
		input.Content = &normalized
	}

	post, err := s.store.UpdatePost(ctx, id, func(p *domain.BlogPost) {
		p.Apply(domain.BlogPostUpdate{
			Title:     input.Title,
			Content:   input.Content,
			Excerpt:   input.Excerpt,
			Published: input.Published,
			Tags:      input.Tags,
		})
	})
	if err != nil {
		return nil, err
	}

	if err := s.index.IndexPost(post); err != nil {
		s.logger.WithError(err).Warn("failed to reindex post", "id", post.ID)
	}

	return post, nil
}

// Delete removes a post from disk and the index.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeletePost(ctx, id); err != nil {
		return err
	}

	if err := s.index.DeletePost(id); err != nil {
		s.logger.WithError(err).Warn("failed to remove post from index", "id", id)
	}

	return nil
}

// Search returns published posts matching the query, best match first.
func (s *BlogService) Search(ctx context.Context, query string) ([]domain.BlogPost, error) {
	ids, err := s.index.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	posts, err := s.store.Posts(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.BlogPost, len(posts))
	for i := range posts {
		byID[posts[i].ID] = &posts[i]
	}

	results := make([]domain.BlogPost, 0, len(ids))
	for _, id := range ids {
		if post, ok := byID[id]; ok && post.Published {
			results = append(results, *post)
		}
	}

	return results, nil
}

// Reindex rebuilds the search index from the document on disk. Called on
// startup and when the watcher sees an external edit.
func (s *BlogService) Reindex(ctx context.Context) error {
	posts, err := s.store.Posts(ctx)
	if err != nil {
		return err
	}
	return s.index.Reindex(posts)
}

// normalizeContent converts pasted HTML to markdown. Plain text and
// markdown pass through untouched, as does HTML the converter chokes on.
func normalizeContent(content string) string {
	if !htmlTagPattern.MatchString(content) {
		return content
	}

	markdown, err := htmltomarkdown.ConvertString(content)
	if err != nil {
		return content
	}
	return markdown
}
