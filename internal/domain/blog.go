package domain

import (
	"slices"
	"strconv"
	"strings"
	"time"

	domainerrors "github.com/portfoliohub/hub-server/internal/errors"
)

// excerptLength is how much of the content becomes the default excerpt.
const excerptLength = 150

// BlogPost is one entry in the blog document.
type BlogPost struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Content      string    `json:"content"`
	Excerpt      string    `json:"excerpt"`
	Author       string    `json:"author"`
	Date         time.Time `json:"date"`
	Published    bool      `json:"published"`
	Tags         []string  `json:"tags"`
	LastModified time.Time `json:"lastModified,omitzero"`
}

// NewBlogPost builds a validated post. The excerpt falls back to the first
// 150 characters of content, the slug derives from the title, and the ID is
// a millisecond timestamp string like every other entity here.
func NewBlogPost(title, content, excerpt, author string, published bool, tags []string) (*BlogPost, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domainerrors.Validation("post title is required")
	}
	if content == "" {
		return nil, domainerrors.Validation("post content is required")
	}

	if excerpt == "" {
		excerpt = DefaultExcerpt(content)
	}
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	return &BlogPost{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Title:     title,
		Slug:      Slugify(title),
		Content:   content,
		Excerpt:   excerpt,
		Author:    author,
		Date:      now.UTC(),
		Published: published,
		Tags:      tags,
	}, nil
}

// DefaultExcerpt trims content down to the standard excerpt length.
func DefaultExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return string(runes[:excerptLength]) + "..."
}

// BlogPostUpdate carries a partial update; nil fields are left untouched.
type BlogPostUpdate struct {
	Title     *string
	Content   *string
	Excerpt   *string
	Published *bool
	Tags      []string
}

// Apply merges the update into the post and stamps LastModified.
// A changed title regenerates the slug; a changed content without an
// explicit excerpt regenerates the excerpt, matching how the dashboard has
// always behaved.
func (p *BlogPost) Apply(u BlogPostUpdate) {
	if u.Title != nil && strings.TrimSpace(*u.Title) != "" {
		p.Title = strings.TrimSpace(*u.Title)
		p.Slug = Slugify(p.Title)
	}
	if u.Content != nil && *u.Content != "" {
		p.Content = *u.Content
		if u.Excerpt == nil {
			p.Excerpt = DefaultExcerpt(p.Content)
		}
	}
	if u.Excerpt != nil && *u.Excerpt != "" {
		p.Excerpt = *u.Excerpt
	}
	if u.Published != nil {
		p.Published = *u.Published
	}
	if u.Tags != nil {
		p.Tags = u.Tags
	}
	p.LastModified = time.Now().UTC()
}

// SortPostsByDateDesc orders posts newest first. The list is sorted on
// read, not on write, so hand-edited documents still come back ordered.
func SortPostsByDateDesc(posts []BlogPost) {
	slices.SortStableFunc(posts, func(a, b BlogPost) int {
		return b.Date.Compare(a.Date)
	})
}
