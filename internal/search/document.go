// Package search provides full-text search over blog posts using Bleve.
// Drafts are never indexed; the search endpoint only ever surfaces
// published writing.
package search

import (
	"github.com/portfoliohub/hub-server/internal/domain"
)

// PostDocument is the Bleve document for one blog post.
type PostDocument struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Excerpt string   `json:"excerpt"`
	Tags    []string `json:"tags,omitempty"`
	Date    int64    `json:"date"` // Unix millis
}

// FromPost converts a domain post to its index document.
func FromPost(post *domain.BlogPost) *PostDocument {
	return &PostDocument{
		ID:      post.ID,
		Title:   post.Title,
		Content: post.Content,
		Excerpt: post.Excerpt,
		Tags:    post.Tags,
		Date:    post.Date.UnixMilli(),
	}
}

// ToMap converts the document to a map with lowercase field names so they
// match the index mapping. Bleve would otherwise index the capitalized Go
// field names.
func (d *PostDocument) ToMap() map[string]any {
	m := map[string]any{
		"id":      d.ID,
		"title":   d.Title,
		"content": d.Content,
		"date":    d.Date,
	}

	if d.Excerpt != "" {
		m["excerpt"] = d.Excerpt
	}
	if len(d.Tags) > 0 {
		m["tags"] = d.Tags
	}

	return m
}
