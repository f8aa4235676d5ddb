package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlogPost(t *testing.T) {
	post, err := NewBlogPost("First Post", "Hello from the hub.", "", "admin", true, nil)
	require.NoError(t, err)

	assert.Equal(t, "first-post", post.Slug)
	assert.Equal(t, "Hello from the hub.", post.Excerpt)
	assert.Equal(t, "admin", post.Author)
	assert.NotNil(t, post.Tags)
	assert.True(t, post.LastModified.IsZero())
}

func TestNewBlogPostLongExcerpt(t *testing.T) {
	content := strings.Repeat("a", 400)
	post, err := NewBlogPost("Long", content, "", "admin", false, nil)
	require.NoError(t, err)

	assert.Len(t, post.Excerpt, excerptLength+3)
	assert.True(t, strings.HasSuffix(post.Excerpt, "..."))
}

func TestNewBlogPostRequiresTitle(t *testing.T) {
	_, err := NewBlogPost("  ", "content", "", "admin", false, nil)
	assert.Error(t, err)
}

func TestApplyUpdate(t *testing.T) {
	post, err := NewBlogPost("Original Title", "original content", "", "admin", false, []string{"go"})
	require.NoError(t, err)

	title := "Changed Title"
	published := true
	post.Apply(BlogPostUpdate{Title: &title, Published: &published})

	assert.Equal(t, "Changed Title", post.Title)
	assert.Equal(t, "changed-title", post.Slug)
	assert.True(t, post.Published)
	assert.Equal(t, "original content", post.Content)
	assert.False(t, post.LastModified.IsZero())
}

func TestApplyUpdateRegeneratesExcerpt(t *testing.T) {
	post, err := NewBlogPost("Title", "short", "", "admin", false, nil)
	require.NoError(t, err)

	content := strings.Repeat("b", 300)
	post.Apply(BlogPostUpdate{Content: &content})

	assert.True(t, strings.HasPrefix(post.Excerpt, "bbb"))
	assert.True(t, strings.HasSuffix(post.Excerpt, "..."))
}

func TestSortPostsByDateDesc(t *testing.T) {
	now := time.Now()
	posts := []BlogPost{
		{ID: "1", Date: now.Add(-2 * time.Hour)},
		{ID: "2", Date: now},
		{ID: "3", Date: now.Add(-time.Hour)},
	}

	SortPostsByDateDesc(posts)

	assert.Equal(t, []string{"2", "3", "1"}, []string{posts[0].ID, posts[1].ID, posts[2].ID})
}
