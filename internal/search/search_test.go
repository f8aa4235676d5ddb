package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfoliohub/hub-server/internal/domain"
	"github.com/portfoliohub/hub-server/internal/logger"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndex(Options{
		DataPath: t.TempDir(),
		Logger:   logger.Discard().Logger,
	})
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })
	return idx
}

func newPost(t *testing.T, title, content string, published bool, tags ...string) *domain.BlogPost {
	t.Helper()
	post, err := domain.NewBlogPost(title, content, "", "admin", published, tags)
	require.NoError(t, err)
	// Millisecond IDs collide when posts are created back to back.
	post.ID = domain.Slugify(title)
	return post
}

func TestSearchFindsPublishedPost(t *testing.T) {
	idx := newTestIndex(t)

	post := newPost(t, "Building a Reading Habit", "Notes on finishing more books this year.", true)
	require.NoError(t, idx.IndexPost(post))

	ids, err := idx.Search(context.Background(), "reading")
	require.NoError(t, err)
	assert.Contains(t, ids, post.ID)

	ids, err = idx.Search(context.Background(), "books")
	require.NoError(t, err)
	assert.Contains(t, ids, post.ID)
}

func TestSearchSkipsDrafts(t *testing.T) {
	idx := newTestIndex(t)

	draft := newPost(t, "Unfinished Thoughts", "Still drafting this one.", false)
	require.NoError(t, idx.IndexPost(draft))

	ids, err := idx.Search(context.Background(), "drafting")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestIndexPostRemovesUnpublished(t *testing.T) {
	idx := newTestIndex(t)

	post := newPost(t, "Going Dark", "A post that gets unpublished later.", true)
	require.NoError(t, idx.IndexPost(post))

	post.Published = false
	require.NoError(t, idx.IndexPost(post))

	ids, err := idx.Search(context.Background(), "unpublished")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSearchByTag(t *testing.T) {
	idx := newTestIndex(t)

	post := newPost(t, "Weekend Project", "Wired up the photo wall.", true, "side-projects")
	require.NoError(t, idx.IndexPost(post))

	ids, err := idx.Search(context.Background(), "side-projects")
	require.NoError(t, err)
	assert.Contains(t, ids, post.ID)
}

func TestSearchEmptyQuery(t *testing.T) {
	idx := newTestIndex(t)

	ids, err := idx.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestReindex(t *testing.T) {
	idx := newTestIndex(t)

	stale := newPost(t, "Old Entry", "This entry no longer exists on disk.", true)
	require.NoError(t, idx.IndexPost(stale))

	published := newPost(t, "Fresh Entry", "Newly written content.", true)
	draft := newPost(t, "Hidden Entry", "Draft content.", false)

	require.NoError(t, idx.Reindex([]domain.BlogPost{*published, *draft}))

	count, err := idx.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	ids, err := idx.Search(context.Background(), "entry")
	require.NoError(t, err)
	assert.Equal(t, []string{published.ID}, ids)
}

func TestDeletePost(t *testing.T) {
	idx := newTestIndex(t)

	post := newPost(t, "Short Lived", "Gone soon.", true)
	require.NoError(t, idx.IndexPost(post))
	require.NoError(t, idx.DeletePost(post.ID))

	ids, err := idx.Search(context.Background(), "short")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
