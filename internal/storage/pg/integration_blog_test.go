package pg

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
	internal_errors "github.com/Arittroskr32/CyberPiT-backend/internal/errors"
)

func saveTestBlog(t *testing.T, b domain.Blog) int64 {
	t.Helper()
	if b.Title == "" {
		b.Title = "post"
	}
	if b.Content == "" {
		b.Content = "content"
	}
	if b.Author == "" {
		b.Author = "author"
	}
	if b.Category == "" {
		b.Category = "CTF"
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	id, err := storage.SaveBlog(b)
	require.NoError(t, err)
	return id
}

func TestBlogStorage(t *testing.T) {
	t.Run("save and fetch round trip", func(t *testing.T) {
		clearTable(t, "blogs")

		id := saveTestBlog(t, domain.Blog{
			Title:       "SQLi in the wild",
			Content:     "long writeup",
			Author:      "mina",
			Category:    "Web Security",
			Tags:        []string{"sqli", "writeup"},
			IsPublished: true,
			ReadTime:    4,
		})

		b, err := storage.Blog(id)
		require.NoError(t, err)
		assert.Equal(t, "SQLi in the wild", b.Title)
		assert.Equal(t, []string{"sqli", "writeup"}, b.Tags)
		assert.Equal(t, 4, b.ReadTime)
		assert.Zero(t, b.Views)
		assert.Zero(t, b.Likes)
	})

	t.Run("list filters by category and published", func(t *testing.T) {
		clearTable(t, "blogs")

		saveTestBlog(t, domain.Blog{Title: "a", Category: "CTF", IsPublished: true})
		saveTestBlog(t, domain.Blog{Title: "b", Category: "CTF", IsPublished: false})
		saveTestBlog(t, domain.Blog{Title: "c", Category: "Research", IsPublished: true})

		blogs, total, err := storage.Blogs(BlogFilter{Category: "CTF", OnlyPublished: true})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, blogs, 1)
		assert.Equal(t, "a", blogs[0].Title)

		blogs, total, err = storage.Blogs(BlogFilter{Category: "All"})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, blogs, 3)
	})

	t.Run("search matches title content author and tags", func(t *testing.T) {
		clearTable(t, "blogs")

		saveTestBlog(t, domain.Blog{Title: "Heap exploitation", Content: "x", Author: "zed"})
		saveTestBlog(t, domain.Blog{Title: "y", Content: "notes on heap grooming", Author: "ann"})
		saveTestBlog(t, domain.Blog{Title: "z", Content: "x", Author: "heapmaster"})
		saveTestBlog(t, domain.Blog{Title: "w", Content: "x", Author: "ann", Tags: []string{"heap-notes", "pwn"}})
		saveTestBlog(t, domain.Blog{Title: "unrelated", Content: "x", Author: "ann"})

		_, total, err := storage.Blogs(BlogFilter{Search: "HEAP"})
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)

		tagged, total, err := storage.Blogs(BlogFilter{Search: "pwn"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, tagged, 1)
		assert.Equal(t, "w", tagged[0].Title)
	})

	t.Run("pagination uses configured page size", func(t *testing.T) {
		clearTable(t, "blogs")

		for i := 0; i < 5; i++ {
			saveTestBlog(t, domain.Blog{Title: fmt.Sprintf("post %d", i)})
		}

		// BlogsPerPage is 3 in the test config.
		blogs, total, err := storage.Blogs(BlogFilter{Page: 1})
		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		assert.Len(t, blogs, 3)

		blogs, _, err = storage.Blogs(BlogFilter{Page: 2})
		require.NoError(t, err)
		assert.Len(t, blogs, 2)

		blogs, _, err = storage.Blogs(BlogFilter{Page: 2, PerPage: 4})
		require.NoError(t, err)
		assert.Len(t, blogs, 1)
	})

	t.Run("counters increment and return new value", func(t *testing.T) {
		clearTable(t, "blogs")

		id := saveTestBlog(t, domain.Blog{IsPublished: true})

		views, err := storage.IncrementBlogViews(id)
		require.NoError(t, err)
		assert.EqualValues(t, 1, views)
		views, err = storage.IncrementBlogViews(id)
		require.NoError(t, err)
		assert.EqualValues(t, 2, views)

		likes, err := storage.IncrementBlogLikes(id)
		require.NoError(t, err)
		assert.EqualValues(t, 1, likes)
	})

	t.Run("update preserves counters", func(t *testing.T) {
		clearTable(t, "blogs")

		id := saveTestBlog(t, domain.Blog{Title: "before", IsPublished: true})
		_, err := storage.IncrementBlogViews(id)
		require.NoError(t, err)

		require.NoError(t, storage.UpdateBlog(domain.Blog{
			Id: id, Title: "after", Content: "c", Author: "a", Category: "CTF", Tags: []string{}, ReadTime: 1,
		}))

		b, err := storage.Blog(id)
		require.NoError(t, err)
		assert.Equal(t, "after", b.Title)
		assert.EqualValues(t, 1, b.Views)
	})

	t.Run("published lookup hides drafts", func(t *testing.T) {
		clearTable(t, "blogs")

		publishedId := saveTestBlog(t, domain.Blog{Title: "live", IsPublished: true})
		draftId := saveTestBlog(t, domain.Blog{Title: "draft", IsPublished: false})

		b, err := storage.PublishedBlog(publishedId)
		require.NoError(t, err)
		assert.Equal(t, "live", b.Title)

		_, err = storage.PublishedBlog(draftId)
		assert.True(t, internal_errors.IsNotFound(err))

		// Drafts take no counters either.
		_, err = storage.IncrementBlogViews(draftId)
		assert.True(t, internal_errors.IsNotFound(err))
		_, err = storage.IncrementBlogLikes(draftId)
		assert.True(t, internal_errors.IsNotFound(err))

		// The admin lookup still sees the draft.
		b, err = storage.Blog(draftId)
		require.NoError(t, err)
		assert.Equal(t, "draft", b.Title)
	})

	t.Run("missing blog", func(t *testing.T) {
		clearTable(t, "blogs")

		_, err := storage.Blog(99)
		assert.True(t, internal_errors.IsNotFound(err))
		assert.True(t, internal_errors.IsNotFound(storage.UpdateBlog(domain.Blog{Id: 99})))
		assert.True(t, internal_errors.IsNotFound(storage.DeleteBlog(99)))
		_, err = storage.IncrementBlogLikes(99)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}
