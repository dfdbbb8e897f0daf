package contentService

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PortfolioBackend/internal/api/content"
	"PortfolioBackend/internal/entity"
)

func seededBlogs() []entity.Blog {
	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	return []entity.Blog{
		{
			ID:        "b-new",
			Title:     "Concurrency Patterns",
			Category:  "go",
			Tags:      []string{"goroutines"},
			Slug:      "concurrency-patterns",
			Likes:     2,
			Comments:  []entity.Comment{},
			CreatedAt: base.AddDate(0, 0, 2),
		},
		{
			ID:        "b-mid",
			Title:     "Postgres Indexing",
			Excerpt:   "btree vs gin",
			Slug:      "postgres-indexing",
			Likes:     9,
			Comments:  []entity.Comment{},
			CreatedAt: base.AddDate(0, 0, 1),
		},
		{
			ID:        "b-old",
			Title:     "First Post",
			Slug:      "first-post",
			Likes:     0,
			Comments:  []entity.Comment{},
			CreatedAt: base,
		},
	}
}

func TestCreateBlog(t *testing.T) {
	t.Run("fills slug, read time and date then prepends", func(t *testing.T) {
		store := &fakeStore{}
		svc, _, _ := newTestService(store, newFakeFeed())
		svc.blogs = seededBlogs()

		blog, err := svc.CreateBlog(context.Background(), content.CreateBlogRequest{
			Title:   "Hello, World! 2025",
			Content: "some body text",
		}, nil)
		require.NoError(t, err)

		assert.NotEmpty(t, blog.ID)
		assert.Equal(t, "hello-world-2025", blog.Slug)
		assert.Equal(t, "1 min read", blog.ReadTime)
		assert.NotEmpty(t, blog.Date)
		assert.False(t, blog.IsPublished)
		assert.Equal(t, 0, blog.Likes)
		assert.NotNil(t, blog.Comments)

		require.Len(t, svc.blogs, 4)
		assert.Equal(t, blog.ID, svc.blogs[0].ID)
		require.Len(t, store.createdBlogs, 1)
		assert.Equal(t, blog.ID, store.createdBlogs[0].ID)
	})

	t.Run("explicit fields win over derived defaults", func(t *testing.T) {
		store := &fakeStore{}
		svc, _, _ := newTestService(store, newFakeFeed())

		published := true
		blog, err := svc.CreateBlog(context.Background(), content.CreateBlogRequest{
			Title:       "Custom Everything",
			Content:     "body",
			Slug:        "my-slug",
			ReadTime:    "7 min read",
			Date:        "Jan 1, 2030",
			IsPublished: &published,
		}, nil)
		require.NoError(t, err)

		assert.Equal(t, "my-slug", blog.Slug)
		assert.Equal(t, "7 min read", blog.ReadTime)
		assert.Equal(t, "Jan 1, 2030", blog.Date)
		assert.True(t, blog.IsPublished)
	})

	t.Run("store failure surfaces and leaves state unchanged", func(t *testing.T) {
		store := &fakeStore{createBlogErr: errors.New("insert failed")}
		svc, _, _ := newTestService(store, newFakeFeed())
		svc.blogs = seededBlogs()

		_, err := svc.CreateBlog(context.Background(), content.CreateBlogRequest{
			Title:   "Doomed",
			Content: "body",
		}, nil)

		assert.ErrorIs(t, err, content.ErrCreateBlog)
		assert.Len(t, svc.blogs, 3)
	})

	t.Run("non-image upload is rejected before the store is touched", func(t *testing.T) {
		store := &fakeStore{}
		svc, _, _ := newTestService(store, newFakeFeed())

		file := &multipart.FileHeader{
			Filename: "notes.txt",
			Size:     128,
			Header:   textproto.MIMEHeader{"Content-Type": {"text/plain"}},
		}

		_, err := svc.CreateBlog(context.Background(), content.CreateBlogRequest{
			Title:   "With Attachment",
			Content: "body",
		}, file)

		assert.ErrorIs(t, err, content.ErrInvalidFileType)
		assert.Len(t, store.createdBlogs, 0)
	})

	t.Run("oversize image maps to the file size error", func(t *testing.T) {
		store := &fakeStore{}
		svc, _, _ := newTestService(store, newFakeFeed())

		file := &multipart.FileHeader{
			Filename: "huge.png",
			Size:     6 * 1024 * 1024,
			Header:   textproto.MIMEHeader{"Content-Type": {"image/png"}},
		}

		_, err := svc.CreateBlog(context.Background(), content.CreateBlogRequest{
			Title:   "Too Heavy",
			Content: "body",
		}, file)

		assert.ErrorIs(t, err, content.ErrFileTooLarge)
		assert.Len(t, store.createdBlogs, 0)
	})

	t.Run("uploaded image url lands on the blog", func(t *testing.T) {
		store := &fakeStore{}
		svc, _, _ := newTestService(store, newFakeFeed())

		file := &multipart.FileHeader{
			Filename: "cover.png",
			Size:     1024,
			Header:   textproto.MIMEHeader{"Content-Type": {"image/png"}},
		}

		blog, err := svc.CreateBlog(context.Background(), content.CreateBlogRequest{
			Title:   "Illustrated",
			Content: "body",
		}, file)
		require.NoError(t, err)

		assert.Equal(t, "https://cdn.example.com/featured.png", blog.FeaturedImage)
	})
}

func TestUpdateBlog(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		svc, _, _ := newTestService(&fakeStore{}, newFakeFeed())

		err := svc.UpdateBlog(context.Background(), "missing", content.UpdateBlogRequest{Title: "anything"}, nil)
		assert.ErrorIs(t, err, content.ErrBlogNotFound)
	})

	t.Run("patches local state after the store accepts", func(t *testing.T) {
		svc, _, _ := newTestService(&fakeStore{}, newFakeFeed())
		svc.blogs = seededBlogs()

		published := true
		err := svc.UpdateBlog(context.Background(), "b-old", content.UpdateBlogRequest{
			Title:       "First Post, Revisited",
			IsPublished: &published,
		}, nil)
		require.NoError(t, err)

		i, ok := findBlog(svc.blogs, "b-old")
		require.True(t, ok)
		assert.Equal(t, "First Post, Revisited", svc.blogs[i].Title)
		assert.Equal(t, "first-post-revisited", svc.blogs[i].Slug)
		assert.True(t, svc.blogs[i].IsPublished)
		// Untouched fields survive the patch.
		assert.Equal(t, 0, svc.blogs[i].Likes)
	})

	t.Run("store failure leaves local state unchanged", func(t *testing.T) {
		store := &fakeStore{updateBlogErr: errors.New("deadlock detected")}
		svc, _, _ := newTestService(store, newFakeFeed())
		svc.blogs = seededBlogs()

		err := svc.UpdateBlog(context.Background(), "b-old", content.UpdateBlogRequest{Title: "nope"}, nil)

		assert.ErrorIs(t, err, content.ErrUpdateBlog)
		i, _ := findBlog(svc.blogs, "b-old")
		assert.Equal(t, "First Post", svc.blogs[i].Title)
	})
}

func TestDeleteBlog(t *testing.T) {
	t.Run("removes locally and drops the featured image", func(t *testing.T) {
		store := &fakeStore{}
		svc, _, s3Client := newTestService(store, newFakeFeed())
		svc.blogs = seededBlogs()
		svc.blogs[0].FeaturedImage = "covers/b-new.png"

		err := svc.DeleteBlog(context.Background(), "b-new")
		require.NoError(t, err)

		assert.Len(t, svc.blogs, 2)
		assert.Equal(t, []string{"b-new"}, store.deletedBlogs)
		assert.Equal(t, []string{"covers/b-new.png"}, s3Client.deleted)
	})

	t.Run("image cleanup failure does not fail the delete", func(t *testing.T) {
		store := &fakeStore{}
		svc, _, s3Client := newTestService(store, newFakeFeed())
		s3Client.deleteErr = errors.New("access denied")
		svc.blogs = seededBlogs()
		svc.blogs[0].FeaturedImage = "covers/b-new.png"

		err := svc.DeleteBlog(context.Background(), "b-new")
		require.NoError(t, err)
		assert.Len(t, svc.blogs, 2)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _, _ := newTestService(&fakeStore{}, newFakeFeed())
		err := svc.DeleteBlog(context.Background(), "missing")
		assert.ErrorIs(t, err, content.ErrBlogNotFound)
	})
}

func TestGetBlogBySlug(t *testing.T) {
	svc, _, _ := newTestService(&fakeStore{}, newFakeFeed())
	svc.blogs = seededBlogs()

	blog, err := svc.GetBlogBySlug("postgres-indexing")
	require.NoError(t, err)
	assert.Equal(t, "b-mid", blog.ID)

	_, err = svc.GetBlogBySlug("no-such-slug")
	assert.ErrorIs(t, err, content.ErrBlogNotFound)
}

func TestSearchBlogs(t *testing.T) {
	svc, _, _ := newTestService(&fakeStore{}, newFakeFeed())
	svc.blogs = seededBlogs()

	t.Run("empty query returns everything newest first", func(t *testing.T) {
		resp := svc.SearchBlogs("", "")
		require.Equal(t, 3, resp.Total)
		assert.Equal(t, "b-new", resp.Blogs[0].ID)
		assert.Equal(t, "b-old", resp.Blogs[2].ID)
	})

	t.Run("matches are case-insensitive across fields", func(t *testing.T) {
		assert.Equal(t, 1, svc.SearchBlogs("CONCURRENCY", "").Total)
		assert.Equal(t, 1, svc.SearchBlogs("btree", "").Total)
		assert.Equal(t, 1, svc.SearchBlogs("goroutines", "").Total)
	})

	t.Run("sort by oldest", func(t *testing.T) {
		resp := svc.SearchBlogs("", "oldest")
		assert.Equal(t, "b-old", resp.Blogs[0].ID)
	})

	t.Run("sort by likes", func(t *testing.T) {
		resp := svc.SearchBlogs("", "likes")
		assert.Equal(t, "b-mid", resp.Blogs[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		resp := svc.SearchBlogs("kubernetes", "")
		assert.Equal(t, 0, resp.Total)
	})
}

func TestAdjustLikes(t *testing.T) {
	t.Run("like adopts the store counter on success", func(t *testing.T) {
		store := &fakeStore{likesValue: 10}
		svc, _, _ := newTestService(store, newFakeFeed())
		svc.blogs = seededBlogs()

		likes, err := svc.LikeBlog(context.Background(), "b-new")
		require.NoError(t, err)
		assert.Equal(t, 10, likes)

		i, _ := findBlog(svc.blogs, "b-new")
		assert.Equal(t, 10, svc.blogs[i].Likes)
	})

	t.Run("store failure keeps the optimistic value", func(t *testing.T) {
		store := &fakeStore{likesErr: errors.New("connection reset")}
		svc, _, _ := newTestService(store, newFakeFeed())
		svc.blogs = seededBlogs()

		likes, err := svc.LikeBlog(context.Background(), "b-new")
		require.NoError(t, err)
		assert.Equal(t, 3, likes)

		i, _ := findBlog(svc.blogs, "b-new")
		assert.Equal(t, 3, svc.blogs[i].Likes)
	})

	t.Run("unlike never goes below zero", func(t *testing.T) {
		store := &fakeStore{likesErr: errors.New("connection reset")}
		svc, _, _ := newTestService(store, newFakeFeed())
		svc.blogs = seededBlogs()

		likes, err := svc.UnlikeBlog(context.Background(), "b-old")
		require.NoError(t, err)
		assert.Equal(t, 0, likes)
	})

	t.Run("unknown blog", func(t *testing.T) {
		svc, _, _ := newTestService(&fakeStore{}, newFakeFeed())
		_, err := svc.LikeBlog(context.Background(), "missing")
		assert.ErrorIs(t, err, content.ErrBlogNotFound)
	})
}
