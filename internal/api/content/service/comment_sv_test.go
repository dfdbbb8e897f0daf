package contentService

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PortfolioBackend/internal/api/content"
	"PortfolioBackend/internal/entity"
	redisPkg "PortfolioBackend/pkg/redis"
)

func commentedBlogs() []entity.Blog {
	return []entity.Blog{
		{
			ID: "b1",
			Comments: []entity.Comment{
				{ID: "c1", BlogID: "b1", User: "ana", Text: "visible"},
				{ID: "c2", BlogID: "b1", User: "ben", Text: "hidden", Hidden: true},
			},
		},
	}
}

func TestAddComment(t *testing.T) {
	t.Run("writes through, appends locally and publishes", func(t *testing.T) {
		store := &fakeStore{}
		feed := newFakeFeed()
		svc, _, _ := newTestService(store, feed)
		svc.blogs = commentedBlogs()

		comment, err := svc.AddComment(context.Background(), "b1", content.CreateCommentRequest{
			User: "cara",
			Text: "great read",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, comment.ID)
		assert.Equal(t, "b1", comment.BlogID)
		assert.NotEmpty(t, comment.Date)
		assert.False(t, comment.Hidden)

		assert.Len(t, svc.blogs[0].Comments, 3)
		require.Len(t, store.createdComments, 1)

		published := feed.publishedEvents()
		require.Len(t, published, 1)
		assert.Equal(t, redisPkg.EventInsert, published[0].Kind)
		require.NotNil(t, published[0].New)
		assert.Equal(t, comment.ID, published[0].New.ID)
	})

	t.Run("unknown blog", func(t *testing.T) {
		svc, _, _ := newTestService(&fakeStore{}, newFakeFeed())

		_, err := svc.AddComment(context.Background(), "missing", content.CreateCommentRequest{
			User: "cara",
			Text: "hello",
		})
		assert.ErrorIs(t, err, content.ErrBlogNotFound)
	})

	t.Run("store failure is absorbed and state stays put", func(t *testing.T) {
		store := &fakeStore{createCommentErr: errors.New("insert failed")}
		feed := newFakeFeed()
		svc, _, _ := newTestService(store, feed)
		svc.blogs = commentedBlogs()

		comment, err := svc.AddComment(context.Background(), "b1", content.CreateCommentRequest{
			User: "cara",
			Text: "lost",
		})

		assert.NoError(t, err)
		assert.Empty(t, comment.ID)
		assert.Len(t, svc.blogs[0].Comments, 2)
		assert.Len(t, feed.publishedEvents(), 0)
	})

	t.Run("own feed echo does not duplicate the comment", func(t *testing.T) {
		store := &fakeStore{}
		feed := newFakeFeed()
		svc, _, _ := newTestService(store, feed)
		svc.blogs = commentedBlogs()

		_, err := svc.AddComment(context.Background(), "b1", content.CreateCommentRequest{
			User: "cara",
			Text: "echoed",
		})
		require.NoError(t, err)

		published := feed.publishedEvents()
		require.Len(t, published, 1)

		svc.blogs = applyCommentEvent(svc.blogs, published[0])
		assert.Len(t, svc.blogs[0].Comments, 3)
	})

	t.Run("add followed by delete restores the original length", func(t *testing.T) {
		store := &fakeStore{}
		svc, _, _ := newTestService(store, newFakeFeed())
		svc.blogs = commentedBlogs()
		before := len(svc.blogs[0].Comments)

		comment, err := svc.AddComment(context.Background(), "b1", content.CreateCommentRequest{
			User: "cara",
			Text: "fleeting",
		})
		require.NoError(t, err)
		require.NotEmpty(t, comment.ID)

		require.NoError(t, svc.DeleteComment(context.Background(), comment.ID))
		assert.Len(t, svc.blogs[0].Comments, before)
	})

	t.Run("publish failure does not undo the local append", func(t *testing.T) {
		store := &fakeStore{}
		feed := newFakeFeed()
		feed.publishErr = errors.New("redis down")
		svc, _, _ := newTestService(store, feed)
		svc.blogs = commentedBlogs()

		comment, err := svc.AddComment(context.Background(), "b1", content.CreateCommentRequest{
			User: "cara",
			Text: "still here",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, comment.ID)
		assert.Len(t, svc.blogs[0].Comments, 3)
	})
}

func TestToggleCommentVisibility(t *testing.T) {
	t.Run("flips the flag and publishes the update", func(t *testing.T) {
		store := &fakeStore{}
		feed := newFakeFeed()
		svc, _, _ := newTestService(store, feed)
		svc.blogs = commentedBlogs()

		err := svc.ToggleCommentVisibility(context.Background(), "c1")
		require.NoError(t, err)

		assert.True(t, svc.blogs[0].Comments[0].Hidden)
		assert.Equal(t, map[string]bool{"c1": true}, store.hiddenCalls)

		published := feed.publishedEvents()
		require.Len(t, published, 1)
		assert.Equal(t, redisPkg.EventUpdate, published[0].Kind)
		assert.True(t, published[0].New.Hidden)
	})

	t.Run("toggling twice restores visibility", func(t *testing.T) {
		store := &fakeStore{}
		svc, _, _ := newTestService(store, newFakeFeed())
		svc.blogs = commentedBlogs()

		require.NoError(t, svc.ToggleCommentVisibility(context.Background(), "c2"))
		assert.False(t, svc.blogs[0].Comments[1].Hidden)

		require.NoError(t, svc.ToggleCommentVisibility(context.Background(), "c2"))
		assert.True(t, svc.blogs[0].Comments[1].Hidden)
	})

	t.Run("store failure keeps the current flag", func(t *testing.T) {
		store := &fakeStore{setCommentHiddenErr: errors.New("update failed")}
		svc, _, _ := newTestService(store, newFakeFeed())
		svc.blogs = commentedBlogs()

		err := svc.ToggleCommentVisibility(context.Background(), "c1")
		assert.NoError(t, err)
		assert.False(t, svc.blogs[0].Comments[0].Hidden)
	})

	t.Run("comment not yet in local state is fetched from the store", func(t *testing.T) {
		store := &fakeStore{comments: []entity.Comment{
			{ID: "c9", BlogID: "b1", User: "dan", Text: "fresh"},
		}}
		svc, _, _ := newTestService(store, newFakeFeed())
		svc.blogs = commentedBlogs()

		err := svc.ToggleCommentVisibility(context.Background(), "c9")
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"c9": true}, store.hiddenCalls)
	})

	t.Run("unknown comment", func(t *testing.T) {
		svc, _, _ := newTestService(&fakeStore{}, newFakeFeed())
		err := svc.ToggleCommentVisibility(context.Background(), "missing")
		assert.ErrorIs(t, err, content.ErrCommentNotFound)
	})
}

func TestDeleteComment(t *testing.T) {
	t.Run("removes locally and publishes the old row", func(t *testing.T) {
		store := &fakeStore{}
		feed := newFakeFeed()
		svc, _, _ := newTestService(store, feed)
		svc.blogs = commentedBlogs()

		err := svc.DeleteComment(context.Background(), "c1")
		require.NoError(t, err)

		assert.Len(t, svc.blogs[0].Comments, 1)
		assert.Equal(t, []string{"c1"}, store.deletedComments)

		published := feed.publishedEvents()
		require.Len(t, published, 1)
		assert.Equal(t, redisPkg.EventDelete, published[0].Kind)
		require.NotNil(t, published[0].Old)
		assert.Equal(t, "c1", published[0].Old.ID)
	})

	t.Run("store failure is absorbed", func(t *testing.T) {
		store := &fakeStore{deleteCommentErr: errors.New("delete failed")}
		svc, _, _ := newTestService(store, newFakeFeed())
		svc.blogs = commentedBlogs()

		err := svc.DeleteComment(context.Background(), "c1")
		assert.NoError(t, err)
		assert.Len(t, svc.blogs[0].Comments, 2)
	})

	t.Run("unknown comment", func(t *testing.T) {
		svc, _, _ := newTestService(&fakeStore{}, newFakeFeed())
		err := svc.DeleteComment(context.Background(), "missing")
		assert.ErrorIs(t, err, content.ErrCommentNotFound)
	})
}

func TestVisibleComments(t *testing.T) {
	svc, _, _ := newTestService(&fakeStore{}, newFakeFeed())
	svc.blogs = commentedBlogs()

	visible, err := svc.VisibleComments("b1")
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "c1", visible[0].ID)

	_, err = svc.VisibleComments("missing")
	assert.ErrorIs(t, err, content.ErrBlogNotFound)
}
