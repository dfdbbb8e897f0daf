package contentService

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PortfolioBackend/internal/entity"
	redisPkg "PortfolioBackend/pkg/redis"
)

func TestLoad(t *testing.T) {
	t.Run("groups comments under their parent blog", func(t *testing.T) {
		store := &fakeStore{
			skills: []entity.Skill{{ID: "s1", Name: "Go"}},
			blogs:  []entity.Blog{{ID: "b1", Title: "one"}, {ID: "b2", Title: "two"}},
			comments: []entity.Comment{
				{ID: "c1", BlogID: "b1"},
				{ID: "c2", BlogID: "b2"},
				{ID: "c3", BlogID: "b1"},
			},
			testimonials: []entity.Testimonial{{ID: "t1", Author: "ana"}},
		}
		svc, _, _ := newTestService(store, newFakeFeed())

		svc.Load(context.Background())

		snapshot := svc.Snapshot()
		assert.False(t, snapshot.Loading)
		assert.Len(t, snapshot.Skills, 1)
		assert.Len(t, snapshot.Testimonials, 1)
		require.Len(t, snapshot.Blogs, 2)
		assert.Len(t, snapshot.Blogs[0].Comments, 2)
		assert.Len(t, snapshot.Blogs[1].Comments, 1)
	})

	t.Run("one failing collection does not empty the others", func(t *testing.T) {
		store := &fakeStore{
			skills:          []entity.Skill{{ID: "s1", Name: "Go"}},
			listProjectsErr: errors.New("relation does not exist"),
			blogs:           []entity.Blog{{ID: "b1"}},
		}
		svc, _, _ := newTestService(store, newFakeFeed())

		svc.Load(context.Background())

		snapshot := svc.Snapshot()
		assert.Len(t, snapshot.Skills, 1)
		assert.Len(t, snapshot.Projects, 0)
		assert.Len(t, snapshot.Blogs, 1)
		assert.False(t, snapshot.Loading)
	})

	t.Run("comment read failure leaves blogs without comments", func(t *testing.T) {
		store := &fakeStore{
			blogs:           []entity.Blog{{ID: "b1", Comments: []entity.Comment{}}},
			listCommentsErr: errors.New("timeout"),
		}
		svc, _, _ := newTestService(store, newFakeFeed())

		svc.Load(context.Background())

		snapshot := svc.Snapshot()
		require.Len(t, snapshot.Blogs, 1)
		assert.Len(t, snapshot.Blogs[0].Comments, 0)
	})

	t.Run("client failure clears the loading flag", func(t *testing.T) {
		store := &fakeStore{clientErr: errors.New("connection refused")}
		svc, _, _ := newTestService(store, newFakeFeed())

		svc.Load(context.Background())

		assert.False(t, svc.Loading())
	})
}

func TestSnapshotIsDetached(t *testing.T) {
	store := &fakeStore{
		blogs: []entity.Blog{{
			ID:       "b1",
			Tags:     []string{"go"},
			Comments: []entity.Comment{{ID: "c1", BlogID: "b1", Text: "original"}},
		}},
	}
	svc, _, _ := newTestService(store, newFakeFeed())
	svc.Load(context.Background())

	snapshot := svc.Snapshot()
	snapshot.Blogs[0].Comments[0].Text = "mutated"
	snapshot.Blogs[0].Tags[0] = "rust"

	fresh := svc.Snapshot()
	assert.Equal(t, "original", fresh.Blogs[0].Comments[0].Text)
	assert.Equal(t, "go", fresh.Blogs[0].Tags[0])
}

func TestRunAppliesFeedEvents(t *testing.T) {
	store := &fakeStore{blogs: []entity.Blog{{ID: "b1", Comments: []entity.Comment{}}}}
	feed := newFakeFeed()
	svc, hub, _ := newTestService(store, feed)
	svc.Load(context.Background())

	svc.Run(context.Background())
	defer svc.Close()

	comment := entity.Comment{ID: "c1", BlogID: "b1", User: "ana", Text: "from another session"}
	feed.events <- redisPkg.CommentEvent{Kind: redisPkg.EventInsert, New: &comment}

	require.Eventually(t, func() bool {
		return hub.broadcastCount() == 1
	}, time.Second, 5*time.Millisecond)

	snapshot := svc.Snapshot()
	require.Len(t, snapshot.Blogs[0].Comments, 1)
	assert.Equal(t, "c1", snapshot.Blogs[0].Comments[0].ID)
}

func TestCloseStopsFeedAndHub(t *testing.T) {
	store := &fakeStore{}
	feed := newFakeFeed()
	svc, hub, _ := newTestService(store, feed)

	svc.Run(context.Background())
	svc.Close()

	hub.mu.Lock()
	closed := hub.closed
	hub.mu.Unlock()
	assert.True(t, closed)

	// The channel was closed by the unsubscribe func, so a second Close
	// must not panic.
	svc.Close()
}
