package contentService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"PortfolioBackend/internal/api/content"
	"PortfolioBackend/internal/entity"
	contextPkg "PortfolioBackend/pkg/context"
	redisPkg "PortfolioBackend/pkg/redis"
)

// AddComment writes through with a freshly stamped display date, appends to
// the parent blog on success and announces the insert on the change feed.
// The feed echo of our own insert is deduplicated by the reducer. A store
// failure is logged and absorbed; the visitor sees the list unchanged.
func (s *contentService) AddComment(ctx context.Context, blogID string, req content.CreateCommentRequest) (entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)

	s.mu.RLock()
	_, found := findBlog(s.blogs, blogID)
	s.mu.RUnlock()
	if !found {
		return entity.Comment{}, content.ErrBlogNotFound
	}

	commentID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Comment{}, nil
	}

	now := time.Now()
	comment := entity.Comment{
		ID:        commentID,
		BlogID:    blogID,
		User:      req.User,
		Text:      req.Text,
		Date:      s.utils.DisplayDate(now),
		Hidden:    false,
		CreatedAt: now,
	}

	repo, err := s.contentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Comment{}, nil
	}

	if err := repo.Comments.CreateComment(ctx, comment); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"error":      err.Error(),
		}).Error("Failed to create comment")
		return entity.Comment{}, nil
	}

	s.mu.Lock()
	s.blogs = insertComment(s.blogs, comment)
	s.mu.Unlock()

	s.publishCommentEvent(ctx, redisPkg.CommentEvent{
		Kind: redisPkg.EventInsert,
		New:  &comment,
	})

	return comment, nil
}

// ToggleCommentVisibility flips the hidden flag on the store and mirrors it
// locally, then announces the update so other sessions converge.
func (s *contentService) ToggleCommentVisibility(ctx context.Context, commentID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil
	}

	// A comment may not be in local state yet when its blog loaded before
	// the feed delivered the insert, so fall back to the store.
	comment, found := s.findComment(commentID)
	if !found {
		comment, err = repo.Comments.GetCommentByID(ctx, commentID)
		if err != nil {
			return content.ErrCommentNotFound
		}
	}

	hidden := !comment.Hidden
	if err := repo.Comments.SetCommentHidden(ctx, commentID, hidden); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"comment_id": commentID,
			"error":      err.Error(),
		}).Error("Failed to toggle comment visibility")
		return nil
	}

	comment.Hidden = hidden

	s.mu.Lock()
	s.blogs = updateComment(s.blogs, comment)
	s.mu.Unlock()

	s.publishCommentEvent(ctx, redisPkg.CommentEvent{
		Kind: redisPkg.EventUpdate,
		New:  &comment,
	})

	return nil
}

func (s *contentService) DeleteComment(ctx context.Context, commentID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil
	}

	comment, found := s.findComment(commentID)
	if !found {
		comment, err = repo.Comments.GetCommentByID(ctx, commentID)
		if err != nil {
			return content.ErrCommentNotFound
		}
	}

	if err := repo.Comments.DeleteComment(ctx, commentID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"comment_id": commentID,
			"error":      err.Error(),
		}).Error("Failed to delete comment")
		return nil
	}

	s.mu.Lock()
	s.blogs = removeComment(s.blogs, commentID)
	s.mu.Unlock()

	s.publishCommentEvent(ctx, redisPkg.CommentEvent{
		Kind: redisPkg.EventDelete,
		Old:  &comment,
	})

	return nil
}

// VisibleComments returns the parent blog's comment list with hidden
// entries filtered out, for the public blog page.
func (s *contentService) VisibleComments(blogID string) ([]entity.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, found := findBlog(s.blogs, blogID)
	if !found {
		return nil, content.ErrBlogNotFound
	}

	visible := []entity.Comment{}
	for _, comment := range s.blogs[i].Comments {
		if !comment.Hidden {
			visible = append(visible, comment)
		}
	}

	return visible, nil
}

func (s *contentService) findComment(commentID string) (entity.Comment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.blogs {
		for _, comment := range s.blogs[i].Comments {
			if comment.ID == commentID {
				return comment, true
			}
		}
	}

	return entity.Comment{}, false
}

func (s *contentService) publishCommentEvent(ctx context.Context, event redisPkg.CommentEvent) {
	if err := s.feed.PublishCommentEvent(ctx, event); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"kind":       event.Kind,
			"error":      err.Error(),
		}).Warn("Failed to publish comment event")
	}
}
