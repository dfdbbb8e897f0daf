package contentService

import (
	"PortfolioBackend/internal/entity"
	redisPkg "PortfolioBackend/pkg/redis"
)

// applyCommentEvent folds one change-feed event into the blog list. It is
// pure over its inputs and idempotent: replaying an event leaves state
// unchanged. Inserts are deduplicated against the client's own write-through
// append, updates and deletes target the comment wherever it currently
// resides.
func applyCommentEvent(blogs []entity.Blog, event redisPkg.CommentEvent) []entity.Blog {
	switch event.Kind {
	case redisPkg.EventInsert:
		if event.New == nil {
			return blogs
		}
		return insertComment(blogs, *event.New)

	case redisPkg.EventUpdate:
		if event.New == nil {
			return blogs
		}
		return updateComment(blogs, *event.New)

	case redisPkg.EventDelete:
		row := event.Old
		if row == nil {
			row = event.New
		}
		if row == nil {
			return blogs
		}
		return removeComment(blogs, row.ID)
	}

	return blogs
}

func insertComment(blogs []entity.Blog, comment entity.Comment) []entity.Blog {
	for i := range blogs {
		if blogs[i].ID != comment.BlogID {
			continue
		}

		for _, existing := range blogs[i].Comments {
			if existing.ID == comment.ID {
				return blogs
			}
		}

		blogs[i].Comments = append(blogs[i].Comments, comment)
		return blogs
	}

	return blogs
}

func updateComment(blogs []entity.Blog, comment entity.Comment) []entity.Blog {
	for i := range blogs {
		for j := range blogs[i].Comments {
			if blogs[i].Comments[j].ID != comment.ID {
				continue
			}

			blogs[i].Comments[j].User = comment.User
			blogs[i].Comments[j].Text = comment.Text
			blogs[i].Comments[j].Date = comment.Date
			blogs[i].Comments[j].Hidden = comment.Hidden
			return blogs
		}
	}

	return blogs
}

func removeComment(blogs []entity.Blog, commentID string) []entity.Blog {
	for i := range blogs {
		for j := range blogs[i].Comments {
			if blogs[i].Comments[j].ID != commentID {
				continue
			}

			blogs[i].Comments = append(blogs[i].Comments[:j], blogs[i].Comments[j+1:]...)
			return blogs
		}
	}

	return blogs
}
