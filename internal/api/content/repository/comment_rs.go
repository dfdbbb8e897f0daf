package contentRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"PortfolioBackend/internal/entity"
	contextPkg "PortfolioBackend/pkg/context"
)

type CommentDB struct {
	ID        sql.NullString `db:"id"`
	BlogID    sql.NullString `db:"blog_id"`
	UserName  sql.NullString `db:"user_name"`
	Text      sql.NullString `db:"text"`
	Date      sql.NullString `db:"date"`
	Hidden    sql.NullBool   `db:"hidden"`
	CreatedAt time.Time      `db:"created_at"`
}

func makeComment(row CommentDB) entity.Comment {
	return entity.Comment{
		ID:        row.ID.String,
		BlogID:    row.BlogID.String,
		User:      row.UserName.String,
		Text:      row.Text.String,
		Date:      row.Date.String,
		Hidden:    row.Hidden.Bool,
		CreatedAt: row.CreatedAt,
	}
}

func (r *commentsRepository) CreateComment(ctx context.Context, comment entity.Comment) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":        comment.ID,
		"blog_id":   comment.BlogID,
		"user_name": comment.User,
		"text":      comment.Text,
		"date":      comment.Date,
		"hidden":    comment.Hidden,
	}

	query, args, err := sqlx.Named(queryCreateComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateComment")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating comment")
		return err
	}

	return nil
}

func (r *commentsRepository) ListComments(ctx context.Context) ([]entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	rows := []CommentDB{}

	err := r.q.SelectContext(ctx, &rows, queryListComments)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing comments")
		return nil, err
	}

	comments := make([]entity.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, makeComment(row))
	}

	return comments, nil
}

func (r *commentsRepository) GetCommentByID(ctx context.Context, id string) (entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row CommentDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetCommentByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for GetCommentByID")
		return entity.Comment{}, err
	}
	query = r.q.Rebind(query)

	err = r.q.QueryRowxContext(ctx, query, args...).StructScan(&row)
	if err != nil {
		if err != sql.ErrNoRows {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Database error when getting comment")
		}
		return entity.Comment{}, err
	}

	return makeComment(row), nil
}

func (r *commentsRepository) SetCommentHidden(ctx context.Context, id string, hidden bool) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":     id,
		"hidden": hidden,
	}

	query, args, err := sqlx.Named(querySetCommentHidden, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for SetCommentHidden")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when toggling comment visibility")
		return err
	}

	return nil
}

func (r *commentsRepository) DeleteComment(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteComment")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting comment")
		return err
	}

	return nil
}
