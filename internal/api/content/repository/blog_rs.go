package contentRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"PortfolioBackend/internal/entity"
	contextPkg "PortfolioBackend/pkg/context"
)

// BlogDB is the store row for a post. The snake_case columns read_time,
// featured_image, is_published and scheduled_date carry the camelCase
// entity fields; makeBlog and blogArgs are the two directions of that
// translation.
type BlogDB struct {
	ID            sql.NullString `db:"id"`
	Title         sql.NullString `db:"title"`
	Excerpt       sql.NullString `db:"excerpt"`
	Content       sql.NullString `db:"content"`
	Date          sql.NullString `db:"date"`
	ReadTime      sql.NullString `db:"read_time"`
	Slug          sql.NullString `db:"slug"`
	Category      sql.NullString `db:"category"`
	Tags          pq.StringArray `db:"tags"`
	FeaturedImage sql.NullString `db:"featured_image"`
	IsPublished   sql.NullBool   `db:"is_published"`
	ScheduledDate sql.NullString `db:"scheduled_date"`
	Likes         sql.NullInt64  `db:"likes"`
	CreatedAt     time.Time      `db:"created_at"`
}

// BlogPatch is a partial update. Empty strings and nil pointers leave the
// stored column untouched.
type BlogPatch struct {
	Title         string
	Excerpt       string
	Content       string
	Date          string
	ReadTime      string
	Slug          string
	Category      string
	Tags          []string
	FeaturedImage string
	IsPublished   *bool
	ScheduledDate *string
}

func makeBlog(row BlogDB) entity.Blog {
	return entity.Blog{
		ID:            row.ID.String,
		Title:         row.Title.String,
		Excerpt:       row.Excerpt.String,
		Content:       row.Content.String,
		Date:          row.Date.String,
		ReadTime:      row.ReadTime.String,
		Slug:          row.Slug.String,
		Category:      row.Category.String,
		Tags:          []string(row.Tags),
		FeaturedImage: row.FeaturedImage.String,
		IsPublished:   row.IsPublished.Bool,
		ScheduledDate: row.ScheduledDate.String,
		Likes:         int(row.Likes.Int64),
		Comments:      []entity.Comment{},
		CreatedAt:     row.CreatedAt,
	}
}

func blogArgs(blog entity.Blog) map[string]interface{} {
	return map[string]interface{}{
		"id":             blog.ID,
		"title":          blog.Title,
		"excerpt":        blog.Excerpt,
		"content":        blog.Content,
		"date":           blog.Date,
		"read_time":      blog.ReadTime,
		"slug":           blog.Slug,
		"category":       blog.Category,
		"tags":           pq.StringArray(blog.Tags),
		"featured_image": blog.FeaturedImage,
		"is_published":   blog.IsPublished,
		"scheduled_date": blog.ScheduledDate,
		"likes":          blog.Likes,
	}
}

func (r *blogsRepository) CreateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryCreateBlog, blogArgs(blog))
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBlog")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return err
	}

	return nil
}

func (r *blogsRepository) ListBlogs(ctx context.Context) ([]entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	rows := []BlogDB{}

	err := r.q.SelectContext(ctx, &rows, queryListBlogs)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing blogs")
		return nil, err
	}

	blogs := make([]entity.Blog, 0, len(rows))
	for _, row := range rows {
		blogs = append(blogs, makeBlog(row))
	}

	return blogs, nil
}

func (r *blogsRepository) UpdateBlog(ctx context.Context, id string, partial BlogPatch) error {
	requestID := contextPkg.GetRequestID(ctx)

	var tags interface{}
	if partial.Tags != nil {
		tags = pq.StringArray(partial.Tags)
	}

	var isPublished sql.NullBool
	if partial.IsPublished != nil {
		isPublished = sql.NullBool{Bool: *partial.IsPublished, Valid: true}
	}

	var scheduledDate sql.NullString
	if partial.ScheduledDate != nil {
		scheduledDate = sql.NullString{String: *partial.ScheduledDate, Valid: true}
	}

	argsKV := map[string]interface{}{
		"id":             id,
		"title":          partial.Title,
		"excerpt":        partial.Excerpt,
		"content":        partial.Content,
		"date":           partial.Date,
		"read_time":      partial.ReadTime,
		"slug":           partial.Slug,
		"category":       partial.Category,
		"tags":           tags,
		"featured_image": partial.FeaturedImage,
		"is_published":   isPublished,
		"scheduled_date": scheduledDate,
	}

	query, args, err := sqlx.Named(queryUpdateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateBlog")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating blog")
		return err
	}

	return nil
}

func (r *blogsRepository) DeleteBlog(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteBlog")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting blog")
		return err
	}

	return nil
}

func (r *blogsRepository) IncrementBlogLikes(ctx context.Context, id string) (int, error) {
	return r.adjustLikes(ctx, queryIncrementBlogLikes, id)
}

func (r *blogsRepository) DecrementBlogLikes(ctx context.Context, id string) (int, error) {
	return r.adjustLikes(ctx, queryDecrementBlogLikes, id)
}

// adjustLikes runs a single statement so the counter stays correct under
// concurrent likes from different sessions.
func (r *blogsRepository) adjustLikes(ctx context.Context, namedQuery, id string) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for blog likes")
		return 0, err
	}
	query = r.q.Rebind(query)

	var likes int
	err = r.q.QueryRowxContext(ctx, query, args...).Scan(&likes)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when adjusting blog likes")
		return 0, err
	}

	return likes, nil
}
