package contentRepository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"PortfolioBackend/internal/entity"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Skills:       &skillsRepository{q: sqlExecutor, log: r.log},
		Projects:     &projectsRepository{q: sqlExecutor, log: r.log},
		Blogs:        &blogsRepository{q: sqlExecutor, log: r.log},
		Comments:     &commentsRepository{q: sqlExecutor, log: r.log},
		Testimonials: &testimonialsRepository{q: sqlExecutor, log: r.log},
		Commit:       commitFunc,
		Rollback:     rollbackFunc,
	}, nil
}

// Client exposes the remote store per collection: list reads ordered by
// creation time, inserts, partial updates and deletes by primary key, plus
// the atomic like counter procedures.
type Client struct {
	Skills interface {
		CreateSkill(ctx context.Context, skill entity.Skill) error
		ListSkills(ctx context.Context) ([]entity.Skill, error)
		UpdateSkill(ctx context.Context, skill entity.Skill) error
		DeleteSkill(ctx context.Context, id string) error
	}

	Projects interface {
		CreateProject(ctx context.Context, project entity.Project) (int64, error)
		ListProjects(ctx context.Context) ([]entity.Project, error)
		UpdateProject(ctx context.Context, project entity.Project) error
		DeleteProject(ctx context.Context, id int64) error
	}

	Blogs interface {
		CreateBlog(ctx context.Context, blog entity.Blog) error
		ListBlogs(ctx context.Context) ([]entity.Blog, error)
		UpdateBlog(ctx context.Context, id string, partial BlogPatch) error
		DeleteBlog(ctx context.Context, id string) error
		IncrementBlogLikes(ctx context.Context, id string) (int, error)
		DecrementBlogLikes(ctx context.Context, id string) (int, error)
	}

	Comments interface {
		CreateComment(ctx context.Context, comment entity.Comment) error
		ListComments(ctx context.Context) ([]entity.Comment, error)
		GetCommentByID(ctx context.Context, id string) (entity.Comment, error)
		SetCommentHidden(ctx context.Context, id string, hidden bool) error
		DeleteComment(ctx context.Context, id string) error
	}

	Testimonials interface {
		CreateTestimonial(ctx context.Context, testimonial entity.Testimonial) error
		ListTestimonials(ctx context.Context) ([]entity.Testimonial, error)
		UpdateTestimonial(ctx context.Context, testimonial entity.Testimonial) error
		DeleteTestimonial(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type skillsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type projectsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type blogsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type commentsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type testimonialsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
