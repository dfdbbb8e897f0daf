package contentService

import (
	"mime/multipart"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"PortfolioBackend/internal/api/content"
	contentRepository "PortfolioBackend/internal/api/content/repository"
	"PortfolioBackend/internal/entity"
	redisPkg "PortfolioBackend/pkg/redis"
	"PortfolioBackend/pkg/s3"
	"PortfolioBackend/pkg/utils"
	websocketPkg "PortfolioBackend/pkg/websocket"
)

// IContentService holds the in-memory copy of the four content collections,
// writes mutations through to the store before patching local state, and
// reconciles comment change-feed events into the blog list for as long as
// Run is active.
type IContentService interface {
	Load(ctx context.Context)
	Loading() bool
	Snapshot() content.SnapshotResponse
	Run(ctx context.Context)
	Close()

	CreateSkill(ctx context.Context, req content.CreateSkillRequest)
	UpdateSkill(ctx context.Context, id string, req content.UpdateSkillRequest)
	DeleteSkill(ctx context.Context, id string)

	CreateProject(ctx context.Context, req content.CreateProjectRequest)
	UpdateProject(ctx context.Context, id int64, req content.UpdateProjectRequest)
	DeleteProject(ctx context.Context, id int64)

	CreateBlog(ctx context.Context, req content.CreateBlogRequest, imageFile *multipart.FileHeader) (entity.Blog, error)
	UpdateBlog(ctx context.Context, id string, req content.UpdateBlogRequest, imageFile *multipart.FileHeader) error
	DeleteBlog(ctx context.Context, id string) error
	GetBlogBySlug(slug string) (entity.Blog, error)
	SearchBlogs(query, sortBy string) content.BlogListResponse
	LikeBlog(ctx context.Context, id string) (int, error)
	UnlikeBlog(ctx context.Context, id string) (int, error)

	AddComment(ctx context.Context, blogID string, req content.CreateCommentRequest) (entity.Comment, error)
	ToggleCommentVisibility(ctx context.Context, commentID string) error
	DeleteComment(ctx context.Context, commentID string) error
	VisibleComments(blogID string) ([]entity.Comment, error)

	CreateTestimonial(ctx context.Context, req content.CreateTestimonialRequest)
	UpdateTestimonial(ctx context.Context, id string, req content.UpdateTestimonialRequest)
	DeleteTestimonial(ctx context.Context, id string)
}

type contentService struct {
	log         *logrus.Logger
	contentRepo contentRepository.Repository
	feed        redisPkg.IRedis
	hub         websocketPkg.IHub
	s3Client    s3.ItfS3
	utils       utils.IUtils

	mu           sync.RWMutex
	skills       []entity.Skill
	projects     []entity.Project
	blogs        []entity.Blog
	testimonials []entity.Testimonial
	loading      bool

	unsubscribe func()
}

func NewContentService(
	log *logrus.Logger,
	contentRepo contentRepository.Repository,
	feed redisPkg.IRedis,
	hub websocketPkg.IHub,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IContentService {
	return &contentService{
		log:          log,
		contentRepo:  contentRepo,
		feed:         feed,
		hub:          hub,
		s3Client:     s3Client,
		utils:        utils,
		skills:       []entity.Skill{},
		projects:     []entity.Project{},
		blogs:        []entity.Blog{},
		testimonials: []entity.Testimonial{},
	}
}
