package contentService

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"

	contentRepository "PortfolioBackend/internal/api/content/repository"
	"PortfolioBackend/internal/entity"
	redisPkg "PortfolioBackend/pkg/redis"
	"PortfolioBackend/pkg/utils"
)

// fakeStore stands in for the remote relational store. It satisfies every
// per-collection interface on the repository client, records writes and
// fails on demand.
type fakeStore struct {
	mu sync.Mutex

	clientErr error

	skills       []entity.Skill
	projects     []entity.Project
	blogs        []entity.Blog
	comments     []entity.Comment
	testimonials []entity.Testimonial

	listSkillsErr       error
	listProjectsErr     error
	listBlogsErr        error
	listCommentsErr     error
	listTestimonialsErr error

	createSkillErr       error
	createProjectErr     error
	createBlogErr        error
	updateBlogErr        error
	deleteBlogErr        error
	createCommentErr     error
	setCommentHiddenErr  error
	deleteCommentErr     error
	createTestimonialErr error

	likesErr   error
	likesValue int

	createdSkills   []entity.Skill
	createdBlogs    []entity.Blog
	createdComments []entity.Comment
	deletedComments []string
	deletedBlogs    []string
	hiddenCalls     map[string]bool

	nextProjectID int64
}

func (f *fakeStore) NewClient(tx bool) (contentRepository.Client, error) {
	if f.clientErr != nil {
		return contentRepository.Client{}, f.clientErr
	}

	return contentRepository.Client{
		Skills:       f,
		Projects:     f,
		Blogs:        f,
		Comments:     f,
		Testimonials: f,
		Commit:       func() error { return nil },
		Rollback:     func() error { return nil },
	}, nil
}

func (f *fakeStore) CreateSkill(ctx context.Context, skill entity.Skill) error {
	if f.createSkillErr != nil {
		return f.createSkillErr
	}
	f.mu.Lock()
	f.createdSkills = append(f.createdSkills, skill)
	f.mu.Unlock()
	return nil
}

func (f *fakeStore) ListSkills(ctx context.Context) ([]entity.Skill, error) {
	return f.skills, f.listSkillsErr
}

func (f *fakeStore) UpdateSkill(ctx context.Context, skill entity.Skill) error { return nil }

func (f *fakeStore) DeleteSkill(ctx context.Context, id string) error { return nil }

func (f *fakeStore) CreateProject(ctx context.Context, project entity.Project) (int64, error) {
	if f.createProjectErr != nil {
		return 0, f.createProjectErr
	}
	f.nextProjectID++
	return f.nextProjectID, nil
}

func (f *fakeStore) ListProjects(ctx context.Context) ([]entity.Project, error) {
	return f.projects, f.listProjectsErr
}

func (f *fakeStore) UpdateProject(ctx context.Context, project entity.Project) error { return nil }

func (f *fakeStore) DeleteProject(ctx context.Context, id int64) error { return nil }

func (f *fakeStore) CreateBlog(ctx context.Context, blog entity.Blog) error {
	if f.createBlogErr != nil {
		return f.createBlogErr
	}
	f.mu.Lock()
	f.createdBlogs = append(f.createdBlogs, blog)
	f.mu.Unlock()
	return nil
}

func (f *fakeStore) ListBlogs(ctx context.Context) ([]entity.Blog, error) {
	return f.blogs, f.listBlogsErr
}

func (f *fakeStore) UpdateBlog(ctx context.Context, id string, partial contentRepository.BlogPatch) error {
	return f.updateBlogErr
}

func (f *fakeStore) DeleteBlog(ctx context.Context, id string) error {
	if f.deleteBlogErr != nil {
		return f.deleteBlogErr
	}
	f.mu.Lock()
	f.deletedBlogs = append(f.deletedBlogs, id)
	f.mu.Unlock()
	return nil
}

func (f *fakeStore) IncrementBlogLikes(ctx context.Context, id string) (int, error) {
	return f.likesValue, f.likesErr
}

func (f *fakeStore) DecrementBlogLikes(ctx context.Context, id string) (int, error) {
	return f.likesValue, f.likesErr
}

func (f *fakeStore) CreateComment(ctx context.Context, comment entity.Comment) error {
	if f.createCommentErr != nil {
		return f.createCommentErr
	}
	f.mu.Lock()
	f.createdComments = append(f.createdComments, comment)
	f.mu.Unlock()
	return nil
}

func (f *fakeStore) ListComments(ctx context.Context) ([]entity.Comment, error) {
	return f.comments, f.listCommentsErr
}

func (f *fakeStore) GetCommentByID(ctx context.Context, id string) (entity.Comment, error) {
	for _, comment := range f.comments {
		if comment.ID == id {
			return comment, nil
		}
	}
	return entity.Comment{}, errors.New("comment not found")
}

func (f *fakeStore) SetCommentHidden(ctx context.Context, id string, hidden bool) error {
	if f.setCommentHiddenErr != nil {
		return f.setCommentHiddenErr
	}
	f.mu.Lock()
	if f.hiddenCalls == nil {
		f.hiddenCalls = map[string]bool{}
	}
	f.hiddenCalls[id] = hidden
	f.mu.Unlock()
	return nil
}

func (f *fakeStore) DeleteComment(ctx context.Context, id string) error {
	if f.deleteCommentErr != nil {
		return f.deleteCommentErr
	}
	f.mu.Lock()
	f.deletedComments = append(f.deletedComments, id)
	f.mu.Unlock()
	return nil
}

func (f *fakeStore) CreateTestimonial(ctx context.Context, testimonial entity.Testimonial) error {
	return f.createTestimonialErr
}

func (f *fakeStore) ListTestimonials(ctx context.Context) ([]entity.Testimonial, error) {
	return f.testimonials, f.listTestimonialsErr
}

func (f *fakeStore) UpdateTestimonial(ctx context.Context, testimonial entity.Testimonial) error {
	return nil
}

func (f *fakeStore) DeleteTestimonial(ctx context.Context, id string) error { return nil }

type fakeFeed struct {
	mu         sync.Mutex
	published  []redisPkg.CommentEvent
	publishErr error
	events     chan redisPkg.CommentEvent
	closeOnce  sync.Once
}

func newFakeFeed() *fakeFeed {
	return &fakeFeed{events: make(chan redisPkg.CommentEvent, 16)}
}

func (f *fakeFeed) PublishCommentEvent(ctx context.Context, event redisPkg.CommentEvent) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.mu.Lock()
	f.published = append(f.published, event)
	f.mu.Unlock()
	return nil
}

func (f *fakeFeed) SubscribeComments(ctx context.Context) (<-chan redisPkg.CommentEvent, func()) {
	return f.events, func() {
		f.closeOnce.Do(func() { close(f.events) })
	}
}

func (f *fakeFeed) publishedEvents() []redisPkg.CommentEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]redisPkg.CommentEvent{}, f.published...)
}

type fakeHub struct {
	mu         sync.Mutex
	broadcasts []redisPkg.CommentEvent
	closed     bool
}

func (h *fakeHub) Register(conn *websocket.Conn) func() { return func() {} }

func (h *fakeHub) Broadcast(event redisPkg.CommentEvent) {
	h.mu.Lock()
	h.broadcasts = append(h.broadcasts, event)
	h.mu.Unlock()
}

func (h *fakeHub) CloseConnections() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
}

func (h *fakeHub) broadcastCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.broadcasts)
}

type fakeS3 struct {
	uploadURL string
	uploadErr error
	deleted   []string
	deleteErr error
}

func (f *fakeS3) UploadFile(file *multipart.FileHeader) (string, error) {
	return f.uploadURL, f.uploadErr
}

func (f *fakeS3) DeleteFile(fileName string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, fileName)
	return nil
}

func newTestService(store *fakeStore, feed *fakeFeed) (*contentService, *fakeHub, *fakeS3) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	hub := &fakeHub{}
	s3Client := &fakeS3{uploadURL: "https://cdn.example.com/featured.png"}

	svc := NewContentService(logger, store, feed, hub, s3Client, utils.New()).(*contentService)
	return svc, hub, s3Client
}
