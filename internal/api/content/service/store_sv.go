package contentService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"PortfolioBackend/internal/api/content"
	"PortfolioBackend/internal/entity"
	contextPkg "PortfolioBackend/pkg/context"
)

// Load issues the four read-all queries and swaps the local collections in
// one step. Each collection degrades to empty on its own read failure, so a
// broken projects table never empties the skills list and no error escapes
// to the caller.
func (s *contentService) Load(ctx context.Context) {
	requestID := contextPkg.GetRequestID(ctx)

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	repo, err := s.contentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")

		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		return
	}

	skills, err := repo.Skills.ListSkills(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Skills load failed, starting with an empty list")
		skills = []entity.Skill{}
	}

	projects, err := repo.Projects.ListProjects(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Projects load failed, starting with an empty list")
		projects = []entity.Project{}
	}

	blogs, err := repo.Blogs.ListBlogs(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Blogs load failed, starting with an empty list")
		blogs = []entity.Blog{}
	} else {
		comments, err := repo.Comments.ListComments(ctx)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Comments load failed, blogs start without comments")
		} else {
			blogs = attachComments(blogs, comments)
		}
	}

	testimonials, err := repo.Testimonials.ListTestimonials(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Testimonials load failed, starting with an empty list")
		testimonials = []entity.Testimonial{}
	}

	s.mu.Lock()
	s.skills = skills
	s.projects = projects
	s.blogs = blogs
	s.testimonials = testimonials
	s.loading = false
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"request_id":   requestID,
		"skills":       len(skills),
		"projects":     len(projects),
		"blogs":        len(blogs),
		"testimonials": len(testimonials),
	}).Info("Content collections loaded")
}

// attachComments groups the flat comment list under each parent blog,
// preserving creation order within a blog.
func attachComments(blogs []entity.Blog, comments []entity.Comment) []entity.Blog {
	byBlog := make(map[string][]entity.Comment, len(blogs))
	for _, comment := range comments {
		byBlog[comment.BlogID] = append(byBlog[comment.BlogID], comment)
	}

	for i := range blogs {
		if grouped, ok := byBlog[blogs[i].ID]; ok {
			blogs[i].Comments = grouped
		}
	}

	return blogs
}

func (s *contentService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *contentService) Snapshot() content.SnapshotResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return content.SnapshotResponse{
		Skills:       append([]entity.Skill{}, s.skills...),
		Projects:     append([]entity.Project{}, s.projects...),
		Blogs:        copyBlogs(s.blogs),
		Testimonials: append([]entity.Testimonial{}, s.testimonials...),
		Loading:      s.loading,
	}
}

// copyBlogs deep-copies the comment slices so callers never alias the
// state the feed goroutine patches.
func copyBlogs(blogs []entity.Blog) []entity.Blog {
	out := make([]entity.Blog, len(blogs))
	for i, blog := range blogs {
		out[i] = blog
		out[i].Comments = append([]entity.Comment{}, blog.Comments...)
		out[i].Tags = append([]string{}, blog.Tags...)
	}
	return out
}

// Run consumes the comment change feed until ctx is cancelled, patching
// local state and fanning each event out to connected websocket clients.
func (s *contentService) Run(ctx context.Context) {
	events, unsubscribe := s.feed.SubscribeComments(ctx)

	s.mu.Lock()
	s.unsubscribe = unsubscribe
	s.mu.Unlock()

	go func() {
		for event := range events {
			s.mu.Lock()
			s.blogs = applyCommentEvent(s.blogs, event)
			s.mu.Unlock()

			s.hub.Broadcast(event)
		}

		s.log.Info("Comment change feed closed")
	}()
}

func (s *contentService) Close() {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}

	s.hub.CloseConnections()
}
