package contentService

import (
	"errors"
	"mime/multipart"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"PortfolioBackend/internal/api/content"
	contentRepository "PortfolioBackend/internal/api/content/repository"
	"PortfolioBackend/internal/entity"
	contextPkg "PortfolioBackend/pkg/context"
	"PortfolioBackend/pkg/utils"
)

func (s *contentService) CreateBlog(ctx context.Context, req content.CreateBlogRequest, imageFile *multipart.FileHeader) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	featuredImage, err := s.uploadFeaturedImage(ctx, imageFile)
	if err != nil {
		return entity.Blog{}, err
	}

	blogID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Blog{}, content.ErrCreateBlog
	}

	now := time.Now()

	slug := req.Slug
	if slug == "" {
		slug = s.utils.Slugify(req.Title)
	}

	readTime := req.ReadTime
	if readTime == "" {
		readTime = s.utils.EstimateReadTime(req.Content)
	}

	date := req.Date
	if date == "" {
		date = s.utils.DisplayDate(now)
	}

	isPublished := false
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	blog := entity.Blog{
		ID:            blogID,
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Date:          date,
		ReadTime:      readTime,
		Slug:          slug,
		Category:      req.Category,
		Tags:          req.Tags,
		FeaturedImage: featuredImage,
		IsPublished:   isPublished,
		ScheduledDate: req.ScheduledDate,
		Likes:         0,
		Comments:      []entity.Comment{},
		CreatedAt:     now,
	}

	repo, err := s.contentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Blog{}, content.ErrCreateBlog
	}

	if err := repo.Blogs.CreateBlog(ctx, blog); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blog")
		return entity.Blog{}, content.ErrCreateBlog
	}

	// Newest first, so writes go to the front.
	s.mu.Lock()
	s.blogs = append([]entity.Blog{blog}, s.blogs...)
	s.mu.Unlock()

	return blog, nil
}

func (s *contentService) UpdateBlog(ctx context.Context, id string, req content.UpdateBlogRequest, imageFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	s.mu.RLock()
	_, found := findBlog(s.blogs, id)
	s.mu.RUnlock()
	if !found {
		return content.ErrBlogNotFound
	}

	featuredImage, err := s.uploadFeaturedImage(ctx, imageFile)
	if err != nil {
		return err
	}

	slug := req.Slug
	if slug == "" && req.Title != "" {
		slug = s.utils.Slugify(req.Title)
	}

	readTime := req.ReadTime
	if readTime == "" && req.Content != "" {
		readTime = s.utils.EstimateReadTime(req.Content)
	}

	patch := contentRepository.BlogPatch{
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Date:          req.Date,
		ReadTime:      readTime,
		Slug:          slug,
		Category:      req.Category,
		Tags:          req.Tags,
		FeaturedImage: featuredImage,
		IsPublished:   req.IsPublished,
		ScheduledDate: req.ScheduledDate,
	}

	repo, err := s.contentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return content.ErrUpdateBlog
	}

	if err := repo.Blogs.UpdateBlog(ctx, id, patch); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    id,
			"error":      err.Error(),
		}).Error("Failed to update blog")
		return content.ErrUpdateBlog
	}

	s.mu.Lock()
	if i, ok := findBlog(s.blogs, id); ok {
		s.blogs[i] = mergeBlogPatch(s.blogs[i], patch)
	}
	s.mu.Unlock()

	return nil
}

func (s *contentService) DeleteBlog(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	s.mu.RLock()
	i, found := findBlog(s.blogs, id)
	var featuredImage string
	if found {
		featuredImage = s.blogs[i].FeaturedImage
	}
	s.mu.RUnlock()
	if !found {
		return content.ErrBlogNotFound
	}

	repo, err := s.contentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return content.ErrDeleteBlog
	}

	if err := repo.Blogs.DeleteBlog(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    id,
			"error":      err.Error(),
		}).Error("Failed to delete blog")
		return content.ErrDeleteBlog
	}

	s.mu.Lock()
	if i, ok := findBlog(s.blogs, id); ok {
		s.blogs = append(s.blogs[:i], s.blogs[i+1:]...)
	}
	s.mu.Unlock()

	if featuredImage != "" {
		if err := s.s3Client.DeleteFile(featuredImage); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    id,
				"error":      err.Error(),
			}).Warn("Failed to delete featured image")
		}
	}

	return nil
}

func (s *contentService) GetBlogBySlug(slug string) (entity.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, blog := range s.blogs {
		if blog.Slug == slug {
			copied := blog
			copied.Comments = append([]entity.Comment{}, blog.Comments...)
			copied.Tags = append([]string{}, blog.Tags...)
			return copied, nil
		}
	}

	return entity.Blog{}, content.ErrBlogNotFound
}

// SearchBlogs filters the local list by a case-insensitive match on title,
// excerpt, category and tags, then orders by the requested sort key.
func (s *contentService) SearchBlogs(query, sortBy string) content.BlogListResponse {
	s.mu.RLock()
	blogs := copyBlogs(s.blogs)
	s.mu.RUnlock()

	blogs = filterBlogs(blogs, query)
	blogs = sortBlogs(blogs, sortBy)

	return content.BlogListResponse{
		Blogs: blogs,
		Total: len(blogs),
	}
}

func filterBlogs(blogs []entity.Blog, query string) []entity.Blog {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return blogs
	}

	matched := make([]entity.Blog, 0, len(blogs))
	for _, blog := range blogs {
		if blogMatches(blog, query) {
			matched = append(matched, blog)
		}
	}

	return matched
}

func blogMatches(blog entity.Blog, query string) bool {
	if strings.Contains(strings.ToLower(blog.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(blog.Excerpt), query) {
		return true
	}
	if strings.Contains(strings.ToLower(blog.Category), query) {
		return true
	}
	for _, tag := range blog.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func sortBlogs(blogs []entity.Blog, sortBy string) []entity.Blog {
	switch sortBy {
	case "oldest":
		sort.SliceStable(blogs, func(i, j int) bool {
			return blogs[i].CreatedAt.Before(blogs[j].CreatedAt)
		})
	case "likes":
		sort.SliceStable(blogs, func(i, j int) bool {
			return blogs[i].Likes > blogs[j].Likes
		})
	default:
		sort.SliceStable(blogs, func(i, j int) bool {
			return blogs[i].CreatedAt.After(blogs[j].CreatedAt)
		})
	}

	return blogs
}

// LikeBlog bumps the local counter immediately and lets the store apply the
// increment atomically. A failed remote call is logged and the optimistic
// value stands.
func (s *contentService) LikeBlog(ctx context.Context, id string) (int, error) {
	return s.adjustLikes(ctx, id, +1)
}

// UnlikeBlog mirrors LikeBlog with a floor of zero on both sides.
func (s *contentService) UnlikeBlog(ctx context.Context, id string) (int, error) {
	return s.adjustLikes(ctx, id, -1)
}

func (s *contentService) adjustLikes(ctx context.Context, id string, delta int) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	s.mu.Lock()
	i, found := findBlog(s.blogs, id)
	if !found {
		s.mu.Unlock()
		return 0, content.ErrBlogNotFound
	}

	likes := s.blogs[i].Likes + delta
	if likes < 0 {
		likes = 0
	}
	s.blogs[i].Likes = likes
	s.mu.Unlock()

	repo, err := s.contentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return likes, nil
	}

	var serverLikes int
	if delta > 0 {
		serverLikes, err = repo.Blogs.IncrementBlogLikes(ctx, id)
	} else {
		serverLikes, err = repo.Blogs.DecrementBlogLikes(ctx, id)
	}
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    id,
			"error":      err.Error(),
		}).Warn("Blog like counter write failed, keeping optimistic value")
		return likes, nil
	}

	s.mu.Lock()
	if i, ok := findBlog(s.blogs, id); ok {
		s.blogs[i].Likes = serverLikes
	}
	s.mu.Unlock()

	return serverLikes, nil
}

func (s *contentService) uploadFeaturedImage(ctx context.Context, imageFile *multipart.FileHeader) (string, error) {
	if imageFile == nil {
		return "", nil
	}

	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateImageFile(imageFile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid featured image file")
		if errors.Is(err, utils.ErrFileTooLarge) {
			return "", content.ErrFileTooLarge
		}
		return "", content.ErrInvalidFileType
	}

	uploadedURL, err := s.s3Client.UploadFile(imageFile)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload featured image")
		return "", content.ErrFailedToUpload
	}

	return uploadedURL, nil
}

func findBlog(blogs []entity.Blog, id string) (int, bool) {
	for i := range blogs {
		if blogs[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

func mergeBlogPatch(blog entity.Blog, patch contentRepository.BlogPatch) entity.Blog {
	if patch.Title != "" {
		blog.Title = patch.Title
	}
	if patch.Excerpt != "" {
		blog.Excerpt = patch.Excerpt
	}
	if patch.Content != "" {
		blog.Content = patch.Content
	}
	if patch.Date != "" {
		blog.Date = patch.Date
	}
	if patch.ReadTime != "" {
		blog.ReadTime = patch.ReadTime
	}
	if patch.Slug != "" {
		blog.Slug = patch.Slug
	}
	if patch.Category != "" {
		blog.Category = patch.Category
	}
	if patch.Tags != nil {
		blog.Tags = patch.Tags
	}
	if patch.FeaturedImage != "" {
		blog.FeaturedImage = patch.FeaturedImage
	}
	if patch.IsPublished != nil {
		blog.IsPublished = *patch.IsPublished
	}
	if patch.ScheduledDate != nil {
		blog.ScheduledDate = *patch.ScheduledDate
	}
	return blog
}
