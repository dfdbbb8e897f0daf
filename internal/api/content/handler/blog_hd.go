package contentHandler

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"PortfolioBackend/internal/api/content"
	contextPkg "PortfolioBackend/pkg/context"
	"PortfolioBackend/pkg/handlerUtil"
	"PortfolioBackend/pkg/log"
)

// CreateBlog accepts multipart form data so the editor can attach a
// featured image alongside the post fields.
func (h *ContentHandler) CreateBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create blog request")

	title := ctx.FormValue("title")
	body := ctx.FormValue("content")
	if title == "" || body == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("title and content are required"), ctx.Path())
	}

	req := content.CreateBlogRequest{
		Title:         title,
		Excerpt:       ctx.FormValue("excerpt"),
		Content:       body,
		Date:          ctx.FormValue("date"),
		ReadTime:      ctx.FormValue("readTime"),
		Slug:          ctx.FormValue("slug"),
		Category:      ctx.FormValue("category"),
		Tags:          splitTags(ctx.FormValue("tags")),
		ScheduledDate: ctx.FormValue("scheduledDate"),
	}

	if raw := ctx.FormValue("isPublished"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}
		req.IsPublished = &published
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	// Image is optional, so the error is ignored.
	imageFile, _ := ctx.FormFile("featuredImage")

	blog, err := h.contentService.CreateBlog(c, req, imageFile)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, blog)
	}
}

func (h *ContentHandler) UpdateBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")

	req := content.UpdateBlogRequest{
		Title:    ctx.FormValue("title"),
		Excerpt:  ctx.FormValue("excerpt"),
		Content:  ctx.FormValue("content"),
		Date:     ctx.FormValue("date"),
		ReadTime: ctx.FormValue("readTime"),
		Slug:     ctx.FormValue("slug"),
		Category: ctx.FormValue("category"),
		Tags:     splitTags(ctx.FormValue("tags")),
	}

	if raw := ctx.FormValue("isPublished"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}
		req.IsPublished = &published
	}

	if raw := ctx.FormValue("scheduledDate"); raw != "" {
		req.ScheduledDate = &raw
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	imageFile, _ := ctx.FormFile("featuredImage")

	if err := h.contentService.UpdateBlog(c, id, req, imageFile); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Blog updated successfully",
		})
	}
}

func (h *ContentHandler) DeleteBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if err := h.contentService.DeleteBlog(c, ctx.Params("id")); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Blog deleted successfully",
		})
	}
}

// SearchBlogs filters the local copy, so it answers without touching the
// store.
func (h *ContentHandler) SearchBlogs(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	query := ctx.Query("q")
	sortBy := ctx.Query("sort", "newest")

	res := h.contentService.SearchBlogs(query, sortBy)
	return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
}

func (h *ContentHandler) GetBlogBySlug(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	slug := ctx.Params("slug")
	if slug == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("slug is required"), ctx.Path())
	}

	blog, err := h.contentService.GetBlogBySlug(slug)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_blog_by_slug")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, blog)
}

func (h *ContentHandler) LikeBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	likes, err := h.contentService.LikeBlog(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "like_blog")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, content.LikesResponse{
		ID:    id,
		Likes: likes,
	})
}

func (h *ContentHandler) UnlikeBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	likes, err := h.contentService.UnlikeBlog(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "unlike_blog")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, content.LikesResponse{
		ID:    id,
		Likes: likes,
	})
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}
