package contentHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"

	"PortfolioBackend/internal/api/content"
	contextPkg "PortfolioBackend/pkg/context"
	"PortfolioBackend/pkg/handlerUtil"
	"PortfolioBackend/pkg/log"
)

func (h *ContentHandler) AddComment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req content.CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	comment, err := h.contentService.AddComment(c, ctx.Params("id"), req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "add_comment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, comment)
	}
}

func (h *ContentHandler) GetVisibleComments(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	comments, err := h.contentService.VisibleComments(ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_comments")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
		"comments": comments,
		"total":    len(comments),
	})
}

func (h *ContentHandler) ToggleCommentVisibility(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if err := h.contentService.ToggleCommentVisibility(c, ctx.Params("id")); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "toggle_comment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Comment visibility toggled",
		})
	}
}

func (h *ContentHandler) DeleteComment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if err := h.contentService.DeleteComment(c, ctx.Params("id")); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_comment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Comment deleted successfully",
		})
	}
}

// UpgradeFeed gates the feed route to websocket upgrade requests.
func (h *ContentHandler) UpgradeFeed(ctx *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(ctx) {
		return ctx.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Feed streams comment change events to the connected client until it
// hangs up. Reads are drained only to notice the close.
func (h *ContentHandler) Feed(conn *websocket.Conn) {
	unregister := h.hub.Register(conn)
	defer unregister()

	h.log.WithFields(log.Fields{
		"remote": conn.RemoteAddr().String(),
	}).Debug("Feed client connected")

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
