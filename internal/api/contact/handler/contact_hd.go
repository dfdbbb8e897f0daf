package contactHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"PortfolioBackend/internal/api/contact"
	contextPkg "PortfolioBackend/pkg/context"
	"PortfolioBackend/pkg/handlerUtil"
	"PortfolioBackend/pkg/log"
)

func (h *ContactHandler) CreateMessage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing contact message")

	var req contact.CreateMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.contactService.CreateMessage(c, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_message")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{
			"message": "Message sent successfully",
		})
	}
}

func (h *ContactHandler) ListMessages(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	res, err := h.contactService.ListMessages(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_messages")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
}
