package authHandler

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"PortfolioBackend/internal/api/auth"
	contextPkg "PortfolioBackend/pkg/context"
	"PortfolioBackend/pkg/handlerUtil"
	"PortfolioBackend/pkg/log"
)

func (h *AuthHandler) HandleGoogleLogin(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	url, err := h.authService.LoginGoogle()
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "google_login")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return ctx.Redirect(url.String(), fiber.StatusTemporaryRedirect)
	}
}

func (h *AuthHandler) CallBackFromGoogle(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	state := ctx.FormValue("state")
	if state != os.Getenv("GOOGLE_STATE") {
		return errHandler.Handle(ctx, requestID, auth.ErrInvalidOAuthState, ctx.Path(), "oauth_callback")
	}

	code := ctx.FormValue("code")
	if code == "" {
		reason := ctx.FormValue("error_reason")
		if reason == "user_denied" {
			h.log.WithFields(log.Fields{
				"request_id": requestID,
				"reason":     reason,
				"path":       ctx.Path(),
			}).Info("User denied access")
			return errHandler.HandleUnauthorized(ctx, requestID, "Access denied by user")
		}

		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("no authorization code provided"), ctx.Path())
	}

	userInfoBytes, err := h.googleProvider.GetUserExchangeToken(ctx, code)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "exchange_token")
	}

	var userInfo auth.UserGoogle
	if err := json.Unmarshal(userInfoBytes, &userInfo); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_user_info")
	}

	res, err := h.authService.UserLoginGoogle(c, auth.LoginUserGoogle{
		Email: userInfo.Email,
		Name:  userInfo.Name,
	})
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "google_login")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
