package auth

import "PortfolioBackend/pkg/response"

var (
	ErrUserNotFound           = response.NewError(404, "user not found")
	ErrInvalidEmailOrPassword = response.NewError(400, "invalid email or password")
	ErrorInvalidToken         = response.NewError(401, "invalid token")
	ErrorTokenExpired         = response.NewError(401, "token expired")
	ErrInvalidOAuthState      = response.NewError(401, "invalid oauth state")
)
