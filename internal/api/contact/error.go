package contact

import "PortfolioBackend/pkg/response"

var (
	ErrCreateMessage = response.NewError(500, "failed to send message")
	ErrListMessages  = response.NewError(500, "failed to list messages")
)
