package journal

import "PortfolioBackend/pkg/response"

var (
	ErrEntryNotFound = response.NewError(404, "journal entry not found")
	ErrEntryNotOwned = response.NewError(403, "journal entry does not belong to user")
	ErrCreateEntry   = response.NewError(500, "failed to create journal entry")
	ErrUpdateEntry   = response.NewError(500, "failed to update journal entry")
	ErrDeleteEntry   = response.NewError(500, "failed to delete journal entry")
)
