package contact

import "PortfolioBackend/internal/entity"

type CreateMessageRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=128"`
	Email   string `json:"email" validate:"required,email"`
	Project string `json:"project" validate:"required,min=1,max=4096"`
}

type MessageListResponse struct {
	Messages []entity.ContactMessage `json:"messages"`
	Total    int                     `json:"total"`
}
