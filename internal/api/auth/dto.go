package auth

type LoginUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginUserResponse struct {
	AccessToken      string  `json:"access_token"`
	ExpiresInMinutes float64 `json:"expires_in_minutes"`
}

type LoginUserGoogle struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

type UserGoogle struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type SessionResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
