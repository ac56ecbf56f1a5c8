package models

type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Goals     string `json:"goals,omitempty"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// UserContext holds the goals and notes the AI suggestion endpoint feeds on.
type UserContext struct {
	Goals string `json:"goals,omitempty"`
	Notes string `json:"notes,omitempty"`
}

type UpdateContextRequest struct {
	Goals *string `json:"goals,omitempty"`
	Notes *string `json:"notes,omitempty"`
}
