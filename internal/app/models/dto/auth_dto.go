package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents issued token information
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Token    TokenResponse `json:"token"`
	UserID   int64         `json:"user_id"`
	Username string        `json:"username"`
	FullName string        `json:"full_name"`
	Role     string        `json:"role"`
}
