package auth

// LoginRequest carries the member login form
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenPair holds the issued JWT tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // seconds until the access token expires
}

// AuthResponse is the successful login payload
type AuthResponse struct {
	Username string    `json:"username"`
	Tokens   TokenPair `json:"tokens"`
}
