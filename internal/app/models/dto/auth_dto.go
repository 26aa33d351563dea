package dto

// LoginRequest defines the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"manager@arsenal-school.local"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// RefreshTokenRequest defines the token refresh payload
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest defines the logout payload
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn" example:"3600"`
	TokenType    string `json:"tokenType" example:"Bearer"`
}

// LoginResponse carries the token pair plus the authenticated user
type LoginResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}
