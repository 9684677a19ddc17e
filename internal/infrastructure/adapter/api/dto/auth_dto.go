package dto

// SignupRequest represents the API request for creating an account
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// SigninRequest represents the API request for signing in.
// Identifier matches either email or username.
type SigninRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// UserResponse represents a user identity in API responses
type UserResponse struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SessionResponse represents the API response for signup and signin
type SessionResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
