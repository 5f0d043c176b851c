package model

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required" validate:"required,min=3,max=32"`
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=6,max=64"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Username string `json:"username" binding:"required" validate:"required"`
	Password string `json:"password" binding:"required" validate:"required"`
}

// LoginResponse is the response body for a successful login.
type LoginResponse struct {
	Token     string   `json:"token"`
	TokenType string   `json:"token_type"`
	ExpiresAt int64    `json:"expires_at"`
	User      *Profile `json:"user"`
}

// SaveConnectionRequest is the request body for saving a connection.
type SaveConnectionRequest struct {
	ConnectionString string `json:"connection_string" binding:"required" validate:"required"`
	Label            string `json:"label" validate:"omitempty,max=128"`
}

// RemoveConnectionRequest identifies the saved connection to delete.
type RemoveConnectionRequest struct {
	ConnectionString string `json:"connection_string" binding:"required" validate:"required"`
}
