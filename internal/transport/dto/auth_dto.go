package dto

// GoogleAuthRequest carries the ID token obtained by the client from Google Sign-In.
type GoogleAuthRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// LoginRequest is the form posted to /login.
type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// LoginResponse echoes the submitted username.
type LoginResponse struct {
	Username string `json:"username"`
}

// TokenResponse is returned after a successful Google sign-in.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Email       string `json:"email"`
}

// MessageResponse is a plain message body.
type MessageResponse struct {
	Message string `json:"message"`
}
