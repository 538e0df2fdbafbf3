package models

// LoginRequest carries the credentials sent to the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse mirrors a successful login payload.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// RegisterRequest carries the payload for account creation.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse mirrors the registration confirmation.
type RegisterResponse struct {
	Message string `json:"message"`
}
