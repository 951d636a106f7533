package dto

import "time"

// RegisterRequest input to create an account. Sign-in is refused until the
// email is confirmed.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"`
}

// LoginRequest credentials for sign-in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ConfirmEmailRequest the confirmation token from the verification link.
type ConfirmEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

// UserResponse public view of an account.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterResponse account plus the confirmation token. In production the
// token travels by email; it is returned here so dev setups work without an
// SMTP collaborator.
type RegisterResponse struct {
	User         UserResponse `json:"user"`
	ConfirmToken string       `json:"confirm_token,omitempty"`
}

// LoginResponse session token plus the account.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
