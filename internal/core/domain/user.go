package domain

import (
	"errors"
	"time"
)

var ErrAuthRequired = errors.New("authentication required")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidAuthCode = errors.New("invalid or expired auth code")

// User models an account that can sign in.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the authenticated identity behind a request.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is a signed-in session issued after an auth code exchange.
type Session struct {
	Token     string
	TokenID   string
	Principal Principal
	ExpiresAt time.Time
}
