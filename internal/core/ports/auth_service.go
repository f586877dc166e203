package ports

import (
	"context"

	"github.com/99minutos/diary/internal/core/domain"
)

// AuthService covers the sign-up / sign-in handshake and sign-out.
// Login and Signup hand back a one-time code; ExchangeAuthCode turns it
// into a session.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ExchangeAuthCode(ctx context.Context, code string) (*domain.Session, error)
	SignOut(ctx context.Context, token string) error
}
