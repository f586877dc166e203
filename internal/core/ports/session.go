package ports

import (
	"context"
	"time"

	"github.com/99minutos/diary/internal/core/domain"
)

// SessionProvider resolves the principal behind the current request.
type SessionProvider interface {
	CurrentPrincipal(ctx context.Context) (*domain.Principal, error)
}

// SessionStore keeps the server-side half of sessions: pending auth codes
// and revoked token IDs.
type SessionStore interface {
	SaveAuthCode(ctx context.Context, code string, principal domain.Principal, ttl time.Duration) error
	// ConsumeAuthCode returns domain.ErrInvalidAuthCode for unknown, used or expired codes.
	ConsumeAuthCode(ctx context.Context, code string) (*domain.Principal, error)
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type sessionTokenKey struct{}

// WithSessionToken attaches the raw session token taken from the request.
func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenKey{}, token)
}

// SessionTokenFrom returns the raw token attached by WithSessionToken.
func SessionTokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(sessionTokenKey{}).(string)
	return token, ok && token != ""
}
