package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/diary/internal/core/domain"
)

// SessionStore keeps one-time auth codes and revoked session token IDs.
// Key formats:
//
//	authcode:<code>        -> JSON principal, expires after the code TTL
//	session:revoked:<jti>  -> "1", expires when the token would have
type SessionStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client, now: time.Now}
}

// SaveAuthCode stores the principal the code will sign in.
func (s *SessionStore) SaveAuthCode(ctx context.Context, code string, principal domain.Principal, ttl time.Duration) error {
	payload, err := json.Marshal(principal)
	if err != nil {
		return fmt.Errorf("encode principal: %w", err)
	}
	ok, err := s.client.SetNX(ctx, codeKey(code), payload, ttl).Result()
	if err != nil {
		return fmt.Errorf("save auth code: %w", err)
	}
	if !ok {
		return fmt.Errorf("save auth code: code already issued")
	}
	return nil
}

// ConsumeAuthCode atomically reads and deletes the code so it can be used once.
func (s *SessionStore) ConsumeAuthCode(ctx context.Context, code string) (*domain.Principal, error) {
	payload, err := s.client.GetDel(ctx, codeKey(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrInvalidAuthCode
		}
		return nil, fmt.Errorf("consume auth code: %w", err)
	}

	var p domain.Principal
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("decode principal: %w", err)
	}
	return &p, nil
}

// Revoke marks a token ID as signed out until the token's own expiry.
func (s *SessionStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedKey(tokenID), "1", ttl).Err()
}

// IsRevoked reports whether the token ID was signed out.
func (s *SessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func codeKey(code string) string {
	return "authcode:" + code
}

func revokedKey(tokenID string) string {
	return "session:revoked:" + tokenID
}
