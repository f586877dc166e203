package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/diary/internal/core/domain"
)

// ThemeStore persists theme preferences per client device. Preferences
// carry no expiry.
type ThemeStore struct {
	client *redis.Client
}

func NewThemeStore(client *redis.Client) *ThemeStore {
	return &ThemeStore{client: client}
}

func (s *ThemeStore) Load(ctx context.Context, deviceID string) (string, error) {
	v, err := s.client.Get(ctx, themeKey(deviceID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("load theme: %w", err)
	}
	return v, nil
}

func (s *ThemeStore) Save(ctx context.Context, deviceID string, theme domain.Theme) error {
	return s.client.Set(ctx, themeKey(deviceID), string(theme), 0).Err()
}

func themeKey(deviceID string) string {
	return "theme:" + deviceID
}
