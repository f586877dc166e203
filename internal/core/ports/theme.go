package ports

import (
	"context"

	"github.com/99minutos/diary/internal/core/domain"
)

// ThemeStore persists a device's theme preference.
type ThemeStore interface {
	// Load returns "" when nothing is stored for deviceID.
	Load(ctx context.Context, deviceID string) (string, error)
	Save(ctx context.Context, deviceID string, theme domain.Theme) error
}

// ThemeService resolves and toggles the preference of a client device.
// ambient is the device's color-scheme hint, used only when nothing is stored.
type ThemeService interface {
	Resolve(ctx context.Context, deviceID, ambient string) (domain.Theme, error)
	Toggle(ctx context.Context, deviceID, ambient string) (domain.Theme, error)
}
