package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/diary/internal/core/domain"
	"github.com/99minutos/diary/internal/core/ports"
)

// ThemeService resolves device theme preferences. It is independent of
// sessions: signed-out visitors have a theme too.
type ThemeService struct {
	store ports.ThemeStore
	log   zerolog.Logger
}

func NewThemeService(store ports.ThemeStore, log zerolog.Logger) *ThemeService {
	return &ThemeService{store: store, log: log}
}

// Resolve returns the stored preference, or derives one from the ambient
// hint and persists it.
func (s *ThemeService) Resolve(ctx context.Context, deviceID, ambient string) (domain.Theme, error) {
	state, err := s.load(ctx, deviceID, ambient)
	if err != nil {
		return "", err
	}
	return state.Current()
}

// Toggle flips the device's preference and persists the result before
// returning it.
func (s *ThemeService) Toggle(ctx context.Context, deviceID, ambient string) (domain.Theme, error) {
	state, err := s.load(ctx, deviceID, ambient)
	if err != nil {
		return "", err
	}

	next, err := state.Toggle()
	if err != nil {
		return "", err
	}
	if err := s.store.Save(ctx, deviceID, next); err != nil {
		s.log.Error().Err(err).Str("device_id", deviceID).Msg("failed to persist theme")
		return "", fmt.Errorf("toggle theme: %w: %w", domain.ErrPersistence, err)
	}
	return next, nil
}

func (s *ThemeService) load(ctx context.Context, deviceID, ambient string) (*domain.ThemeState, error) {
	stored, err := s.store.Load(ctx, deviceID)
	if err != nil {
		s.log.Warn().Err(err).Str("device_id", deviceID).Msg("theme lookup failed, using ambient preference")
		stored = ""
	}

	state := &domain.ThemeState{}
	resolved := state.Init(stored, ambient)
	if string(resolved) != stored {
		if err := s.store.Save(ctx, deviceID, resolved); err != nil {
			s.log.Error().Err(err).Str("device_id", deviceID).Msg("failed to persist theme")
			return nil, fmt.Errorf("init theme: %w: %w", domain.ErrPersistence, err)
		}
	}
	return state, nil
}
