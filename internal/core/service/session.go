package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/99minutos/diary/internal/core/domain"
	"github.com/99minutos/diary/internal/core/ports"
)

// RequireSession resolves the current principal exactly once. Any lookup
// failure is logged and reported as domain.ErrAuthRequired; callers must
// stop before doing protected work.
func RequireSession(ctx context.Context, sessions ports.SessionProvider, log zerolog.Logger) (*domain.Principal, error) {
	principal, err := sessions.CurrentPrincipal(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("session lookup failed")
		return nil, fmt.Errorf("require session: %w", domain.ErrAuthRequired)
	}
	if principal == nil || principal.ID == "" {
		log.Debug().Msg("no active session")
		return nil, domain.ErrAuthRequired
	}
	return principal, nil
}

// WithSession runs action with the resolved principal. action is never
// called when the guard fails.
func WithSession[T any](
	ctx context.Context,
	sessions ports.SessionProvider,
	log zerolog.Logger,
	action func(ctx context.Context, principal domain.Principal) (T, error),
) (T, error) {
	principal, err := RequireSession(ctx, sessions, log)
	if err != nil {
		var zero T
		return zero, err
	}
	return action(ctx, *principal)
}
