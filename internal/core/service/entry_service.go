package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/diary/internal/core/domain"
	"github.com/99minutos/diary/internal/core/ports"
)

// EntryService runs the entry workflows. Each public method passes the
// session guard first and then makes a single repository call.
type EntryService struct {
	repo     ports.EntryRepository
	sessions ports.SessionProvider
	activity ports.ActivityRecorder
	newID    ports.IDGenerator
	now      func() time.Time
	log      zerolog.Logger
}

// EntryOption customises an EntryService.
type EntryOption func(*EntryService)

// WithIDGenerator replaces the default uuid generator.
func WithIDGenerator(gen ports.IDGenerator) EntryOption {
	return func(s *EntryService) { s.newID = gen }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) EntryOption {
	return func(s *EntryService) { s.now = now }
}

// WithActivityRecorder enables the audit trail.
func WithActivityRecorder(r ports.ActivityRecorder) EntryOption {
	return func(s *EntryService) { s.activity = r }
}

func NewEntryService(repo ports.EntryRepository, sessions ports.SessionProvider, log zerolog.Logger, opts ...EntryOption) *EntryService {
	s := &EntryService{
		repo:     repo,
		sessions: sessions,
		newID:    uuid.NewString,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Principal passes the session guard without touching storage.
func (s *EntryService) Principal(ctx context.Context) (*domain.Principal, error) {
	return RequireSession(ctx, s.sessions, s.log)
}

// List returns the principal's entries, newest first. A failed fetch is
// logged and reported through LoadFailed with an empty list.
func (s *EntryService) List(ctx context.Context) (*ports.EntryListResult, error) {
	return WithSession(ctx, s.sessions, s.log, func(ctx context.Context, p domain.Principal) (*ports.EntryListResult, error) {
		entries, err := s.repo.List(ctx, p.ID)
		if err != nil {
			s.log.Error().Err(err).Str("user_id", p.ID).Msg("failed to list entries")
			return &ports.EntryListResult{Principal: p, Entries: []*domain.Entry{}, LoadFailed: true}, nil
		}
		if entries == nil {
			entries = []*domain.Entry{}
		}
		return &ports.EntryListResult{Principal: p, Entries: entries}, nil
	})
}

// Create validates the input and inserts a new entry with a freshly
// generated ID. Invalid input never reaches the repository. Validation and
// persistence failures still carry the principal so the form can be shown
// again to the signed-in user.
func (s *EntryService) Create(ctx context.Context, in domain.EntryInput) (*ports.EntryResult, error) {
	return WithSession(ctx, s.sessions, s.log, func(ctx context.Context, p domain.Principal) (*ports.EntryResult, error) {
		clean, err := domain.ValidateEntryInput(in)
		if err != nil {
			return &ports.EntryResult{Principal: p}, err
		}

		now := s.now()
		entry := &domain.Entry{
			ID:        s.newID(),
			OwnerID:   p.ID,
			Title:     clean.Title,
			Body:      clean.Body,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := s.repo.Insert(ctx, entry); err != nil {
			s.log.Error().Err(err).Str("user_id", p.ID).Msg("failed to create entry")
			return &ports.EntryResult{Principal: p}, fmt.Errorf("create entry: %w: %w", domain.ErrPersistence, err)
		}

		s.record(entry.ID, p.ID, domain.ActivityCreated, now)
		s.log.Info().Str("entry_id", entry.ID).Str("user_id", p.ID).Msg("entry created")
		return &ports.EntryResult{Principal: p, Entry: entry}, nil
	})
}

// Get fetches a single entry of the principal.
func (s *EntryService) Get(ctx context.Context, id string) (*ports.EntryResult, error) {
	return WithSession(ctx, s.sessions, s.log, func(ctx context.Context, p domain.Principal) (*ports.EntryResult, error) {
		entry, err := s.fetch(ctx, p.ID, id)
		if err != nil {
			return nil, err
		}
		return &ports.EntryResult{Principal: p, Entry: entry}, nil
	})
}

// Update replaces title and body and refreshes updated_at. created_at, id
// and owner are left untouched. Failures other than a missing entry carry
// the principal, like Create.
func (s *EntryService) Update(ctx context.Context, id string, in domain.EntryInput) (*ports.EntryResult, error) {
	return WithSession(ctx, s.sessions, s.log, func(ctx context.Context, p domain.Principal) (*ports.EntryResult, error) {
		clean, err := domain.ValidateEntryInput(in)
		if err != nil {
			return &ports.EntryResult{Principal: p}, err
		}

		now := s.now()
		updated, err := s.repo.Update(ctx, p.ID, id, domain.EntryPatch{
			Title:     clean.Title,
			Body:      clean.Body,
			UpdatedAt: now,
		})
		if err != nil {
			if errors.Is(err, domain.ErrEntryNotFound) {
				return nil, fmt.Errorf("update entry %s: %w", id, domain.ErrEntryNotFound)
			}
			s.log.Error().Err(err).Str("entry_id", id).Msg("failed to update entry")
			return &ports.EntryResult{Principal: p}, fmt.Errorf("update entry: %w: %w", domain.ErrPersistence, err)
		}

		s.record(id, p.ID, domain.ActivityUpdated, now)
		s.log.Info().Str("entry_id", id).Str("user_id", p.ID).Msg("entry updated")
		return &ports.EntryResult{Principal: p, Entry: updated}, nil
	})
}

// ConfirmDelete loads the entry so the confirmation can name it.
func (s *EntryService) ConfirmDelete(ctx context.Context, id string) (*ports.DeleteConfirmation, error) {
	return WithSession(ctx, s.sessions, s.log, func(ctx context.Context, p domain.Principal) (*ports.DeleteConfirmation, error) {
		entry, err := s.fetch(ctx, p.ID, id)
		if err != nil {
			return nil, err
		}
		return &ports.DeleteConfirmation{EntryID: entry.ID, Title: entry.Title}, nil
	})
}

// Delete removes the entry once the caller has confirmed. Without
// confirmation nothing is deleted and the confirmation is returned.
func (s *EntryService) Delete(ctx context.Context, id string, confirmed bool) (*ports.DeleteConfirmation, error) {
	if !confirmed {
		conf, err := s.ConfirmDelete(ctx, id)
		if err != nil {
			return nil, err
		}
		return conf, domain.ErrConfirmationRequired
	}

	return WithSession(ctx, s.sessions, s.log, func(ctx context.Context, p domain.Principal) (*ports.DeleteConfirmation, error) {
		if err := s.repo.Delete(ctx, p.ID, id); err != nil {
			if errors.Is(err, domain.ErrEntryNotFound) {
				return nil, fmt.Errorf("delete entry %s: %w", id, domain.ErrEntryNotFound)
			}
			s.log.Error().Err(err).Str("entry_id", id).Msg("failed to delete entry")
			return nil, fmt.Errorf("delete entry: %w: %w", domain.ErrPersistence, err)
		}

		s.record(id, p.ID, domain.ActivityDeleted, s.now())
		s.log.Info().Str("entry_id", id).Str("user_id", p.ID).Msg("entry deleted")
		return &ports.DeleteConfirmation{EntryID: id}, nil
	})
}

// Preview renders the form as typed. It never persists anything.
func (s *EntryService) Preview(ctx context.Context, in domain.EntryInput) (*ports.PreviewResult, error) {
	return WithSession(ctx, s.sessions, s.log, func(_ context.Context, p domain.Principal) (*ports.PreviewResult, error) {
		return &ports.PreviewResult{Principal: p, Preview: domain.NewPreview(in)}, nil
	})
}

func (s *EntryService) fetch(ctx context.Context, ownerID, id string) (*domain.Entry, error) {
	entry, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		if !errors.Is(err, domain.ErrEntryNotFound) {
			s.log.Error().Err(err).Str("entry_id", id).Msg("failed to fetch entry")
		}
		return nil, fmt.Errorf("get entry %s: %w", id, domain.ErrEntryNotFound)
	}
	return entry, nil
}

func (s *EntryService) record(entryID, ownerID string, action domain.ActivityAction, at time.Time) {
	if s.activity == nil {
		return
	}
	s.activity.Record(domain.EntryActivity{EntryID: entryID, OwnerID: ownerID, Action: action, At: at})
}
