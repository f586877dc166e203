package ports

import (
	"context"

	"github.com/99minutos/diary/internal/core/domain"
)

// EntryRepository defines persistence operations for diary entries. Every
// call is scoped to ownerID; entries of other owners behave as missing.
type EntryRepository interface {
	// List returns the owner's entries ordered by created_at descending.
	List(ctx context.Context, ownerID string) ([]*domain.Entry, error)
	// Get returns domain.ErrEntryNotFound when the entry does not exist for ownerID.
	Get(ctx context.Context, ownerID, id string) (*domain.Entry, error)
	Insert(ctx context.Context, e *domain.Entry) error
	// Update applies patch and returns the stored entry, or domain.ErrEntryNotFound.
	Update(ctx context.Context, ownerID, id string, patch domain.EntryPatch) (*domain.Entry, error)
	// Delete returns domain.ErrEntryNotFound when nothing was removed.
	Delete(ctx context.Context, ownerID, id string) error
}

// ActivityRepository persists the entry audit trail.
type ActivityRepository interface {
	InsertActivity(ctx context.Context, a *domain.EntryActivity) error
}

// ActivityRecorder accepts audit records without blocking the caller.
type ActivityRecorder interface {
	Record(a domain.EntryActivity)
}

// IDGenerator returns a new globally unique entry identifier.
type IDGenerator func() string
