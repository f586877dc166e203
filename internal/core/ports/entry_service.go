package ports

import (
	"context"

	"github.com/99minutos/diary/internal/core/domain"
)

// EntryListResult is the dashboard content. LoadFailed distinguishes a
// failed fetch from a genuinely empty diary.
type EntryListResult struct {
	Principal  domain.Principal
	Entries    []*domain.Entry
	LoadFailed bool
}

// EntryResult is a single entry together with the viewer.
type EntryResult struct {
	Principal domain.Principal
	Entry     *domain.Entry
}

// PreviewResult is the live preview of a form.
type PreviewResult struct {
	Principal domain.Principal
	Preview   domain.Preview
}

// DeleteConfirmation names the entry a delete would remove.
type DeleteConfirmation struct {
	EntryID string
	Title   string
}

// EntryService defines the session-gated entry workflows. Every method
// fails with domain.ErrAuthRequired before touching storage when there is
// no session.
type EntryService interface {
	Principal(ctx context.Context) (*domain.Principal, error)
	List(ctx context.Context) (*EntryListResult, error)
	// Create and Update return a result holding only the principal alongside
	// validation and persistence errors.
	Create(ctx context.Context, in domain.EntryInput) (*EntryResult, error)
	Get(ctx context.Context, id string) (*EntryResult, error)
	Update(ctx context.Context, id string, in domain.EntryInput) (*EntryResult, error)
	ConfirmDelete(ctx context.Context, id string) (*DeleteConfirmation, error)
	// Delete removes the entry only when confirmed is true; otherwise it
	// returns the confirmation with domain.ErrConfirmationRequired.
	Delete(ctx context.Context, id string, confirmed bool) (*DeleteConfirmation, error)
	Preview(ctx context.Context, in domain.EntryInput) (*PreviewResult, error)
}
