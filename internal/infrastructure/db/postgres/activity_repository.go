package postgres

import (
	"context"
	"fmt"

	"github.com/99minutos/diary/internal/core/domain"
)

// ActivityRepository appends rows to entry_activity.
type ActivityRepository struct {
	db DBTX
}

func NewActivityRepository(db DBTX) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) InsertActivity(ctx context.Context, a *domain.EntryActivity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `INSERT INTO entry_activity (entry_id, user_id, action, at) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecContext(ctx, query, a.EntryID, a.OwnerID, string(a.Action), a.At); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}
