package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/99minutos/diary/internal/core/domain"
)

const entryColumns = `id, user_id, title, content, created_at, updated_at`

// EntryRepository implements ports.EntryRepository over the diaries table.
type EntryRepository struct {
	db DBTX
}

func NewEntryRepository(db DBTX) *EntryRepository {
	return &EntryRepository{db: db}
}

func (r *EntryRepository) List(ctx context.Context, ownerID string) ([]*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `SELECT ` + entryColumns + ` FROM diaries WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.Entry, 0)
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Title, &e.Body, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

func (r *EntryRepository) Get(ctx context.Context, ownerID, id string) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `SELECT ` + entryColumns + ` FROM diaries WHERE id = $1 AND user_id = $2`
	return scanEntry(r.db.QueryRowContext(ctx, query, id, ownerID))
}

func (r *EntryRepository) Insert(ctx context.Context, e *domain.Entry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `INSERT INTO diaries (` + entryColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.ExecContext(ctx, query, e.ID, e.OwnerID, e.Title, e.Body, e.CreatedAt, e.UpdatedAt); err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// Update writes the patch in one statement. GREATEST keeps updated_at from
// falling behind created_at.
func (r *EntryRepository) Update(ctx context.Context, ownerID, id string, patch domain.EntryPatch) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `UPDATE diaries SET title = $1, content = $2, updated_at = GREATEST(created_at, $3)
		WHERE id = $4 AND user_id = $5
		RETURNING ` + entryColumns
	return scanEntry(r.db.QueryRowContext(ctx, query, patch.Title, patch.Body, patch.UpdatedAt, id, ownerID))
}

func (r *EntryRepository) Delete(ctx context.Context, ownerID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM diaries WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func scanEntry(row *sql.Row) (*domain.Entry, error) {
	var e domain.Entry
	if err := row.Scan(&e.ID, &e.OwnerID, &e.Title, &e.Body, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("scan entry: %w", err)
	}
	return &e, nil
}
