package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/99minutos/diary/internal/core/domain"
)

const collectionActivity = "entry_activity"

// ActivityRepository appends entry audit records.
type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivity)}
}

func (r *ActivityRepository) InsertActivity(ctx context.Context, a *domain.EntryActivity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, a)
	return err
}
