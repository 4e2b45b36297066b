package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vibecation/internal/models/db_models"
)

type CompletionRepository interface {
	MarkComplete(ctx context.Context, tripID, userID, phase string) error
	ListCompletedUserIDs(ctx context.Context, tripID, phase string) ([]string, error)
}

type completionRepository struct {
	db *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) CompletionRepository {
	return &completionRepository{db: db}
}

// MarkComplete is idempotent: marking done twice leaves one record. A
// concurrent duplicate insert means someone else already marked it, which
// is the desired end state.
func (r *completionRepository) MarkComplete(ctx context.Context, tripID, userID, phase string) error {
	completion := db_models.PhaseCompletion{
		TripID: tripID,
		UserID: userID,
		Phase:  phase,
	}

	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ? AND phase = ?", tripID, userID, phase).
		FirstOrCreate(&completion).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (r *completionRepository) ListCompletedUserIDs(ctx context.Context, tripID, phase string) ([]string, error) {
	var userIDs []string
	err := r.db.WithContext(ctx).
		Model(&db_models.PhaseCompletion{}).
		Where("trip_id = ? AND phase = ?", tripID, phase).
		Distinct().
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, err
	}
	return userIDs, nil
}
