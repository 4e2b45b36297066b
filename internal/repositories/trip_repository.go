package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vibecation/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	FindByTripID(ctx context.Context, tripID string) (*db_models.Trip, error)
	ListTripIDsForUser(ctx context.Context, userID string) ([]string, error)
	AddMember(ctx context.Context, tripID, userID string) error
	Delete(ctx context.Context, tripID string) error

	InsertInvite(ctx context.Context, invite *db_models.InviteCode) error
	FindInvite(ctx context.Context, code string) (*db_models.InviteCode, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) FindByTripID(ctx context.Context, tripID string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).Where("trip_id = ?", tripID).First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListTripIDsForUser(ctx context.Context, userID string) ([]string, error) {
	var tripIDs []string
	err := r.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("owner_id = ? OR ? = ANY(members)", userID, userID).
		Order("created_at asc").
		Pluck("trip_id", &tripIDs).Error
	if err != nil {
		return nil, err
	}
	return tripIDs, nil
}

// AddMember is read-modify-write; concurrent joins are last-write-wins as
// nothing downstream depends on the member list being linearizable.
func (r *tripRepository) AddMember(ctx context.Context, tripID, userID string) error {
	trip, err := r.FindByTripID(ctx, tripID)
	if err != nil {
		return err
	}
	if trip == nil {
		return gorm.ErrRecordNotFound
	}

	for _, m := range trip.Members {
		if m == userID {
			return nil
		}
	}
	trip.Members = append(trip.Members, userID)

	return r.db.WithContext(ctx).Model(trip).Update("members", trip.Members).Error
}

func (r *tripRepository) Delete(ctx context.Context, tripID string) error {
	result := r.db.WithContext(ctx).Where("trip_id = ?", tripID).Delete(&db_models.Trip{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *tripRepository) InsertInvite(ctx context.Context, invite *db_models.InviteCode) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

func (r *tripRepository) FindInvite(ctx context.Context, code string) (*db_models.InviteCode, error) {
	var invite db_models.InviteCode
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&invite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invite, nil
}
