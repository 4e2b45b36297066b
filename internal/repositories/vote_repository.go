package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vibecation/internal/models/db_models"
	"vibecation/internal/models/response_models"
)

type VoteRepository interface {
	// Cast runs the toggle state machine for one (trip, user, option, type)
	// key: no record creates, an equal record deletes, a differing record
	// updates in place. Returns the action taken and the surviving record
	// (nil when removed).
	Cast(ctx context.Context, vote db_models.Vote) (string, *db_models.Vote, error)
	RemoveAllForUser(ctx context.Context, tripID, userID, voteType string) error
	ListByTripAndType(ctx context.Context, tripID, voteType string) ([]db_models.Vote, error)
}

// voteStore is the minimal persistence surface the toggle state machine
// runs over. Postgres backs it in production; keeping the state machine on
// this seam lets the insert-race recovery be exercised without a database.
type voteStore interface {
	findByKey(ctx context.Context, key db_models.Vote) (*db_models.Vote, error)
	create(ctx context.Context, vote *db_models.Vote) error
	updateValue(ctx context.Context, existing *db_models.Vote, value bool) error
	remove(ctx context.Context, existing *db_models.Vote) error
}

// castVote is the toggle state machine. A lost insert race surfaces as
// gorm.ErrDuplicatedKey: the record exists now, so the cast is retried as
// an update instead of surfacing the conflict.
func castVote(ctx context.Context, store voteStore, vote db_models.Vote) (string, *db_models.Vote, error) {
	existing, err := store.findByKey(ctx, vote)
	if err != nil {
		return "", nil, err
	}

	if existing == nil {
		created := vote
		if err := store.create(ctx, &created); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return updateAfterRace(ctx, store, vote)
			}
			return "", nil, err
		}
		return response_models.VoteActionCreated, &created, nil
	}

	if existing.Vote == vote.Vote {
		if err := store.remove(ctx, existing); err != nil {
			return "", nil, err
		}
		return response_models.VoteActionRemoved, nil, nil
	}

	if err := store.updateValue(ctx, existing, vote.Vote); err != nil {
		return "", nil, err
	}
	return response_models.VoteActionUpdated, existing, nil
}

func updateAfterRace(ctx context.Context, store voteStore, vote db_models.Vote) (string, *db_models.Vote, error) {
	existing, err := store.findByKey(ctx, vote)
	if err != nil {
		return "", nil, err
	}
	if existing == nil {
		// The competing record was retracted between the failed insert and
		// this re-read; the caller can simply cast again.
		return "", nil, gorm.ErrRecordNotFound
	}
	if err := store.updateValue(ctx, existing, vote.Vote); err != nil {
		return "", nil, err
	}
	return response_models.VoteActionUpdated, existing, nil
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) keyQuery(ctx context.Context, v db_models.Vote) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ? AND option_id = ? AND vote_type = ?",
			v.TripID, v.UserID, v.OptionID, v.VoteType)
}

func (r *voteRepository) Cast(ctx context.Context, vote db_models.Vote) (string, *db_models.Vote, error) {
	return castVote(ctx, r, vote)
}

func (r *voteRepository) findByKey(ctx context.Context, key db_models.Vote) (*db_models.Vote, error) {
	var existing db_models.Vote
	err := r.keyQuery(ctx, key).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *voteRepository) create(ctx context.Context, vote *db_models.Vote) error {
	return r.db.WithContext(ctx).Create(vote).Error
}

func (r *voteRepository) updateValue(ctx context.Context, existing *db_models.Vote, value bool) error {
	existing.Vote = value
	return r.db.WithContext(ctx).Model(existing).Update("vote", value).Error
}

func (r *voteRepository) remove(ctx context.Context, existing *db_models.Vote) error {
	// Hard delete: a soft-deleted row would keep holding the unique key
	// and block the next cast.
	return r.db.WithContext(ctx).Unscoped().Delete(existing).Error
}

func (r *voteRepository) RemoveAllForUser(ctx context.Context, tripID, userID, voteType string) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("trip_id = ? AND user_id = ? AND vote_type = ?", tripID, userID, voteType).
		Delete(&db_models.Vote{}).Error
}

func (r *voteRepository) ListByTripAndType(ctx context.Context, tripID, voteType string) ([]db_models.Vote, error) {
	var votes []db_models.Vote
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND vote_type = ?", tripID, voteType).
		Order("created_at asc").
		Find(&votes).Error
	if err != nil {
		return nil, err
	}
	return votes, nil
}
