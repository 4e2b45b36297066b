package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"vibecation/internal/models/db_models"
	"vibecation/internal/models/response_models"
)

type SuggestionRepository interface {
	Save(ctx context.Context, tripID, userID string, days []response_models.Day, status string) (*db_models.TripSuggestion, error)
	FindByTripAndUser(ctx context.Context, tripID, userID string) (*db_models.TripSuggestion, error)
	ListByTrip(ctx context.Context, tripID, status string) ([]db_models.TripSuggestion, error)
	ListSubmittedUserIDs(ctx context.Context, tripID string) ([]string, error)
}

type suggestionRepository struct {
	db *gorm.DB
}

func NewSuggestionRepository(db *gorm.DB) SuggestionRepository {
	return &suggestionRepository{db: db}
}

// Save upserts the caller's suggestion; re-submitting overwrites the
// previous days wholesale. Concurrent saves by the same user are
// last-write-wins, no invariant depends on stricter ordering here.
func (r *suggestionRepository) Save(ctx context.Context, tripID, userID string, days []response_models.Day, status string) (*db_models.TripSuggestion, error) {
	daysJSON, err := json.Marshal(days)
	if err != nil {
		return nil, err
	}

	existing, err := r.FindByTripAndUser(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		suggestion := db_models.TripSuggestion{
			TripID:   tripID,
			UserID:   userID,
			DaysJSON: daysJSON,
			Status:   status,
		}
		if err := r.db.WithContext(ctx).Create(&suggestion).Error; err != nil {
			return nil, err
		}
		return &suggestion, nil
	}

	existing.DaysJSON = daysJSON
	existing.Status = status
	if err := r.db.WithContext(ctx).Model(existing).
		Updates(map[string]interface{}{"days_json": daysJSON, "status": status}).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *suggestionRepository) FindByTripAndUser(ctx context.Context, tripID, userID string) (*db_models.TripSuggestion, error) {
	var suggestion db_models.TripSuggestion
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		First(&suggestion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &suggestion, nil
}

func (r *suggestionRepository) ListByTrip(ctx context.Context, tripID, status string) ([]db_models.TripSuggestion, error) {
	var suggestions []db_models.TripSuggestion
	query := r.db.WithContext(ctx).Where("trip_id = ?", tripID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at asc").Find(&suggestions).Error; err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (r *suggestionRepository) ListSubmittedUserIDs(ctx context.Context, tripID string) ([]string, error) {
	var userIDs []string
	err := r.db.WithContext(ctx).
		Model(&db_models.TripSuggestion{}).
		Where("trip_id = ? AND status = ?", tripID, db_models.SuggestionStatusSubmitted).
		Distinct().
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, err
	}
	return userIDs, nil
}

// DecodeDays unpacks the stored day document of a suggestion.
func DecodeDays(s *db_models.TripSuggestion) ([]response_models.Day, error) {
	if s == nil || len(s.DaysJSON) == 0 {
		return nil, nil
	}
	var days []response_models.Day
	if err := json.Unmarshal(s.DaysJSON, &days); err != nil {
		return nil, err
	}
	return days, nil
}
