package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"vibecation/internal/models/db_models"
	"vibecation/internal/models/response_models"
)

type FinalPlanRepository interface {
	Upsert(ctx context.Context, tripID string, days []response_models.Day, summary string) error
	FindByTripID(ctx context.Context, tripID string) (*response_models.FinalPlanResponse, error)
}

type finalPlanRepository struct {
	db *gorm.DB
}

func NewFinalPlanRepository(db *gorm.DB) FinalPlanRepository {
	return &finalPlanRepository{db: db}
}

func (r *finalPlanRepository) Upsert(ctx context.Context, tripID string, days []response_models.Day, summary string) error {
	daysJSON, err := json.Marshal(days)
	if err != nil {
		return err
	}

	var existing db_models.FinalPlan
	err = r.db.WithContext(ctx).Where("trip_id = ?", tripID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		plan := db_models.FinalPlan{
			TripID:      tripID,
			DaysJSON:    daysJSON,
			TripSummary: summary,
		}
		return r.db.WithContext(ctx).Create(&plan).Error
	}
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&existing).
		Updates(map[string]interface{}{"days_json": daysJSON, "trip_summary": summary}).Error
}

func (r *finalPlanRepository) FindByTripID(ctx context.Context, tripID string) (*response_models.FinalPlanResponse, error) {
	var plan db_models.FinalPlan
	err := r.db.WithContext(ctx).Where("trip_id = ?", tripID).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var days []response_models.Day
	if len(plan.DaysJSON) > 0 {
		if err := json.Unmarshal(plan.DaysJSON, &days); err != nil {
			return nil, err
		}
	}

	return &response_models.FinalPlanResponse{
		TripID:      plan.TripID,
		Days:        days,
		TripSummary: plan.TripSummary,
	}, nil
}
