package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"vibecation/internal/models/db_models"
	"vibecation/internal/models/request_models"
	"vibecation/internal/models/response_models"
	"vibecation/internal/repositories"
	"vibecation/pkg/memcache"
	"vibecation/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, ownerID string, request request_models.CreateTripRequest) (*response_models.TripResponse, error)
	GetTripInfo(ctx context.Context, tripID string) (*response_models.TripInfoResponse, error)
	GetDashboard(ctx context.Context, userID string) (*response_models.DashboardResponse, error)
	DeleteTrip(ctx context.Context, tripID string) error
	CreateInvite(ctx context.Context, tripID string) (*response_models.InviteResponse, error)
	JoinTrip(ctx context.Context, userID string, request request_models.JoinTripRequest) (*response_models.TripInfoResponse, error)
}

type TripService struct {
	tripRepo  repositories.TripRepository
	planCache memcache.FinalPlanCache
}

func NewTripService(tripRepo repositories.TripRepository, planCache memcache.FinalPlanCache) TripServiceInterface {
	return &TripService{
		tripRepo:  tripRepo,
		planCache: planCache,
	}
}

func (t *TripService) CreateTrip(ctx context.Context, ownerID string, request request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	if ownerID == "" || request.Title == "" {
		return nil, utils.ErrInvalidInput
	}

	// The owner is always a member, whatever the request says.
	members := distinct(append([]string{ownerID}, request.Members...))

	trip := db_models.Trip{
		TripID:      uuid.NewString(),
		Title:       request.Title,
		Description: request.Description,
		OwnerID:     ownerID,
		Members:     members,
		Status:      "planning",
	}

	if err := t.tripRepo.Insert(ctx, &trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return tripResponse(&trip), nil
}

func (t *TripService) GetTripInfo(ctx context.Context, tripID string) (*response_models.TripInfoResponse, error) {
	trip, err := t.tripRepo.FindByTripID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	return &response_models.TripInfoResponse{
		Title:       trip.Title,
		Members:     trip.Members,
		Description: trip.Description,
	}, nil
}

func (t *TripService) GetDashboard(ctx context.Context, userID string) (*response_models.DashboardResponse, error) {
	tripIDs, err := t.tripRepo.ListTripIDsForUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if tripIDs == nil {
		tripIDs = []string{}
	}
	return &response_models.DashboardResponse{YourTrips: tripIDs}, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, tripID string) error {
	if err := t.tripRepo.Delete(ctx, tripID); err != nil {
		log.Printf("Delete trip %s failed: %v", tripID, err)
		return utils.ErrTripNotFound
	}
	t.planCache.Invalidate(tripID)
	return nil
}

func (t *TripService) CreateInvite(ctx context.Context, tripID string) (*response_models.InviteResponse, error) {
	trip, err := t.tripRepo.FindByTripID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	code, err := utils.GenerateInviteCode(4)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	invite := db_models.InviteCode{
		Code:   code,
		TripID: tripID,
	}
	if err := t.tripRepo.InsertInvite(ctx, &invite); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.InviteResponse{
		TripID:     tripID,
		InviteCode: code,
	}, nil
}

func (t *TripService) JoinTrip(ctx context.Context, userID string, request request_models.JoinTripRequest) (*response_models.TripInfoResponse, error) {
	if userID == "" {
		return nil, utils.ErrInvalidInput
	}

	invite, err := t.tripRepo.FindInvite(ctx, request.InviteCode)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if invite == nil {
		return nil, utils.ErrInviteNotFound
	}

	if err := t.tripRepo.AddMember(ctx, invite.TripID, userID); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return t.GetTripInfo(ctx, invite.TripID)
}

func tripResponse(trip *db_models.Trip) *response_models.TripResponse {
	return &response_models.TripResponse{
		TripID:      trip.TripID,
		Title:       trip.Title,
		Description: trip.Description,
		OwnerID:     trip.OwnerID,
		Members:     trip.Members,
		Status:      trip.Status,
		CreatedAt:   utils.FormatRFC3339(utils.FromUnixSeconds(trip.CreatedAt)),
		UpdatedAt:   utils.FormatRFC3339(utils.FromUnixSeconds(trip.UpdatedAt)),
	}
}
