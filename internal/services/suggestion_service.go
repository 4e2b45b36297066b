package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"vibecation/internal/models/db_models"
	"vibecation/internal/models/request_models"
	"vibecation/internal/models/response_models"
	"vibecation/internal/repositories"
	"vibecation/pkg/utils"
)

type SuggestionServiceInterface interface {
	Brainstorm(ctx context.Context, userID string, request request_models.BrainstormRequest) (*response_models.SuggestionResponse, error)
	Submit(ctx context.Context, userID string, request request_models.SubmitSuggestionRequest) (*response_models.SuggestionResponse, error)
	GetForUser(ctx context.Context, tripID, userID string) (*response_models.SuggestionResponse, error)
	ListSubmitted(ctx context.Context, tripID string) ([]response_models.SuggestionResponse, error)
}

type SuggestionService struct {
	tripRepo       repositories.TripRepository
	suggestionRepo repositories.SuggestionRepository
	normalizer     *ItineraryNormalizer
	aiClient       utils.PlannerAIInterface
}

func NewSuggestionService(
	tripRepo repositories.TripRepository,
	suggestionRepo repositories.SuggestionRepository,
	normalizer *ItineraryNormalizer,
	aiClient utils.PlannerAIInterface,
) SuggestionServiceInterface {
	return &SuggestionService{
		tripRepo:       tripRepo,
		suggestionRepo: suggestionRepo,
		normalizer:     normalizer,
		aiClient:       aiClient,
	}
}

// Brainstorm runs one AI iteration on the caller's draft itinerary. The
// first call generates from the query alone; later calls append the current
// draft so the model iterates instead of starting over. The result replaces
// the caller's draft.
func (s *SuggestionService) Brainstorm(ctx context.Context, userID string, request request_models.BrainstormRequest) (*response_models.SuggestionResponse, error) {
	if userID == "" || strings.TrimSpace(request.Query) == "" {
		return nil, utils.ErrInvalidInput
	}
	if err := s.requireTrip(ctx, request.TripID); err != nil {
		return nil, err
	}

	existing, err := s.suggestionRepo.FindByTripAndUser(ctx, request.TripID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	oldDays, err := repositories.DecodeDays(existing)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	prompt := request.Query
	if len(oldDays) > 0 {
		oldPlanJSON, err := json.Marshal(oldDays)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		prompt = fmt.Sprintf("%s\n\nOld trip\n\n%s", request.Query, oldPlanJSON)
	}

	doc, err := s.aiClient.GenerateTripDocument(ctx, brainstormSystemPrompt(), prompt)
	if err != nil {
		log.Printf("Brainstorm generation failed: %v", err)
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	days := s.normalizer.NormalizeDocument(doc)

	saved, err := s.suggestionRepo.Save(ctx, request.TripID, userID, days, db_models.SuggestionStatusDraft)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.toResponse(saved)
}

// Submit overwrites the caller's suggestion with the supplied days and marks
// it submitted, which counts the user toward brainstorm completion.
func (s *SuggestionService) Submit(ctx context.Context, userID string, request request_models.SubmitSuggestionRequest) (*response_models.SuggestionResponse, error) {
	if userID == "" || len(request.Days) == 0 {
		return nil, utils.ErrInvalidInput
	}
	if err := s.requireTrip(ctx, request.TripID); err != nil {
		return nil, err
	}

	// Re-normalize so hand-edited submissions land in the canonical shape
	// with stable activity identities.
	days := s.normalizer.GroupByDay(s.normalizer.FlattenDays(request.Days))

	saved, err := s.suggestionRepo.Save(ctx, request.TripID, userID, days, db_models.SuggestionStatusSubmitted)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.toResponse(saved)
}

func (s *SuggestionService) GetForUser(ctx context.Context, tripID, userID string) (*response_models.SuggestionResponse, error) {
	suggestion, err := s.suggestionRepo.FindByTripAndUser(ctx, tripID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if suggestion == nil {
		return nil, utils.ErrSuggestionNotFound
	}
	return s.toResponse(suggestion)
}

func (s *SuggestionService) ListSubmitted(ctx context.Context, tripID string) ([]response_models.SuggestionResponse, error) {
	suggestions, err := s.suggestionRepo.ListByTrip(ctx, tripID, db_models.SuggestionStatusSubmitted)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SuggestionResponse, 0, len(suggestions))
	for _, suggestion := range suggestions {
		response, err := s.toResponse(&suggestion)
		if err != nil {
			return nil, err
		}
		out = append(out, *response)
	}
	return out, nil
}

func (s *SuggestionService) requireTrip(ctx context.Context, tripID string) error {
	trip, err := s.tripRepo.FindByTripID(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	return nil
}

func (s *SuggestionService) toResponse(suggestion *db_models.TripSuggestion) (*response_models.SuggestionResponse, error) {
	days, err := repositories.DecodeDays(suggestion)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if days == nil {
		days = []response_models.Day{}
	}
	return &response_models.SuggestionResponse{
		TripID:    suggestion.TripID,
		UserID:    suggestion.UserID,
		Days:      days,
		Status:    suggestion.Status,
		CreatedAt: utils.FormatRFC3339(utils.FromUnixSeconds(suggestion.CreatedAt)),
		UpdatedAt: utils.FormatRFC3339(utils.FromUnixSeconds(suggestion.UpdatedAt)),
	}, nil
}

func brainstormSystemPrompt() string {
	var b strings.Builder
	b.WriteString(mergeSystemPrompt)
	b.WriteString(" Generate a detailed trip itinerary. Return ONLY valid JSON matching this exact schema, no markdown or explanations:\n")
	b.WriteString(tripDocumentSchema)
	b.WriteString("\nUse realistic coordinates, ISO 8601 date-times, a logical day-by-day order, and include travel activities between locations when needed.")
	return b.String()
}
