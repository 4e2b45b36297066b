package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"vibecation/internal/models/db_models"
	"vibecation/internal/models/response_models"
	"vibecation/internal/repositories"
	"vibecation/pkg/memcache"
	"vibecation/pkg/utils"
)

const (
	mergedPlanSummary   = "Final plan created by merging multiple suggestions and incorporating poll results."
	emptyPlanSummary    = "Unable to generate final plan."
	finalPlanCacheTTL   = time.Hour
	mergeSystemPrompt   = "You are a helpful assistant and an expert trip planner."
	tripDocumentSchema  = `{"trip_name": "string", "trip_id": "string", "activities": [{"activity_id": "string", "activity_name": "string", "type": "attraction|travel|food|entertainment|accommodation", "description": "string", "from_date_time": "YYYY-MM-DDTHH:MM:SSZ", "to_date_time": "YYYY-MM-DDTHH:MM:SSZ", "location": "string", "start_location": "string", "end_location": "string", "start_lat": 0.0, "start_lon": 0.0, "end_lat": 0.0, "end_lon": 0.0, "activities": []}], "trip_summary": "string"}`
)

type PlannerServiceInterface interface {
	FinalizeTrip(ctx context.Context, tripID string) (*response_models.FinalPlanResponse, error)
	GetFinalPlan(ctx context.Context, tripID string) (*response_models.FinalPlanResponse, error)
}

type PlannerService struct {
	tripRepo       repositories.TripRepository
	suggestionRepo repositories.SuggestionRepository
	finalPlanRepo  repositories.FinalPlanRepository
	pollService    PollServiceInterface
	normalizer     *ItineraryNormalizer
	aiClient       utils.PlannerAIInterface
	planCache      memcache.FinalPlanCache
}

func NewPlannerService(
	tripRepo repositories.TripRepository,
	suggestionRepo repositories.SuggestionRepository,
	finalPlanRepo repositories.FinalPlanRepository,
	pollService PollServiceInterface,
	normalizer *ItineraryNormalizer,
	aiClient utils.PlannerAIInterface,
	planCache memcache.FinalPlanCache,
) PlannerServiceInterface {
	return &PlannerService{
		tripRepo:       tripRepo,
		suggestionRepo: suggestionRepo,
		finalPlanRepo:  finalPlanRepo,
		pollService:    pollService,
		normalizer:     normalizer,
		aiClient:       aiClient,
		planCache:      planCache,
	}
}

// FinalizeTrip merges all submitted suggestions plus the current poll
// rankings into one final plan, persists it and refreshes the cache. The
// merge itself never errors; only missing inputs do.
func (s *PlannerService) FinalizeTrip(ctx context.Context, tripID string) (*response_models.FinalPlanResponse, error) {
	trip, err := s.tripRepo.FindByTripID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	suggestions, err := s.suggestionRepo.ListByTrip(ctx, tripID, db_models.SuggestionStatusSubmitted)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	submissions := make([][]response_models.Day, 0, len(suggestions))
	for _, suggestion := range suggestions {
		days, err := repositories.DecodeDays(&suggestion)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		submissions = append(submissions, days)
	}
	if len(submissions) == 0 {
		return nil, utils.ErrSuggestionNotFound
	}

	pollResults, err := s.pollService.GetPollResults(ctx, tripID)
	if err != nil {
		return nil, err
	}

	days, summary := s.mergePlans(ctx, submissions, pollResults)

	plan := response_models.FinalPlanResponse{
		TripID:      tripID,
		Days:        days,
		TripSummary: summary,
	}

	if err := s.finalPlanRepo.Upsert(ctx, tripID, days, summary); err != nil {
		return nil, utils.ErrDatabaseError
	}
	s.planCache.Set(tripID, plan, finalPlanCacheTTL)

	return &plan, nil
}

func (s *PlannerService) GetFinalPlan(ctx context.Context, tripID string) (*response_models.FinalPlanResponse, error) {
	if cached, ok := s.planCache.Get(tripID); ok {
		return &cached, nil
	}

	plan, err := s.finalPlanRepo.FindByTripID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	s.planCache.Set(tripID, *plan, finalPlanCacheTTL)
	return plan, nil
}

// mergePlans asks the AI collaborator for one merged itinerary and pipes the
// result through the normalizer. Any failure falls back to the first
// non-empty submission, unmerged; the fallback path never raises.
func (s *PlannerService) mergePlans(ctx context.Context, submissions [][]response_models.Day, pollResults *response_models.PollResults) ([]response_models.Day, string) {
	doc, err := s.aiClient.GenerateTripDocument(ctx, buildMergeSystemPrompt(), buildMergePrompt(submissions, pollResults))
	if err == nil {
		days := s.normalizer.NormalizeDocument(doc)
		if len(days) > 0 {
			summary := doc.TripSummary
			if summary == "" {
				summary = mergedPlanSummary
			}
			return days, summary
		}
		err = fmt.Errorf("merged document normalized to zero days")
	}

	log.Printf("Plan merge degraded to fallback: %v", err)

	for _, submission := range submissions {
		if len(submission) > 0 {
			return submission, mergedPlanSummary
		}
	}
	return []response_models.Day{}, emptyPlanSummary
}

func buildMergeSystemPrompt() string {
	var b strings.Builder
	b.WriteString(mergeSystemPrompt)
	b.WriteString(" Return ONLY valid JSON matching this exact schema, no markdown or explanations:\n")
	b.WriteString(tripDocumentSchema)
	b.WriteString("\nActivities can be nested (the activities field may contain sub-activities). Use ISO 8601 date-times and keep each activity on the day it was suggested for.")
	return b.String()
}

func buildMergePrompt(submissions [][]response_models.Day, pollResults *response_models.PollResults) string {
	var b strings.Builder
	b.WriteString("Merge the following member itineraries into a single cohesive trip plan. ")
	b.WriteString("Prefer activities, locations and cuisines with a higher net vote score. ")
	b.WriteString("Write a trip_summary describing the combined plan.\n")

	for i, submission := range submissions {
		serialized, err := json.Marshal(submission)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "\nSubmission %d:\n%s\n", i+1, serialized)
	}

	b.WriteString("\nPoll results (net score = upvotes - downvotes):\n")
	writeRankings(&b, "Activities", pollResults.Activities)
	writeRankings(&b, "Locations", pollResults.Locations)
	writeRankings(&b, "Cuisines", pollResults.Cuisines)

	return b.String()
}

func writeRankings(b *strings.Builder, label string, aggregates []response_models.OptionAggregate) {
	fmt.Fprintf(b, "%s:\n", label)
	if len(aggregates) == 0 {
		b.WriteString("- no votes\n")
		return
	}
	for _, agg := range aggregates {
		fmt.Fprintf(b, "- %s: net %+d (%d up / %d down)\n", agg.OptionID, agg.NetScore, agg.Upvotes, agg.Downvotes)
	}
}
