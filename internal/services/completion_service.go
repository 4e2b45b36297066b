package services

import (
	"context"

	"vibecation/internal/models/db_models"
	"vibecation/internal/models/response_models"
	"vibecation/internal/repositories"
	"vibecation/pkg/utils"
)

// ComputeCompletion compares distinct completed users against distinct trip
// members by count, not set equality. A departed member's earlier submission
// therefore still counts toward completion; that looseness is a deliberate
// policy choice, kept because retracting progress when someone leaves would
// deadlock trips mid-phase.
func ComputeCompletion(members, completedUserIDs []string) response_models.CompletionStatus {
	distinctMembers := distinct(members)
	distinctCompleted := distinct(completedUserIDs)

	return response_models.CompletionStatus{
		AllCompleted:     len(distinctCompleted) >= len(distinctMembers),
		TotalMembers:     len(distinctMembers),
		CompletedMembers: len(distinctCompleted),
		CompletedUserIDs: distinctCompleted,
	}
}

func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

type CompletionServiceInterface interface {
	BrainstormStatus(ctx context.Context, tripID string) (*response_models.CompletionStatus, error)
	VotingStatus(ctx context.Context, tripID string) (*response_models.CompletionStatus, error)
	MarkVotingDone(ctx context.Context, tripID, userID string) error
}

type CompletionService struct {
	tripRepo       repositories.TripRepository
	suggestionRepo repositories.SuggestionRepository
	completionRepo repositories.CompletionRepository
}

func NewCompletionService(
	tripRepo repositories.TripRepository,
	suggestionRepo repositories.SuggestionRepository,
	completionRepo repositories.CompletionRepository,
) CompletionServiceInterface {
	return &CompletionService{
		tripRepo:       tripRepo,
		suggestionRepo: suggestionRepo,
		completionRepo: completionRepo,
	}
}

// BrainstormStatus derives completion from submitted suggestions; there is
// no separate "done brainstorming" record.
func (s *CompletionService) BrainstormStatus(ctx context.Context, tripID string) (*response_models.CompletionStatus, error) {
	members, err := s.tripMembers(ctx, tripID)
	if err != nil {
		return nil, err
	}

	submitted, err := s.suggestionRepo.ListSubmittedUserIDs(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	status := ComputeCompletion(members, submitted)
	return &status, nil
}

// VotingStatus is gated on users explicitly marking voting done, which is
// independent of whether they actually cast any votes.
func (s *CompletionService) VotingStatus(ctx context.Context, tripID string) (*response_models.CompletionStatus, error) {
	members, err := s.tripMembers(ctx, tripID)
	if err != nil {
		return nil, err
	}

	finished, err := s.completionRepo.ListCompletedUserIDs(ctx, tripID, db_models.PhaseVoting)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	status := ComputeCompletion(members, finished)
	return &status, nil
}

func (s *CompletionService) MarkVotingDone(ctx context.Context, tripID, userID string) error {
	if tripID == "" || userID == "" {
		return utils.ErrInvalidInput
	}
	if _, err := s.tripMembers(ctx, tripID); err != nil {
		return err
	}
	if err := s.completionRepo.MarkComplete(ctx, tripID, userID, db_models.PhaseVoting); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CompletionService) tripMembers(ctx context.Context, tripID string) ([]string, error) {
	trip, err := s.tripRepo.FindByTripID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip.Members, nil
}
