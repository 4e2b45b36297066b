package services

import (
	"context"

	"vibecation/internal/models/db_models"
	"vibecation/internal/models/request_models"
	"vibecation/internal/models/response_models"
	"vibecation/internal/repositories"
	"vibecation/pkg/utils"
)

type VoteServiceInterface interface {
	CastVote(ctx context.Context, userID string, request request_models.VoteRequest) (*response_models.CastVoteResponse, error)
	RemoveAllVotes(ctx context.Context, userID string, request request_models.RemoveAllVotesRequest) error
	ListVotes(ctx context.Context, tripID, voteType string) ([]response_models.VoteView, error)
}

type VoteService struct {
	voteRepo repositories.VoteRepository
}

func NewVoteService(voteRepo repositories.VoteRepository) VoteServiceInterface {
	return &VoteService{
		voteRepo: voteRepo,
	}
}

func (v *VoteService) CastVote(ctx context.Context, userID string, request request_models.VoteRequest) (*response_models.CastVoteResponse, error) {
	if request.TripID == "" || request.OptionID == "" || userID == "" || request.Value == nil {
		return nil, utils.ErrInvalidInput
	}
	if !db_models.IsValidVoteType(request.VoteType) {
		return nil, utils.ErrInvalidVoteType
	}

	action, record, err := v.voteRepo.Cast(ctx, db_models.Vote{
		TripID:   request.TripID,
		UserID:   userID,
		OptionID: request.OptionID,
		VoteType: request.VoteType,
		Vote:     *request.Value,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := &response_models.CastVoteResponse{Action: action}
	if record != nil {
		view := voteView(*record)
		response.Vote = &view
	}
	return response, nil
}

func (v *VoteService) RemoveAllVotes(ctx context.Context, userID string, request request_models.RemoveAllVotesRequest) error {
	if request.TripID == "" || userID == "" {
		return utils.ErrInvalidInput
	}
	if !db_models.IsValidVoteType(request.VoteType) {
		return utils.ErrInvalidVoteType
	}

	if err := v.voteRepo.RemoveAllForUser(ctx, request.TripID, userID, request.VoteType); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (v *VoteService) ListVotes(ctx context.Context, tripID, voteType string) ([]response_models.VoteView, error) {
	if tripID == "" {
		return nil, utils.ErrInvalidInput
	}
	if !db_models.IsValidVoteType(voteType) {
		return nil, utils.ErrInvalidVoteType
	}

	votes, err := v.voteRepo.ListByTripAndType(ctx, tripID, voteType)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.VoteView, 0, len(votes))
	for _, vote := range votes {
		out = append(out, voteView(vote))
	}
	return out, nil
}

func voteView(vote db_models.Vote) response_models.VoteView {
	return response_models.VoteView{
		TripID:   vote.TripID,
		UserID:   vote.UserID,
		OptionID: vote.OptionID,
		VoteType: vote.VoteType,
		Vote:     vote.Vote,
	}
}
