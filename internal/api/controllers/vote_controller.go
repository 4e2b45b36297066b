package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibecation/internal/models/request_models"
	"vibecation/internal/services"
	"vibecation/pkg/utils"
)

type VoteController struct {
	voteService       services.VoteServiceInterface
	pollService       services.PollServiceInterface
	completionService services.CompletionServiceInterface
}

func NewVoteController(
	voteService services.VoteServiceInterface,
	pollService services.PollServiceInterface,
	completionService services.CompletionServiceInterface,
) *VoteController {
	return &VoteController{
		voteService:       voteService,
		pollService:       pollService,
		completionService: completionService,
	}
}

// CastVote godoc
// @Summary Cast, flip or retract a vote
// @Description Casting the same value twice retracts the vote; the response action tells which branch fired
// @Tags Votes
// @Accept json
// @Produce json
// @Param request body request_models.VoteRequest true "Vote payload"
// @Success 200 {object} response_models.CastVoteResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /votes/cast [post]
func (v *VoteController) CastVote(c *gin.Context) {
	var req request_models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "tripID, optionID, voteType and vote are required")
		return
	}

	userID := c.GetString("user_id")

	result, err := v.voteService.CastVote(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Vote "+result.Action)
}

// RemoveAllVotes retracts every vote the caller cast in one category,
// used when a category's picks are replaced in a single client action.
func (v *VoteController) RemoveAllVotes(c *gin.Context) {
	var req request_models.RemoveAllVotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "tripID and voteType are required")
		return
	}

	userID := c.GetString("user_id")

	if err := v.voteService.RemoveAllVotes(c.Request.Context(), userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Votes removed successfully")
}

func (v *VoteController) ListVotes(c *gin.Context) {
	tripID := c.Param("tripId")
	voteType := c.Param("voteType")

	votes, err := v.voteService.ListVotes(c.Request.Context(), tripID, voteType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, votes, "Votes fetched successfully")
}

// GetPollResults godoc
// @Summary Get ranked poll results
// @Description Aggregated upvote/downvote tallies per category, ranked by net score
// @Tags Votes
// @Produce json
// @Success 200 {object} response_models.PollResults
// @Security BearerAuth
// @Router /votes/{tripId}/results [get]
func (v *VoteController) GetPollResults(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	results, err := v.pollService.GetPollResults(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Poll results fetched successfully")
}

func (v *VoteController) GetPollOptions(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	options, err := v.pollService.GetPollOptions(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, options, "Poll options fetched successfully")
}

func (v *VoteController) MarkVotingDone(c *gin.Context) {
	var req request_models.MarkVotingDoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "tripID is required")
		return
	}

	userID := c.GetString("user_id")

	if err := v.completionService.MarkVotingDone(c.Request.Context(), req.TripID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Voting marked as done")
}

func (v *VoteController) GetVotingCompletion(c *gin.Context) {
	tripID := c.Param("tripId")

	status, err := v.completionService.VotingStatus(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "Voting completion fetched successfully")
}
