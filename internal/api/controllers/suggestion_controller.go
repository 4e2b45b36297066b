package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibecation/internal/models/request_models"
	"vibecation/internal/services"
	"vibecation/pkg/utils"
)

type SuggestionController struct {
	suggestionService services.SuggestionServiceInterface
	completionService services.CompletionServiceInterface
}

func NewSuggestionController(
	suggestionService services.SuggestionServiceInterface,
	completionService services.CompletionServiceInterface,
) *SuggestionController {
	return &SuggestionController{
		suggestionService: suggestionService,
		completionService: completionService,
	}
}

// Brainstorm godoc
// @Summary Generate or refine a draft itinerary
// @Description Sends the free-text query (plus the caller's existing draft, if any) to the planner model and stores the result as a draft suggestion
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param request body request_models.BrainstormRequest true "Brainstorm payload"
// @Success 200 {object} response_models.SuggestionResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /suggestions/brainstorm [post]
func (s *SuggestionController) Brainstorm(c *gin.Context) {
	var req request_models.BrainstormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "tripID and query are required")
		return
	}

	userID := c.GetString("user_id")

	suggestion, err := s.suggestionService.Brainstorm(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestion, "Draft itinerary generated")
}

// Submit godoc
// @Summary Submit a day-grouped itinerary suggestion
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param request body request_models.SubmitSuggestionRequest true "Submission payload"
// @Success 200 {object} response_models.SuggestionResponse
// @Security BearerAuth
// @Router /suggestions/submit [post]
func (s *SuggestionController) Submit(c *gin.Context) {
	var req request_models.SubmitSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "tripID and days are required")
		return
	}

	userID := c.GetString("user_id")

	suggestion, err := s.suggestionService.Submit(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestion, "Suggestion submitted successfully")
}

func (s *SuggestionController) GetMine(c *gin.Context) {
	tripID := c.Param("tripId")
	userID := c.GetString("user_id")

	suggestion, err := s.suggestionService.GetForUser(c.Request.Context(), tripID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestion, "Suggestion fetched successfully")
}

func (s *SuggestionController) ListSubmitted(c *gin.Context) {
	tripID := c.Param("tripId")

	suggestions, err := s.suggestionService.ListSubmitted(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, suggestions, "Submitted suggestions fetched successfully")
}

func (s *SuggestionController) GetBrainstormCompletion(c *gin.Context) {
	tripID := c.Param("tripId")

	status, err := s.completionService.BrainstormStatus(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, status, "Brainstorm completion fetched successfully")
}
