package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibecation/internal/services"
	"vibecation/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{plannerService: plannerService}
}

// FinalizeTrip godoc
// @Summary Merge submitted suggestions into the final plan
// @Description Combines every submitted itinerary with the poll results; falls back to the first submission when the planner model cannot produce a usable merge
// @Tags Planner
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.FinalPlanResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /planner/{tripId}/finalize [post]
func (p *PlannerController) FinalizeTrip(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	plan, err := p.plannerService.FinalizeTrip(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Final plan created successfully")
}

func (p *PlannerController) GetFinalPlan(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	plan, err := p.plannerService.GetFinalPlan(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Final plan fetched successfully")
}
