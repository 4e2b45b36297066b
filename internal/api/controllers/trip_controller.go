package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibecation/internal/models/request_models"
	"vibecation/internal/services"
	"vibecation/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{tripService: tripService}
}

// CreateTrip godoc
// @Summary Create a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 200 {object} response_models.TripResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "name is required")
		return
	}

	userID := c.GetString("user_id")

	trip, err := t.tripService.CreateTrip(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip created successfully")
}

func (t *TripController) GetTripInfo(c *gin.Context) {
	tripID := c.Param("tripId")

	info, err := t.tripService.GetTripInfo(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, info, "Trip fetched successfully")
}

func (t *TripController) GetDashboard(c *gin.Context) {
	userID := c.GetString("user_id")

	dashboard, err := t.tripService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dashboard, "Dashboard fetched successfully")
}

func (t *TripController) DeleteTrip(c *gin.Context) {
	tripID := c.Param("tripId")

	if err := t.tripService.DeleteTrip(c.Request.Context(), tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// CreateInvite godoc
// @Summary Create an invite code for a trip
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.InviteResponse
// @Security BearerAuth
// @Router /trips/{tripId}/invite [post]
func (t *TripController) CreateInvite(c *gin.Context) {
	tripID := c.Param("tripId")

	invite, err := t.tripService.CreateInvite(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invite, "Invite created successfully")
}

func (t *TripController) JoinTrip(c *gin.Context) {
	var req request_models.JoinTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "inviteCode is required")
		return
	}

	userID := c.GetString("user_id")

	info, err := t.tripService.JoinTrip(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, info, "Joined trip successfully")
}
