package request_models

type CreateTripRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}

type JoinTripRequest struct {
	InviteCode string `json:"inviteCode" binding:"required"`
}
