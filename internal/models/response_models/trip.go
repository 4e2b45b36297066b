package response_models

type TripResponse struct {
	TripID      string   `json:"tripID"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	OwnerID     string   `json:"ownerID"`
	Members     []string `json:"members"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

type TripInfoResponse struct {
	Title       string   `json:"title"`
	Members     []string `json:"members"`
	Description string   `json:"description,omitempty"`
}

type DashboardResponse struct {
	YourTrips []string `json:"yourTrips"`
}

type InviteResponse struct {
	TripID     string `json:"tripID"`
	InviteCode string `json:"inviteCode"`
}

type AccountResponse struct {
	UserID   string `json:"userID"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}
