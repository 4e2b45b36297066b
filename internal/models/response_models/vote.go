package response_models

const (
	VoteActionCreated = "created"
	VoteActionUpdated = "updated"
	VoteActionRemoved = "removed"
)

type VoteView struct {
	TripID   string `json:"tripID"`
	UserID   string `json:"userID"`
	OptionID string `json:"optionID"`
	VoteType string `json:"voteType"`
	Vote     bool   `json:"vote"`
}

// CastVoteResponse reports which branch of the toggle state machine fired.
// Vote is nil when the action retracted an existing record.
type CastVoteResponse struct {
	Action string    `json:"action"`
	Vote   *VoteView `json:"vote"`
}

// CompletionStatus reports whether every trip member has finished a phase.
type CompletionStatus struct {
	AllCompleted     bool     `json:"allCompleted"`
	TotalMembers     int      `json:"totalMembers"`
	CompletedMembers int      `json:"completedMembers"`
	CompletedUserIDs []string `json:"completedUserIDs"`
}
