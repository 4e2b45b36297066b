package request_models

// VoteRequest is the validated boundary form of a vote cast. Value is a
// pointer so an omitted boolean is distinguishable from an explicit false.
type VoteRequest struct {
	TripID   string `json:"tripID" binding:"required"`
	OptionID string `json:"optionID" binding:"required"`
	VoteType string `json:"voteType" binding:"required"`
	Value    *bool  `json:"vote" binding:"required"`
}

type RemoveAllVotesRequest struct {
	TripID   string `json:"tripID" binding:"required"`
	VoteType string `json:"voteType" binding:"required"`
}

type MarkVotingDoneRequest struct {
	TripID string `json:"tripID" binding:"required"`
}
