package request_models

import "vibecation/internal/models/response_models"

// BrainstormRequest drives one AI iteration on the caller's draft. The old
// plan is looked up server-side; only the query travels in.
type BrainstormRequest struct {
	TripID string `json:"tripID" binding:"required"`
	Query  string `json:"query" binding:"required"`
}

type SubmitSuggestionRequest struct {
	TripID string                `json:"tripID" binding:"required"`
	Days   []response_models.Day `json:"days" binding:"required"`
}
