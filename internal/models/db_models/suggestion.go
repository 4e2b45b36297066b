package db_models

const (
	SuggestionStatusDraft     = "draft"
	SuggestionStatusSubmitted = "submitted"
)

// TripSuggestion is one member's candidate itinerary. Days are stored as a
// JSON document; the repository owns the (de)serialization so callers only
// ever see []response_models.Day.
type TripSuggestion struct {
	BaseModel
	TripID   string `gorm:"uniqueIndex:idx_suggestion_owner"`
	UserID   string `gorm:"uniqueIndex:idx_suggestion_owner"`
	DaysJSON []byte `gorm:"type:jsonb"`
	Status   string `gorm:"default:draft"`
}
