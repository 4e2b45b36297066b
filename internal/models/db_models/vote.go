package db_models

const (
	VoteTypeActivity = "activity"
	VoteTypeLocation = "location"
	VoteTypeCuisine  = "food_cuisine"
)

// Vote is one user's current stance on one option. The composite unique
// index is what backs the one-vote-per-user-per-option guarantee; the
// repository recovers from races on it by retrying as an update.
type Vote struct {
	BaseModel
	TripID   string `gorm:"uniqueIndex:idx_vote_key"`
	UserID   string `gorm:"uniqueIndex:idx_vote_key"`
	OptionID string `gorm:"uniqueIndex:idx_vote_key"`
	VoteType string `gorm:"uniqueIndex:idx_vote_key"`
	Vote     bool
}

func IsValidVoteType(t string) bool {
	switch t {
	case VoteTypeActivity, VoteTypeLocation, VoteTypeCuisine:
		return true
	}
	return false
}
