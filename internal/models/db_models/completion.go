package db_models

const (
	PhaseVoting = "voting"
)

// PhaseCompletion records that a user explicitly marked a trip phase done.
// Brainstorm completion is derived from submitted suggestions instead and
// never lands here.
type PhaseCompletion struct {
	BaseModel
	TripID string `gorm:"uniqueIndex:idx_phase_completion"`
	UserID string `gorm:"uniqueIndex:idx_phase_completion"`
	Phase  string `gorm:"uniqueIndex:idx_phase_completion"`
}
