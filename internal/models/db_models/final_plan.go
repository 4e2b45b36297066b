package db_models

// FinalPlan caches the merged itinerary for a trip. It is always
// reproducible from suggestions plus votes, so a stale row is acceptable
// until the next explicit regeneration overwrites it.
type FinalPlan struct {
	BaseModel
	TripID      string `gorm:"uniqueIndex"`
	DaysJSON    []byte `gorm:"type:jsonb"`
	TripSummary string
}
