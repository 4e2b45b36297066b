package db_models

import "github.com/lib/pq"

type Trip struct {
	BaseModel
	TripID      string `gorm:"uniqueIndex"`
	Title       string
	Description string
	OwnerID     string         `gorm:"index"`
	Members     pq.StringArray `gorm:"type:text[]"`
	Status      string         `gorm:"default:planning"`
}

// InviteCode lets a user join a trip; codes are single-trip but reusable
// until the trip is deleted.
type InviteCode struct {
	BaseModel
	Code   string `gorm:"uniqueIndex"`
	TripID string `gorm:"index"`
}
