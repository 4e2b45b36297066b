package utils

import (
	"context"
	"fmt"
	"time"

	"vibecation/internal/models/response_models"
)

const (
	sampleDestination = "Barcelona"
	sampleDays        = 3
	sampleLat         = 41.4036
	sampleLon         = 2.1744
)

// SamplePlannerClient is the degradation path when no AI provider is
// configured: it returns a fixed Barcelona itinerary instead of failing,
// so brainstorm and finalize stay usable end to end without a key. The
// document is a function of the start date alone.
type SamplePlannerClient struct {
	now func() time.Time
}

func NewSamplePlannerClient() *SamplePlannerClient {
	return &SamplePlannerClient{now: time.Now}
}

func (c *SamplePlannerClient) GenerateTripDocument(_ context.Context, _, _ string) (*response_models.TripDocument, error) {
	start := c.now().Truncate(24 * time.Hour)

	activities := make([]response_models.Activity, 0, sampleDays*2)
	for day := 0; day < sampleDays; day++ {
		date := start.AddDate(0, 0, day)
		morning := date.Add(10 * time.Hour)
		afternoon := date.Add(14 * time.Hour)

		activities = append(activities, response_models.Activity{
			ActivityID:    fmt.Sprintf("activity_%d_morning", day+1),
			ActivityName:  fmt.Sprintf("%s Day %d - Morning Exploration", sampleDestination, day+1),
			Type:          "attraction",
			Description:   fmt.Sprintf("Explore %s on day %d", sampleDestination, day+1),
			FromDateTime:  morning.Format("2006-01-02T15:04:05"),
			ToDateTime:    morning.Add(2 * time.Hour).Format("2006-01-02T15:04:05"),
			Location:      sampleDestination,
			StartLocation: sampleDestination,
			EndLocation:   sampleDestination,
			StartLat:      sampleLat,
			StartLon:      sampleLon,
			EndLat:        sampleLat,
			EndLon:        sampleLon,
		}, response_models.Activity{
			ActivityID:    fmt.Sprintf("activity_%d_afternoon", day+1),
			ActivityName:  fmt.Sprintf("%s Day %d - Afternoon Activity", sampleDestination, day+1),
			Type:          "entertainment",
			Description:   fmt.Sprintf("Afternoon activity in %s", sampleDestination),
			FromDateTime:  afternoon.Format("2006-01-02T15:04:05"),
			ToDateTime:    afternoon.Add(3 * time.Hour).Format("2006-01-02T15:04:05"),
			Location:      sampleDestination,
			StartLocation: sampleDestination,
			EndLocation:   sampleDestination,
			StartLat:      sampleLat,
			StartLon:      sampleLon,
			EndLat:        sampleLat,
			EndLon:        sampleLon,
		})
	}

	return &response_models.TripDocument{
		TripName:    "Sample Trip",
		TripID:      fmt.Sprintf("trip_%d", start.Unix()),
		Activities:  activities,
		TripSummary: fmt.Sprintf("A %d-day sample itinerary in %s.", sampleDays, sampleDestination),
	}, nil
}

func (c *SamplePlannerClient) Close() error { return nil }
