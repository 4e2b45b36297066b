package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibecation/internal/models/response_models"
	"vibecation/pkg/utils"
)

func newTestNormalizer() *ItineraryNormalizer {
	return NewItineraryNormalizer(utils.NewContentHashResolver())
}

func TestFlatten_NestedActivities(t *testing.T) {
	n := newTestNormalizer()

	nested := []response_models.Activity{
		{
			ActivityName: "Day trip",
			Type:         "attraction",
			Activities: []response_models.Activity{
				{ActivityName: "Temple visit", Type: "attraction"},
				{
					ActivityName: "Lunch stop",
					Type:         "food",
					Activities: []response_models.Activity{
						{ActivityName: "Dessert", Type: "food"},
					},
				},
			},
		},
		{ActivityName: "Evening show", Type: "entertainment"},
	}

	flat := n.Flatten(nested)

	require.Len(t, flat, 5)
	names := make([]string, 0, len(flat))
	for _, a := range flat {
		names = append(names, a.ActivityName)
		assert.Nil(t, a.Activities)
	}
	// Depth-first: parent before children, sibling order preserved.
	assert.Equal(t, []string{"Day trip", "Temple visit", "Lunch stop", "Dessert", "Evening show"}, names)
}

func TestFlatten_FlatListIsNoOp(t *testing.T) {
	n := newTestNormalizer()

	flat := []response_models.Activity{
		{ActivityName: "A", Type: "attraction"},
		{ActivityName: "B", Type: "food"},
	}

	got := n.Flatten(flat)

	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].ActivityName)
	assert.Equal(t, "B", got[1].ActivityName)
}

func TestGroupByDay(t *testing.T) {
	n := newTestNormalizer()

	activities := []response_models.Activity{
		{ActivityName: "Dinner", Type: "food", FromDateTime: "2026-09-02T19:00:00", Location: "Kyoto"},
		{ActivityName: "Shrine", Type: "attraction", FromDateTime: "2026-09-01T09:00:00", StartLocation: "Tokyo"},
		{ActivityName: "Museum", Type: "attraction", FromDateTime: "2026-09-01 14:00:00", Location: "Tokyo"},
	}

	days := n.GroupByDay(activities)

	require.Len(t, days, 2)

	assert.Equal(t, 1, days[0].ID)
	assert.Equal(t, "2026-09-01", days[0].Date)
	assert.Equal(t, "Tokyo", days[0].Location)
	assert.Equal(t, "Day 1 in Tokyo", days[0].Description)
	require.Len(t, days[0].Activities, 2)
	assert.Equal(t, "Shrine", days[0].Activities[0].ActivityName)
	assert.Equal(t, "Museum", days[0].Activities[1].ActivityName)

	assert.Equal(t, 2, days[1].ID)
	assert.Equal(t, "2026-09-02", days[1].Date)
	assert.Equal(t, "Kyoto", days[1].Location)
}

func TestGroupByDay_DropsDatelessActivities(t *testing.T) {
	n := newTestNormalizer()

	days := n.GroupByDay([]response_models.Activity{
		{ActivityName: "No timestamp", Type: "attraction"},
		{ActivityName: "Short timestamp", Type: "attraction", FromDateTime: "2026-09"},
		{ActivityName: "Keeper", Type: "attraction", FromDateTime: "2026-09-03T10:00:00", Location: "Osaka"},
	})

	require.Len(t, days, 1)
	require.Len(t, days[0].Activities, 1)
	assert.Equal(t, "Keeper", days[0].Activities[0].ActivityName)
}

func TestGroupByDay_CanonicalizesActivities(t *testing.T) {
	n := newTestNormalizer()

	days := n.GroupByDay([]response_models.Activity{
		{ActivityName: "Hike", Type: "unknown-type", FromDateTime: "2026-09-01T08:00:00", StartLocation: "Trailhead"},
		{ActivityName: "Checkin", Type: "accommodation", FromDateTime: "2026-09-01T16:00:00", Location: "Hotel"},
	})

	require.Len(t, days, 1)
	hike := days[0].Activities[0]
	assert.NotEmpty(t, hike.ActivityID)
	assert.Equal(t, "Trailhead", hike.Location)
	assert.Equal(t, "medium", hike.Vigor)

	checkin := days[0].Activities[1]
	assert.Equal(t, "low", checkin.Vigor)
}

func TestGroupByDay_KeepsExplicitVigor(t *testing.T) {
	n := newTestNormalizer()

	days := n.GroupByDay([]response_models.Activity{
		{ActivityName: "Climb", Type: "attraction", Vigor: "high", FromDateTime: "2026-09-01T08:00:00"},
	})

	require.Len(t, days, 1)
	assert.Equal(t, "high", days[0].Activities[0].Vigor)
}

func TestNormalizeDocument_FlattenThenGroup(t *testing.T) {
	n := newTestNormalizer()

	doc := &response_models.TripDocument{
		TripName: "Long weekend",
		Activities: []response_models.Activity{
			{
				ActivityName: "City tour",
				Type:         "attraction",
				FromDateTime: "2026-09-01T09:00:00",
				Location:     "Lisbon",
				Activities: []response_models.Activity{
					{ActivityName: "Tram ride", Type: "travel", FromDateTime: "2026-09-01T11:00:00", Location: "Lisbon"},
					{ActivityName: "Fado night", Type: "entertainment", FromDateTime: "2026-09-02T21:00:00", Location: "Lisbon"},
				},
			},
		},
	}

	days := n.NormalizeDocument(doc)

	require.Len(t, days, 2)
	assert.Len(t, days[0].Activities, 2)
	assert.Len(t, days[1].Activities, 1)
	assert.Equal(t, "Fado night", days[1].Activities[0].ActivityName)
}

func TestNormalizeDocument_Nil(t *testing.T) {
	n := newTestNormalizer()

	assert.Nil(t, n.NormalizeDocument(nil))
}

func TestFlattenDays_RoundTrip(t *testing.T) {
	n := newTestNormalizer()

	original := []response_models.Activity{
		{ActivityName: "A", Type: "attraction", FromDateTime: "2026-09-01T09:00:00", Location: "X"},
		{ActivityName: "B", Type: "food", FromDateTime: "2026-09-01T12:00:00", Location: "X"},
		{ActivityName: "C", Type: "attraction", FromDateTime: "2026-09-02T09:00:00", Location: "Y"},
	}

	days := n.GroupByDay(original)
	flat := n.FlattenDays(days)
	regrouped := n.GroupByDay(flat)

	assert.Equal(t, days, regrouped)
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"2026-09-01T09:00:00", "2026-09-01", true},
		{"2026-09-01 09:00:00", "2026-09-01", true},
		{"2026-09-01", "2026-09-01", true},
		{"2026-09-01T09:00:00+02:00", "2026-09-01", true},
		{"2026-9-1", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := extractDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
