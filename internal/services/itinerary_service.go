package services

import (
	"fmt"
	"sort"
	"strings"

	"vibecation/internal/models/response_models"
	"vibecation/pkg/utils"
)

// defaultVigorByType maps an activity type to its assumed intensity when the
// source omits one. Unrecognized types default to medium.
var defaultVigorByType = map[string]string{
	"attraction":    "medium",
	"travel":        "low",
	"food":          "low",
	"entertainment": "medium",
	"accommodation": "low",
}

const defaultVigor = "medium"

// ItineraryNormalizer rewrites heterogeneous, possibly nested activity trees
// into the canonical day-indexed schedule. All methods are pure over their
// inputs and safe to call concurrently across trips.
type ItineraryNormalizer struct {
	resolver utils.IdentityResolver
	vigor    map[string]string
}

func NewItineraryNormalizer(resolver utils.IdentityResolver) *ItineraryNormalizer {
	return &ItineraryNormalizer{
		resolver: resolver,
		vigor:    defaultVigorByType,
	}
}

// Flatten unrolls nested sub-activities depth-first: parent first, then its
// children, preserving order. Flattening an already flat list is a no-op.
func (n *ItineraryNormalizer) Flatten(activities []response_models.Activity) []response_models.Activity {
	flat := make([]response_models.Activity, 0, len(activities))
	for _, activity := range activities {
		children := activity.Activities
		activity.Activities = nil
		flat = append(flat, activity)
		if len(children) > 0 {
			flat = append(flat, n.Flatten(children)...)
		}
	}
	return flat
}

// GroupByDay buckets flat activities by the date portion of from_date_time
// and assigns 1-based day ids in ascending date order. Activities whose
// timestamp has no extractable date are dropped: a dateless activity cannot
// be placed on any day, and silently inventing one would be worse.
func (n *ItineraryNormalizer) GroupByDay(activities []response_models.Activity) []response_models.Day {
	buckets := make(map[string][]response_models.Activity)
	var order []string

	for _, activity := range activities {
		date, ok := extractDate(activity.FromDateTime)
		if !ok {
			continue
		}
		if _, seen := buckets[date]; !seen {
			order = append(order, date)
		}
		buckets[date] = append(buckets[date], n.canonicalize(activity))
	}

	// YYYY-MM-DD sorts lexicographically in date order.
	sort.Strings(order)

	days := make([]response_models.Day, 0, len(order))
	for i, date := range order {
		acts := buckets[date]
		location := dayLocation(acts)
		days = append(days, response_models.Day{
			ID:          i + 1,
			Date:        date,
			Location:    location,
			Description: fmt.Sprintf("Day %d in %s", i+1, location),
			Activities:  acts,
		})
	}
	return days
}

// NormalizeDocument is the normalization pipeline applied to AI output and
// raw suggestions alike: flatten, then regroup by day.
func (n *ItineraryNormalizer) NormalizeDocument(doc *response_models.TripDocument) []response_models.Day {
	if doc == nil {
		return nil
	}
	return n.GroupByDay(n.Flatten(doc.Activities))
}

// FlattenDays collapses day buckets back into one flat activity sequence,
// keeping day order then submission order.
func (n *ItineraryNormalizer) FlattenDays(days []response_models.Day) []response_models.Activity {
	var activities []response_models.Activity
	for _, day := range days {
		activities = append(activities, n.Flatten(day.Activities)...)
	}
	return activities
}

func (n *ItineraryNormalizer) canonicalize(activity response_models.Activity) response_models.Activity {
	activity.ActivityID = n.resolver.ResolveActivityID(activity)
	if activity.Location == "" {
		activity.Location = activity.StartLocation
	}
	if activity.Vigor == "" {
		vigor, ok := n.vigor[activity.Type]
		if !ok {
			vigor = defaultVigor
		}
		activity.Vigor = vigor
	}
	activity.Activities = nil
	return activity
}

// extractDate pulls the YYYY-MM-DD prefix of an ISO-ish timestamp. Both the
// 'T' separator and a plain space are accepted.
func extractDate(dateTime string) (string, bool) {
	datePart := dateTime
	if idx := strings.IndexAny(dateTime, "T "); idx != -1 {
		datePart = dateTime[:idx]
	}
	if len(datePart) < 10 {
		return "", false
	}
	return datePart[:10], true
}

func dayLocation(activities []response_models.Activity) string {
	if len(activities) == 0 {
		return ""
	}
	first := activities[0]
	if first.StartLocation != "" {
		return first.StartLocation
	}
	return first.Location
}
