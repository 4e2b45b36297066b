package response_models

// Activity is the canonical itinerary entry after normalization. The same
// struct also carries raw suggestion and AI output, where Activities may be
// nested and most fields are optional; day grouping rewrites entries into
// the flat canonical form.
//
// Date-times stay strings on purpose: sources disagree on offsets and
// separators, and day grouping only ever reads the YYYY-MM-DD prefix.
type Activity struct {
	ActivityID    string  `json:"activity_id"`
	ActivityName  string  `json:"activity_name"`
	Type          string  `json:"type"`
	Description   string  `json:"description,omitempty"`
	Vigor         string  `json:"vigor,omitempty"`
	FromDateTime  string  `json:"from_date_time"`
	ToDateTime    string  `json:"to_date_time,omitempty"`
	Location      string  `json:"location,omitempty"`
	StartLocation string  `json:"start_location,omitempty"`
	EndLocation   string  `json:"end_location,omitempty"`
	StartLat      float64 `json:"start_lat,omitempty"`
	StartLon      float64 `json:"start_lon,omitempty"`
	EndLat        float64 `json:"end_lat,omitempty"`
	EndLon        float64 `json:"end_lon,omitempty"`

	Activities []Activity `json:"activities,omitempty"`
}

// Day is one date bucket of an itinerary. IDs are 1-based and follow
// ascending date order; activities keep their submission order.
type Day struct {
	ID          int        `json:"id"`
	Date        string     `json:"date"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	Activities  []Activity `json:"activities"`
}

// TripDocument mirrors the structured schema the AI provider is asked to
// return: a trip with possibly nested activities plus a summary.
type TripDocument struct {
	TripName    string     `json:"trip_name"`
	TripID      string     `json:"trip_id"`
	Activities  []Activity `json:"activities"`
	TripSummary string     `json:"trip_summary"`
}

type SuggestionResponse struct {
	TripID    string `json:"tripID"`
	UserID    string `json:"userID"`
	Days      []Day  `json:"days"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type FinalPlanResponse struct {
	TripID      string `json:"tripID"`
	Days        []Day  `json:"days"`
	TripSummary string `json:"trip_summary"`
}
