package response_models

// OptionAggregate is the derived tally for a single votable option. It is
// recomputed from the vote set and never stored as source of truth.
type OptionAggregate struct {
	OptionID  string `json:"optionID"`
	Label     string `json:"label,omitempty"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
	NetScore  int    `json:"netScore"`
}

// PollOption is a votable entity extracted from the submitted suggestions.
type PollOption struct {
	OptionID string `json:"optionID"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

type PollOptions struct {
	Activities []PollOption `json:"activities"`
	Locations  []PollOption `json:"locations"`
	Cuisines   []PollOption `json:"cuisines"`
}

// PollResults carries the ranked aggregates per vote category.
type PollResults struct {
	Activities []OptionAggregate `json:"activities"`
	Locations  []OptionAggregate `json:"locations"`
	Cuisines   []OptionAggregate `json:"cuisines"`
}
