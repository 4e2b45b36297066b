package services

import (
	"context"
	"sort"

	"vibecation/internal/models/db_models"
	"vibecation/internal/models/response_models"
	"vibecation/internal/repositories"
	"vibecation/pkg/utils"
)

const defaultRankLimit = 10

// AggregateVotes folds raw vote records into per-option tallies, preserving
// first-seen option order so ranking ties stay deterministic. Pure; never
// fails.
func AggregateVotes(votes []db_models.Vote) []response_models.OptionAggregate {
	index := make(map[string]int)
	var aggregates []response_models.OptionAggregate

	for _, vote := range votes {
		i, seen := index[vote.OptionID]
		if !seen {
			i = len(aggregates)
			index[vote.OptionID] = i
			aggregates = append(aggregates, response_models.OptionAggregate{OptionID: vote.OptionID})
		}
		if vote.Vote {
			aggregates[i].Upvotes++
		} else {
			aggregates[i].Downvotes++
		}
		aggregates[i].NetScore = aggregates[i].Upvotes - aggregates[i].Downvotes
	}
	return aggregates
}

// RankOptions filters to positive net scores, sorts descending by net score
// (stable, so ties keep first-seen order) and truncates to limit.
func RankOptions(aggregates []response_models.OptionAggregate, limit int) []response_models.OptionAggregate {
	ranked := make([]response_models.OptionAggregate, 0, len(aggregates))
	for _, agg := range aggregates {
		if agg.NetScore > 0 {
			ranked = append(ranked, agg)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].NetScore > ranked[j].NetScore
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

type PollServiceInterface interface {
	GetPollOptions(ctx context.Context, tripID string) (*response_models.PollOptions, error)
	GetPollResults(ctx context.Context, tripID string) (*response_models.PollResults, error)
}

type PollService struct {
	voteRepo       repositories.VoteRepository
	suggestionRepo repositories.SuggestionRepository
	normalizer     *ItineraryNormalizer
	resolver       utils.IdentityResolver
}

func NewPollService(
	voteRepo repositories.VoteRepository,
	suggestionRepo repositories.SuggestionRepository,
	normalizer *ItineraryNormalizer,
	resolver utils.IdentityResolver,
) PollServiceInterface {
	return &PollService{
		voteRepo:       voteRepo,
		suggestionRepo: suggestionRepo,
		normalizer:     normalizer,
		resolver:       resolver,
	}
}

// GetPollOptions extracts the votable entities from every submitted
// suggestion of a trip: canonical activities, their locations, and the
// cuisine names of food activities. Duplicates across suggestions collapse
// through the identity resolver.
func (p *PollService) GetPollOptions(ctx context.Context, tripID string) (*response_models.PollOptions, error) {
	suggestions, err := p.suggestionRepo.ListByTrip(ctx, tripID, db_models.SuggestionStatusSubmitted)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	options := &response_models.PollOptions{
		Activities: []response_models.PollOption{},
		Locations:  []response_models.PollOption{},
		Cuisines:   []response_models.PollOption{},
	}
	seen := make(map[string]bool)

	add := func(list *[]response_models.PollOption, id, label, category string) {
		key := category + "|" + id
		if id == "" || seen[key] {
			return
		}
		seen[key] = true
		*list = append(*list, response_models.PollOption{OptionID: id, Label: label, Category: category})
	}

	for _, suggestion := range suggestions {
		days, err := repositories.DecodeDays(&suggestion)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		for _, activity := range p.normalizer.FlattenDays(days) {
			add(&options.Activities, p.resolver.ResolveActivityID(activity), activity.ActivityName, db_models.VoteTypeActivity)

			location := activity.Location
			if location == "" {
				location = activity.StartLocation
			}
			if location != "" {
				add(&options.Locations, p.resolver.ResolveLocationID(location), location, db_models.VoteTypeLocation)
			}

			if activity.Type == "food" {
				add(&options.Cuisines, p.resolver.ResolveCuisineID(activity.ActivityName), activity.ActivityName, db_models.VoteTypeCuisine)
			}
		}
	}

	return options, nil
}

func (p *PollService) GetPollResults(ctx context.Context, tripID string) (*response_models.PollResults, error) {
	results := &response_models.PollResults{}

	for _, category := range []struct {
		voteType string
		out      *[]response_models.OptionAggregate
	}{
		{db_models.VoteTypeActivity, &results.Activities},
		{db_models.VoteTypeLocation, &results.Locations},
		{db_models.VoteTypeCuisine, &results.Cuisines},
	} {
		votes, err := p.voteRepo.ListByTripAndType(ctx, tripID, category.voteType)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		*category.out = RankOptions(AggregateVotes(votes), defaultRankLimit)
	}

	return results, nil
}
