package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibecation/internal/models/db_models"
	"vibecation/internal/models/response_models"
	"vibecation/pkg/memcache"
	"vibecation/pkg/utils"
)

type plannerFixture struct {
	tripRepo       *fakeTripRepo
	suggestionRepo *fakeSuggestionRepo
	finalPlanRepo  *fakeFinalPlanRepo
	voteRepo       *fakeVoteRepo
	ai             *fakePlannerAI
	service        PlannerServiceInterface
}

func newPlannerFixture(t *testing.T, ai *fakePlannerAI) *plannerFixture {
	t.Helper()
	resolver := utils.NewContentHashResolver()
	normalizer := NewItineraryNormalizer(resolver)
	tripRepo := newFakeTripRepo(&db_models.Trip{
		TripID:  "trip-1",
		OwnerID: "alice",
		Members: []string{"alice", "bob"},
	})
	suggestionRepo := newFakeSuggestionRepo()
	finalPlanRepo := newFakeFinalPlanRepo()
	voteRepo := &fakeVoteRepo{}
	pollService := NewPollService(voteRepo, suggestionRepo, normalizer, resolver)

	return &plannerFixture{
		tripRepo:       tripRepo,
		suggestionRepo: suggestionRepo,
		finalPlanRepo:  finalPlanRepo,
		voteRepo:       voteRepo,
		ai:             ai,
		service: NewPlannerService(
			tripRepo, suggestionRepo, finalPlanRepo,
			pollService, normalizer, ai, memcache.NewFinalPlans(),
		),
	}
}

func submitDays(t *testing.T, f *plannerFixture, userID string, days []response_models.Day) {
	t.Helper()
	_, err := f.suggestionRepo.Save(context.Background(), "trip-1", userID, days, db_models.SuggestionStatusSubmitted)
	require.NoError(t, err)
}

func singleDay(activityName, location string) []response_models.Day {
	return []response_models.Day{{
		ID:       1,
		Date:     "2026-09-01",
		Location: location,
		Activities: []response_models.Activity{{
			ActivityName: activityName,
			Type:         "attraction",
			FromDateTime: "2026-09-01T09:00:00",
			Location:     location,
		}},
	}}
}

func TestFinalizeTrip_MergesWithAI(t *testing.T) {
	ctx := context.Background()
	ai := &fakePlannerAI{doc: &response_models.TripDocument{
		TripName:    "Merged trip",
		TripSummary: "Two days across Tokyo and Kyoto.",
		Activities: []response_models.Activity{
			{ActivityName: "Shrine walk", Type: "attraction", FromDateTime: "2026-09-01T09:00:00", Location: "Tokyo"},
			{ActivityName: "Tea ceremony", Type: "attraction", FromDateTime: "2026-09-02T14:00:00", Location: "Kyoto"},
		},
	}}
	f := newPlannerFixture(t, ai)
	submitDays(t, f, "alice", singleDay("Shrine walk", "Tokyo"))
	submitDays(t, f, "bob", singleDay("Tea ceremony", "Kyoto"))

	plan, err := f.service.FinalizeTrip(ctx, "trip-1")
	require.NoError(t, err)

	assert.Equal(t, "trip-1", plan.TripID)
	assert.Equal(t, "Two days across Tokyo and Kyoto.", plan.TripSummary)
	require.Len(t, plan.Days, 2)
	assert.Equal(t, "2026-09-01", plan.Days[0].Date)
	assert.Equal(t, "2026-09-02", plan.Days[1].Date)

	// Persisted as well as returned.
	stored, err := f.finalPlanRepo.FindByTripID(ctx, "trip-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Len(t, stored.Days, 2)
}

func TestFinalizeTrip_PromptCarriesSubmissionsAndRankings(t *testing.T) {
	ctx := context.Background()
	ai := &fakePlannerAI{doc: &response_models.TripDocument{
		Activities: []response_models.Activity{
			{ActivityName: "Anything", Type: "attraction", FromDateTime: "2026-09-01T09:00:00", Location: "Tokyo"},
		},
	}}
	f := newPlannerFixture(t, ai)
	submitDays(t, f, "alice", singleDay("Shrine walk", "Tokyo"))
	f.voteRepo.votes = []db_models.Vote{
		{TripID: "trip-1", UserID: "alice", OptionID: "act_shrine", VoteType: db_models.VoteTypeActivity, Vote: true},
		{TripID: "trip-1", UserID: "bob", OptionID: "act_shrine", VoteType: db_models.VoteTypeActivity, Vote: true},
	}

	_, err := f.service.FinalizeTrip(ctx, "trip-1")
	require.NoError(t, err)

	require.Len(t, ai.calls, 1)
	prompt := ai.calls[0]
	assert.Contains(t, prompt, "Shrine walk")
	assert.Contains(t, prompt, "act_shrine")
	assert.Contains(t, prompt, "net +2")
}

func TestFinalizeTrip_FallsBackOnAIError(t *testing.T) {
	ctx := context.Background()
	ai := &fakePlannerAI{err: errors.New("model overloaded")}
	f := newPlannerFixture(t, ai)
	submitDays(t, f, "alice", singleDay("Shrine walk", "Tokyo"))

	plan, err := f.service.FinalizeTrip(ctx, "trip-1")
	require.NoError(t, err)

	// Falls back to the submission, unmerged, with the canned summary.
	require.Len(t, plan.Days, 1)
	assert.Equal(t, "Shrine walk", plan.Days[0].Activities[0].ActivityName)
	assert.True(t, strings.Contains(plan.TripSummary, "merging"))
}

func TestFinalizeTrip_FallsBackOnUnusableDocument(t *testing.T) {
	ctx := context.Background()
	// The model answered, but every activity is dateless so normalization
	// produces zero days.
	ai := &fakePlannerAI{doc: &response_models.TripDocument{
		Activities: []response_models.Activity{{ActivityName: "No date", Type: "attraction"}},
	}}
	f := newPlannerFixture(t, ai)
	submitDays(t, f, "alice", singleDay("Shrine walk", "Tokyo"))

	plan, err := f.service.FinalizeTrip(ctx, "trip-1")
	require.NoError(t, err)

	require.Len(t, plan.Days, 1)
	assert.Equal(t, "Shrine walk", plan.Days[0].Activities[0].ActivityName)
}

func TestFinalizeTrip_EmptyFallback(t *testing.T) {
	ctx := context.Background()
	ai := &fakePlannerAI{err: errors.New("model overloaded")}
	f := newPlannerFixture(t, ai)
	// A submission exists but holds no days.
	submitDays(t, f, "alice", []response_models.Day{})

	plan, err := f.service.FinalizeTrip(ctx, "trip-1")
	require.NoError(t, err)

	assert.Empty(t, plan.Days)
	assert.Equal(t, "Unable to generate final plan.", plan.TripSummary)
}

func TestFinalizeTrip_NoSubmissions(t *testing.T) {
	f := newPlannerFixture(t, &fakePlannerAI{})

	_, err := f.service.FinalizeTrip(context.Background(), "trip-1")

	assert.ErrorIs(t, err, utils.ErrSuggestionNotFound)
}

func TestFinalizeTrip_UnknownTrip(t *testing.T) {
	f := newPlannerFixture(t, &fakePlannerAI{})

	_, err := f.service.FinalizeTrip(context.Background(), "missing")

	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestGetFinalPlan(t *testing.T) {
	ctx := context.Background()
	ai := &fakePlannerAI{err: errors.New("model overloaded")}
	f := newPlannerFixture(t, ai)
	submitDays(t, f, "alice", singleDay("Shrine walk", "Tokyo"))

	_, err := f.service.GetFinalPlan(ctx, "trip-1")
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)

	_, err = f.service.FinalizeTrip(ctx, "trip-1")
	require.NoError(t, err)

	plan, err := f.service.GetFinalPlan(ctx, "trip-1")
	require.NoError(t, err)
	assert.Equal(t, "trip-1", plan.TripID)
	require.Len(t, plan.Days, 1)
}

func TestGetFinalPlan_ServedFromCacheAfterFinalize(t *testing.T) {
	ctx := context.Background()
	ai := &fakePlannerAI{err: errors.New("model overloaded")}
	f := newPlannerFixture(t, ai)
	submitDays(t, f, "alice", singleDay("Shrine walk", "Tokyo"))

	_, err := f.service.FinalizeTrip(ctx, "trip-1")
	require.NoError(t, err)

	// Drop the persisted copy; the cache still answers.
	delete(f.finalPlanRepo.plans, "trip-1")

	plan, err := f.service.GetFinalPlan(ctx, "trip-1")
	require.NoError(t, err)
	assert.Equal(t, "trip-1", plan.TripID)
}
