package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"vibecation/internal/models/db_models"
	"vibecation/internal/models/response_models"
)

// In-memory repository doubles. They mirror the persistence contracts
// closely enough for service-level tests: the vote fake runs the same
// toggle state machine, the suggestion fake round-trips days through JSON
// the way the jsonb column does.

var errFakeDown = errors.New("storage unavailable")

type fakeTripRepo struct {
	trips   map[string]*db_models.Trip
	invites map[string]*db_models.InviteCode
	failing bool
}

func newFakeTripRepo(trips ...*db_models.Trip) *fakeTripRepo {
	r := &fakeTripRepo{
		trips:   make(map[string]*db_models.Trip),
		invites: make(map[string]*db_models.InviteCode),
	}
	for _, trip := range trips {
		r.trips[trip.TripID] = trip
	}
	return r
}

func (r *fakeTripRepo) Insert(_ context.Context, trip *db_models.Trip) error {
	if r.failing {
		return errFakeDown
	}
	r.trips[trip.TripID] = trip
	return nil
}

func (r *fakeTripRepo) FindByTripID(_ context.Context, tripID string) (*db_models.Trip, error) {
	if r.failing {
		return nil, errFakeDown
	}
	return r.trips[tripID], nil
}

func (r *fakeTripRepo) ListTripIDsForUser(_ context.Context, userID string) ([]string, error) {
	if r.failing {
		return nil, errFakeDown
	}
	var ids []string
	for id, trip := range r.trips {
		if trip.OwnerID == userID {
			ids = append(ids, id)
			continue
		}
		for _, member := range trip.Members {
			if member == userID {
				ids = append(ids, id)
				break
			}
		}
	}
	return ids, nil
}

func (r *fakeTripRepo) AddMember(_ context.Context, tripID, userID string) error {
	trip, ok := r.trips[tripID]
	if !ok {
		return errFakeDown
	}
	for _, member := range trip.Members {
		if member == userID {
			return nil
		}
	}
	trip.Members = append(trip.Members, userID)
	return nil
}

func (r *fakeTripRepo) Delete(_ context.Context, tripID string) error {
	delete(r.trips, tripID)
	return nil
}

func (r *fakeTripRepo) InsertInvite(_ context.Context, invite *db_models.InviteCode) error {
	r.invites[invite.Code] = invite
	return nil
}

func (r *fakeTripRepo) FindInvite(_ context.Context, code string) (*db_models.InviteCode, error) {
	return r.invites[code], nil
}

type fakeVoteRepo struct {
	votes   []db_models.Vote
	failing bool
}

func voteKeyEqual(a, b db_models.Vote) bool {
	return a.TripID == b.TripID && a.UserID == b.UserID && a.OptionID == b.OptionID && a.VoteType == b.VoteType
}

func (r *fakeVoteRepo) Cast(_ context.Context, vote db_models.Vote) (string, *db_models.Vote, error) {
	if r.failing {
		return "", nil, errFakeDown
	}
	for i, existing := range r.votes {
		if !voteKeyEqual(existing, vote) {
			continue
		}
		if existing.Vote == vote.Vote {
			r.votes = append(r.votes[:i], r.votes[i+1:]...)
			return response_models.VoteActionRemoved, nil, nil
		}
		r.votes[i].Vote = vote.Vote
		record := r.votes[i]
		return response_models.VoteActionUpdated, &record, nil
	}
	r.votes = append(r.votes, vote)
	return response_models.VoteActionCreated, &vote, nil
}

func (r *fakeVoteRepo) RemoveAllForUser(_ context.Context, tripID, userID, voteType string) error {
	if r.failing {
		return errFakeDown
	}
	kept := r.votes[:0]
	for _, vote := range r.votes {
		if vote.TripID == tripID && vote.UserID == userID && vote.VoteType == voteType {
			continue
		}
		kept = append(kept, vote)
	}
	r.votes = kept
	return nil
}

func (r *fakeVoteRepo) ListByTripAndType(_ context.Context, tripID, voteType string) ([]db_models.Vote, error) {
	if r.failing {
		return nil, errFakeDown
	}
	var out []db_models.Vote
	for _, vote := range r.votes {
		if vote.TripID == tripID && vote.VoteType == voteType {
			out = append(out, vote)
		}
	}
	return out, nil
}

type fakeSuggestionRepo struct {
	suggestions map[string]*db_models.TripSuggestion
	failing     bool
}

func newFakeSuggestionRepo() *fakeSuggestionRepo {
	return &fakeSuggestionRepo{suggestions: make(map[string]*db_models.TripSuggestion)}
}

func suggestionKey(tripID, userID string) string {
	return tripID + "|" + userID
}

func (r *fakeSuggestionRepo) Save(_ context.Context, tripID, userID string, days []response_models.Day, status string) (*db_models.TripSuggestion, error) {
	if r.failing {
		return nil, errFakeDown
	}
	daysJSON, err := json.Marshal(days)
	if err != nil {
		return nil, err
	}
	suggestion := &db_models.TripSuggestion{
		TripID:   tripID,
		UserID:   userID,
		DaysJSON: daysJSON,
		Status:   status,
	}
	r.suggestions[suggestionKey(tripID, userID)] = suggestion
	return suggestion, nil
}

func (r *fakeSuggestionRepo) FindByTripAndUser(_ context.Context, tripID, userID string) (*db_models.TripSuggestion, error) {
	if r.failing {
		return nil, errFakeDown
	}
	return r.suggestions[suggestionKey(tripID, userID)], nil
}

func (r *fakeSuggestionRepo) ListByTrip(_ context.Context, tripID, status string) ([]db_models.TripSuggestion, error) {
	if r.failing {
		return nil, errFakeDown
	}
	var out []db_models.TripSuggestion
	for _, suggestion := range r.suggestions {
		if suggestion.TripID == tripID && (status == "" || suggestion.Status == status) {
			out = append(out, *suggestion)
		}
	}
	return out, nil
}

func (r *fakeSuggestionRepo) ListSubmittedUserIDs(_ context.Context, tripID string) ([]string, error) {
	if r.failing {
		return nil, errFakeDown
	}
	var out []string
	for _, suggestion := range r.suggestions {
		if suggestion.TripID == tripID && suggestion.Status == db_models.SuggestionStatusSubmitted {
			out = append(out, suggestion.UserID)
		}
	}
	return out, nil
}

type fakeCompletionRepo struct {
	completed map[string][]string
}

func newFakeCompletionRepo() *fakeCompletionRepo {
	return &fakeCompletionRepo{completed: make(map[string][]string)}
}

func (r *fakeCompletionRepo) MarkComplete(_ context.Context, tripID, userID, phase string) error {
	key := tripID + "|" + phase
	for _, existing := range r.completed[key] {
		if existing == userID {
			return nil
		}
	}
	r.completed[key] = append(r.completed[key], userID)
	return nil
}

func (r *fakeCompletionRepo) ListCompletedUserIDs(_ context.Context, tripID, phase string) ([]string, error) {
	return r.completed[tripID+"|"+phase], nil
}

type fakeFinalPlanRepo struct {
	plans map[string]*response_models.FinalPlanResponse
}

func newFakeFinalPlanRepo() *fakeFinalPlanRepo {
	return &fakeFinalPlanRepo{plans: make(map[string]*response_models.FinalPlanResponse)}
}

func (r *fakeFinalPlanRepo) Upsert(_ context.Context, tripID string, days []response_models.Day, summary string) error {
	r.plans[tripID] = &response_models.FinalPlanResponse{TripID: tripID, Days: days, TripSummary: summary}
	return nil
}

func (r *fakeFinalPlanRepo) FindByTripID(_ context.Context, tripID string) (*response_models.FinalPlanResponse, error) {
	return r.plans[tripID], nil
}

type fakeAccountRepo struct {
	accounts []*db_models.Account
	failing  bool
}

func (r *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	if r.failing {
		return errFakeDown
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	r.accounts = append(r.accounts, account)
	return nil
}

func (r *fakeAccountRepo) FindByUsername(_ context.Context, username string) (*db_models.Account, error) {
	if r.failing {
		return nil, errFakeDown
	}
	for _, account := range r.accounts {
		if account.Username == username {
			return account, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	if r.failing {
		return nil, errFakeDown
	}
	for _, account := range r.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id string) (*db_models.Account, error) {
	if r.failing {
		return nil, errFakeDown
	}
	for _, account := range r.accounts {
		if account.ID.String() == id {
			return account, nil
		}
	}
	return nil, nil
}

// fakePlannerAI replays a scripted document or error and records the
// prompts it was called with.
type fakePlannerAI struct {
	doc   *response_models.TripDocument
	err   error
	calls []string
}

func (a *fakePlannerAI) GenerateTripDocument(_ context.Context, _ string, userPrompt string) (*response_models.TripDocument, error) {
	a.calls = append(a.calls, userPrompt)
	if a.err != nil {
		return nil, a.err
	}
	return a.doc, nil
}

func (a *fakePlannerAI) Close() error { return nil }
