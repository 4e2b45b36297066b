package memcache

import (
	"sync"
	"time"

	"vibecation/internal/models/response_models"
)

// FinalPlanCache keeps recently merged plans in memory per trip. Plans are
// reproducible from suggestions plus votes, so expiry only bounds memory;
// a stale hit is acceptable until the trip is explicitly regenerated.
type FinalPlanCache interface {
	Set(tripID string, plan response_models.FinalPlanResponse, ttl time.Duration)
	Get(tripID string) (response_models.FinalPlanResponse, bool)
	Invalidate(tripID string)
}

type planEntry struct {
	plan      response_models.FinalPlanResponse
	expiresAt time.Time
}

type FinalPlans struct {
	mu   sync.RWMutex
	data map[string]planEntry
}

func NewFinalPlans() *FinalPlans {
	return &FinalPlans{
		data: make(map[string]planEntry),
	}
}

func (s *FinalPlans) Set(tripID string, plan response_models.FinalPlanResponse, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[tripID] = planEntry{
		plan:      plan,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *FinalPlans) Get(tripID string) (response_models.FinalPlanResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[tripID]
	if !ok || time.Now().After(e.expiresAt) {
		return response_models.FinalPlanResponse{}, false
	}
	return e.plan, true
}

func (s *FinalPlans) Invalidate(tripID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, tripID)
}
